package core

import (
	"errors"
	"math"
	"testing"

	"github.com/1siamBot/shading-samples/engine/render3d"
)

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Params)
		errs   int
	}{
		{"near equals far", func(p *Params) { p.Near, p.Far = 5, 5 }, 1},
		{"near beyond far", func(p *Params) { p.Near, p.Far = 50, 10 }, 1},
		{"negative near", func(p *Params) { p.Near = -1 }, 1},
		{"zero fov", func(p *Params) { p.FOV = 0 }, 1},
		{"fov of pi", func(p *Params) { p.FOV = math.Pi }, 1},
		{"bad fov ignored in ortho", func(p *Params) { p.FOV = 0; p.Orthographic = true }, 0},
		{"zero ortho height", func(p *Params) { p.Orthographic = true; p.OrthoHeight = 0 }, 1},
		{"zero radius", func(p *Params) { p.OrbitRadius = 0 }, 1},
		{"zero shininess", func(p *Params) { p.Material.Shininess = 0 }, 1},
		{"toon without levels", func(p *Params) { p.Lighting.Toon = render3d.ToonShading{Enabled: true} }, 1},
		{"unknown wrap", func(p *Params) { p.Wrap = render3d.WrapMode(7) }, 1},
		{"several at once", func(p *Params) { p.Near, p.Far = 1, 1; p.OrbitRadius = -2; p.FOV = 4 }, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if tt.errs == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("Validate() = %v, want ErrInvalidParams", err)
			}
			joined, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("Validate() error %T is not joined", err)
			}
			if got := len(joined.Unwrap()); got != tt.errs {
				t.Errorf("got %d errors, want %d: %v", got, tt.errs, err)
			}
		})
	}
}

func TestParamsApplyTo(t *testing.T) {
	p := DefaultParams()
	p.FOV = 0.8
	p.OrthoHeight = 20
	p.Orthographic = true
	p.Near, p.Far = 0.5, 50

	cam := render3d.NewOrbitCamera(10, 1.5)
	p.ApplyTo(cam)
	if cam.FOV != 0.8 || cam.OrthoHeight != 20 || !cam.Orthographic || cam.Near != 0.5 || cam.Far != 50 {
		t.Errorf("ApplyTo() camera = %+v", *cam)
	}
	if cam.Aspect != 1.5 {
		t.Errorf("ApplyTo() changed aspect to %v", cam.Aspect)
	}
}

func TestParamsUVOffset(t *testing.T) {
	p := DefaultParams()
	p.ScrollSpeed = 0.5
	if got := p.UVOffset(4); got != 0 {
		t.Errorf("UVOffset() while not scrolling = %v, want 0", got)
	}
	p.Scrolling = true
	if got := p.UVOffset(4); got != 2 {
		t.Errorf("UVOffset(4) = %v, want 2", got)
	}
}
