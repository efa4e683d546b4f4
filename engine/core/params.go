package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/1siamBot/shading-samples/engine/render3d"
)

// ErrInvalidParams is wrapped by every Params validation failure.
var ErrInvalidParams = errors.New("invalid scene parameters")

// Params holds every live-tunable value of a sample. The game owns one
// instance and hands out pointers to the renderer and the panel.
type Params struct {
	Background render3d.Color3

	Lighting render3d.LightingSetup
	Material render3d.Material
	Wrap     render3d.WrapMode

	// UV scrolling of textured surfaces
	Scrolling   bool
	ScrollSpeed float64

	Wireframe bool

	// Camera
	OrbitRadius  float64
	OrbitSpeed   float64
	FOV          float64 // radians
	OrthoHeight  float64
	Orthographic bool
	Near, Far    float64
}

// DefaultParams returns the start-up values shared by both samples.
func DefaultParams() Params {
	return Params{
		Lighting:    render3d.DefaultLighting(),
		Material:    render3d.DefaultMaterial(),
		Wrap:        render3d.WrapClampToEdge,
		ScrollSpeed: 1,
		OrbitRadius: 10,
		OrbitSpeed:  0,
		FOV:         1,
		OrthoHeight: 10,
		Near:        0.01,
		Far:         100,
	}
}

// Validate rejects values that would break projection or shading.
func (p *Params) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidParams}, args...)...))
		}
	}

	check(p.Near < p.Far, "near plane %v must be in front of far plane %v", p.Near, p.Far)
	check(p.Near > 0 && p.Far > 0, "clip planes must be positive (near %v, far %v)", p.Near, p.Far)
	if p.Orthographic {
		check(p.OrthoHeight > 0, "orthographic height %v must be positive", p.OrthoHeight)
	} else {
		check(p.FOV > 0 && p.FOV < math.Pi, "field of view %v must be in (0, pi)", p.FOV)
	}
	check(p.OrbitRadius > 0, "orbit radius %v must be positive", p.OrbitRadius)
	check(p.Material.Shininess > 0, "shininess %v must be positive", p.Material.Shininess)
	check(!p.Lighting.Toon.Enabled || p.Lighting.Toon.Levels >= 1, "toon levels %d must be at least 1", p.Lighting.Toon.Levels)
	check(p.Wrap >= render3d.WrapClampToEdge && p.Wrap <= render3d.WrapMirroredRepeat, "unknown wrap mode %d", int(p.Wrap))

	return errors.Join(errs...)
}

// ApplyTo copies projection settings onto an orbit camera.
func (p *Params) ApplyTo(cam *render3d.OrbitCamera) {
	cam.FOV = p.FOV
	cam.OrthoHeight = p.OrthoHeight
	cam.Orthographic = p.Orthographic
	cam.Near = p.Near
	cam.Far = p.Far
}

// UVOffset returns the texture scroll offset at time t seconds.
func (p *Params) UVOffset(t float64) float64 {
	if !p.Scrolling {
		return 0
	}
	return t * p.ScrollSpeed
}
