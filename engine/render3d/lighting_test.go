package render3d

import (
	"math"
	"testing"
)

func diffuseOnly() Material {
	return Material{Color: Color3{1, 1, 1}, DiffuseK: 1, Shininess: 32}
}

func TestPointLightAttenuation(t *testing.T) {
	tests := []struct {
		name      string
		linearAtt float64
		dist      float64
		want      float64
	}{
		{"at light", 10, 0, 1},
		{"one range away", 10, 10, 0.5},
		{"three ranges away", 2, 6, 0.25},
		{"disabled", 0, 100, 1},
		{"negative disables", -1, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PointLight{LinearAtt: tt.linearAtt}
			if got := p.Attenuation(tt.dist); !floatEqual(got, tt.want, 1e-12) {
				t.Errorf("Attenuation(%v) = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}
}

func TestToonQuantize(t *testing.T) {
	tests := []struct {
		name string
		toon ToonShading
		in   float64
		want float64
	}{
		{"disabled passes through", ToonShading{Levels: 4}, 0.6, 0.6},
		{"floor", ToonShading{Enabled: true, Levels: 4, Floor: true}, 0.7, 0.5},
		{"round", ToonShading{Enabled: true, Levels: 4}, 0.7, 0.75},
		{"round down", ToonShading{Enabled: true, Levels: 4}, 0.6, 0.5},
		{"full light", ToonShading{Enabled: true, Levels: 3, Floor: true}, 1, 1},
		{"single level floor", ToonShading{Enabled: true, Levels: 1, Floor: true}, 0.99, 0},
		{"zero levels ignored", ToonShading{Enabled: true, Levels: 0}, 0.42, 0.42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.toon.Quantize(tt.in); !floatEqual(got, tt.want, 1e-12) {
				t.Errorf("Quantize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionalDiffuse(t *testing.T) {
	ls := LightingSetup{
		Dir: DirectionalLight{Color: Color3{1, 1, 1}, Direction: V3(0, -3, 0), Intensity: 1},
	}
	up := V3(0, 1, 0)
	eye := V3(0, 5, 5)

	lit := ls.ComputeLighting(Vec3{}, up, eye, diffuseOnly(), Color3{1, 1, 1})
	if !floatEqual(lit.R, 1, 1e-12) {
		t.Errorf("facing light = %v, want 1", lit.R)
	}

	back := ls.ComputeLighting(Vec3{}, up.Neg(), eye, diffuseOnly(), Color3{1, 1, 1})
	if back != (Color3{}) {
		t.Errorf("facing away = %v, want black", back)
	}

	ls.Dir.Direction = V3(-1, -1, 0)
	slanted := ls.ComputeLighting(Vec3{}, up, eye, diffuseOnly(), Color3{1, 1, 1})
	if !floatEqual(slanted.G, math.Sqrt(0.5), 1e-12) {
		t.Errorf("45 degree light = %v, want %v", slanted.G, math.Sqrt(0.5))
	}
}

func TestLightColorAndMaterialMultiply(t *testing.T) {
	ls := LightingSetup{
		Dir: DirectionalLight{Color: Color3{0, 1, 0}, Direction: V3(0, -1, 0), Intensity: 0.5},
	}
	mat := Material{Color: Color3{1, 0.5, 1}, AmbientK: 0.2, DiffuseK: 0.6, Shininess: 8}
	got := ls.ComputeLighting(Vec3{}, V3(0, 1, 0), V3(10, 0, 0), mat, Color3{1, 1, 1})
	// (0.2 + 0.6) * 0.5 * green * 0.5
	want := Color3{0, 0.2, 0}
	if !floatEqual(got.R, want.R, 1e-12) || !floatEqual(got.G, want.G, 1e-12) || !floatEqual(got.B, want.B, 1e-12) {
		t.Errorf("ComputeLighting() = %v, want %v", got, want)
	}
}

func TestSpecularHighlight(t *testing.T) {
	ls := LightingSetup{
		Dir: DirectionalLight{Color: Color3{1, 1, 1}, Direction: V3(1, -1, 0), Intensity: 1},
	}
	mat := Material{Color: Color3{1, 1, 1}, SpecularK: 0.5, Shininess: 100}
	n := V3(0, 1, 0)

	// mirror direction of the incoming light
	onAxis := ls.ComputeLighting(Vec3{}, n, V3(5, 5, 0), mat, Color3{1, 1, 1})
	if !floatEqual(onAxis.R, 0.5, 1e-9) {
		t.Errorf("on-axis specular = %v, want 0.5", onAxis.R)
	}

	offAxis := ls.ComputeLighting(Vec3{}, n, V3(-5, 5, 0), mat, Color3{1, 1, 1})
	if offAxis.R > 1e-9 {
		t.Errorf("off-axis specular = %v, want ~0", offAxis.R)
	}
}

func TestPointLightFalloff(t *testing.T) {
	ls := LightingSetup{
		Point:    PointLight{Position: V3(0, 10, 0), Color: Color3{1, 1, 1}, Intensity: 1, LinearAtt: 10},
		HasPoint: true,
	}
	got := ls.ComputeLighting(Vec3{}, V3(0, 1, 0), V3(0, 1, 5), diffuseOnly(), Color3{1, 1, 1})
	if !floatEqual(got.R, 0.5, 1e-12) {
		t.Errorf("attenuated diffuse = %v, want 0.5", got.R)
	}

	ls.HasPoint = false
	if off := ls.ComputeLighting(Vec3{}, V3(0, 1, 0), V3(0, 1, 5), diffuseOnly(), Color3{1, 1, 1}); off != (Color3{}) {
		t.Errorf("point light disabled = %v, want black", off)
	}
}

func TestLightingClamps(t *testing.T) {
	ls := DefaultLighting()
	ls.Dir.Color = Color3{1, 1, 1}
	mat := Material{Color: Color3{1, 1, 1}, AmbientK: 1, DiffuseK: 1, SpecularK: 1, Shininess: 1}
	got := ls.ComputeLighting(Vec3{}, V3(0, 1, 0), V3(0, 3, 0), mat, Color3{1, 1, 1})
	for _, c := range []float64{got.R, got.G, got.B} {
		if c < 0 || c > 1 {
			t.Errorf("channel %v outside [0,1]", c)
		}
	}
}

func TestToonAppliedToDiffuse(t *testing.T) {
	ls := LightingSetup{
		Dir:  DirectionalLight{Color: Color3{1, 1, 1}, Direction: V3(-1, -1, 0), Intensity: 1},
		Toon: ToonShading{Enabled: true, Levels: 2, Floor: true},
	}
	// N·L = sqrt(0.5) ≈ 0.707 → floor(1.41)/2 = 0.5
	got := ls.ComputeLighting(Vec3{}, V3(0, 1, 0), V3(0, 5, 5), diffuseOnly(), Color3{1, 1, 1})
	if !floatEqual(got.R, 0.5, 1e-12) {
		t.Errorf("toon diffuse = %v, want 0.5", got.R)
	}
}

func TestToonLeavesSpecularAlone(t *testing.T) {
	grazing := V3(-1, -0.1, 0)
	ls := LightingSetup{
		Dir: DirectionalLight{Color: Color3{1, 1, 1}, Direction: grazing, Intensity: 1},
	}
	mat := Material{Color: Color3{1, 1, 1}, SpecularK: 0.5, Shininess: 100}
	n := V3(0, 1, 0)
	// eye on the reflected ray
	eye := grazing.Normalize().Reflect(n).Scale(5)

	plain := ls.ComputeLighting(Vec3{}, n, eye, mat, Color3{1, 1, 1})
	ls.Toon = ToonShading{Enabled: true, Levels: 8, Floor: true}
	toon := ls.ComputeLighting(Vec3{}, n, eye, mat, Color3{1, 1, 1})

	if !floatEqual(plain.R, 0.5, 1e-9) {
		t.Fatalf("plain specular = %v, want 0.5", plain.R)
	}
	if !floatEqual(toon.R, plain.R, 1e-12) {
		t.Errorf("toon specular = %v, want %v", toon.R, plain.R)
	}
}
