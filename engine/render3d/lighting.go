package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DirectionalLight represents a sun-like light
type DirectionalLight struct {
	Color     Color3
	Direction Vec3 // direction the light travels (from light to surface)
	Intensity float64
}

// PointLight radiates from a position with linear distance falloff.
type PointLight struct {
	Position  Vec3
	Color     Color3
	Intensity float64
	LinearAtt float64
}

// Attenuation returns the falloff factor at distance d.
// A non-positive LinearAtt disables falloff.
func (p PointLight) Attenuation(d float64) float64 {
	if p.LinearAtt <= 0 {
		return 1
	}
	return 1 / (1 + d/p.LinearAtt)
}

// Material holds the Phong coefficients of a surface
type Material struct {
	Color     Color3
	AmbientK  float64
	DiffuseK  float64
	SpecularK float64
	Shininess float64
}

// ToonShading quantizes the diffuse term into flat bands.
type ToonShading struct {
	Enabled bool
	Levels  int
	Floor   bool // floor instead of round when banding
}

// Quantize bands x in [0,1] into Levels steps.
func (t ToonShading) Quantize(x float64) float64 {
	if !t.Enabled || t.Levels < 1 {
		return x
	}
	l := float64(t.Levels)
	if t.Floor {
		return mgl64.Clamp(math.Floor(x*l)/l, 0, 1)
	}
	return mgl64.Clamp(math.Round(x*l)/l, 0, 1)
}

// LightingSetup contains the scene lighting
type LightingSetup struct {
	Dir      DirectionalLight
	Point    PointLight
	HasPoint bool
	Toon     ToonShading
}

// DefaultLighting returns the lighting sample's start-up values
func DefaultLighting() LightingSetup {
	return LightingSetup{
		Dir: DirectionalLight{
			Color:     Color3{0, 1, 0},
			Direction: V3(1, -1, 0),
			Intensity: 1,
		},
		Point: PointLight{
			Position:  V3(0, 5, 0),
			Color:     Color3{1, 1, 1},
			Intensity: 1,
			LinearAtt: 10,
		},
		HasPoint: true,
		Toon:     ToonShading{Levels: 8},
	}
}

// DefaultMaterial returns the lighting sample's start-up material
func DefaultMaterial() Material {
	return Material{
		Color:     Color3{1, 1, 1},
		AmbientK:  0.25,
		DiffuseK:  0.5,
		SpecularK: 0.5,
		Shininess: 100,
	}
}

// phong returns the ambient+diffuse+specular factor for one light.
// toLight and toEye are unit vectors from the surface point.
func (ls *LightingSetup) phong(normal, toLight, toEye Vec3, mat Material) float64 {
	ndl := math.Max(0, normal.Dot(toLight))
	spec := 0.0
	if ndl > 0 {
		r := toLight.Neg().Reflect(normal)
		spec = math.Pow(math.Max(0, r.Dot(toEye)), mat.Shininess)
	}
	// only the diffuse band is quantized
	return mat.AmbientK + mat.DiffuseK*ls.Toon.Quantize(ndl) + mat.SpecularK*spec
}

// ComputeLighting shades a world-space point with normal n seen from eye.
func (ls *LightingSetup) ComputeLighting(pos, normal, eye Vec3, mat Material, baseColor Color3) Color3 {
	n := normal.Normalize()
	toEye := eye.Sub(pos).Normalize()
	var total Color3

	if d := ls.Dir.Direction.Normalize(); d != (Vec3{}) {
		k := ls.phong(n, d.Neg(), toEye, mat) * ls.Dir.Intensity
		total = addUnclamped(total, ls.Dir.Color.Scale(k))
	}

	if ls.HasPoint {
		delta := ls.Point.Position.Sub(pos)
		dist := delta.Len()
		k := ls.phong(n, delta.Normalize(), toEye, mat) * ls.Point.Intensity * ls.Point.Attenuation(dist)
		total = addUnclamped(total, ls.Point.Color.Scale(k))
	}

	return total.Mul(mat.Color).Mul(baseColor).Clamp()
}

func addUnclamped(a, b Color3) Color3 {
	return Color3{a.R + b.R, a.G + b.G, a.B + b.B}
}
