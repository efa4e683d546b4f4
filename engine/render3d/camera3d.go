package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projector is anything that can produce view and projection matrices.
type Projector interface {
	Eye() Vec3
	ViewMatrix() (Mat4, error)
	ProjectionMatrix() (Mat4, error)
}

// OrbitCamera looks at a fixed target and circles it around the Y axis.
type OrbitCamera struct {
	Position Vec3
	Target   Vec3

	// Vertical field of view in radians
	FOV float64
	// Full view height used by the orthographic projection
	OrthoHeight  float64
	Orthographic bool

	Aspect    float64
	Near, Far float64
}

// NewOrbitCamera creates a camera on +Z at the given radius looking at the origin
func NewOrbitCamera(radius, aspect float64) *OrbitCamera {
	return &OrbitCamera{
		Position:    V3(0, 0, radius),
		FOV:         1,
		OrthoHeight: 10,
		Aspect:      aspect,
		Near:        0.01,
		Far:         100,
	}
}

func (c *OrbitCamera) Eye() Vec3 { return c.Position }

// ViewMatrix returns the world-to-camera transform.
func (c *OrbitCamera) ViewMatrix() (Mat4, error) {
	return Mat4LookAt(c.Position, c.Target, WorldUp)
}

// ProjectionMatrix returns the orthographic or perspective projection
// depending on the Orthographic flag.
func (c *OrbitCamera) ProjectionMatrix() (Mat4, error) {
	if c.Orthographic {
		return Ortho(c.OrthoHeight, c.Aspect, c.Near, c.Far)
	}
	return Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// Orbit rotates the position around the target about the Y axis by
// speed/100 radians and rescales the offset to radius.
func (c *OrbitCamera) Orbit(speed, radius float64) {
	off := c.Position.Sub(c.Target)
	a := speed / 100
	cosA, sinA := math.Cos(a), math.Sin(a)
	rotated := Vec3{
		X: off.X*cosA - off.Z*sinA,
		Y: off.Y,
		Z: off.Z*cosA + off.X*sinA,
	}
	n := rotated.Normalize()
	if n == (Vec3{}) {
		n = Vec3{0, 0, 1}
	}
	c.Position = c.Target.Add(n.Scale(radius))
}

// FlyCamera is a free-look camera driven by yaw and pitch in degrees.
type FlyCamera struct {
	Position Vec3
	Yaw      float64
	Pitch    float64

	// Vertical field of view in degrees
	FOV       float64
	Aspect    float64
	Near, Far float64
}

const (
	MaxPitch = 89.9
	MinFOV   = 1.0
	MaxFOV   = 179.0
)

// NewFlyCamera creates a camera at (0,0,5) looking down -Z
func NewFlyCamera(aspect float64) *FlyCamera {
	c := &FlyCamera{
		FOV:    60,
		Aspect: aspect,
		Near:   0.1,
		Far:    100,
	}
	c.Reset()
	return c
}

// Reset restores the start-up pose.
func (c *FlyCamera) Reset() {
	c.Position = V3(0, 0, 5)
	c.Yaw = -90
	c.Pitch = 0
}

func (c *FlyCamera) Eye() Vec3 { return c.Position }

// Forward returns the unit view direction derived from yaw and pitch.
func (c *FlyCamera) Forward() Vec3 {
	yaw := mgl64.DegToRad(c.Yaw)
	pitch := mgl64.DegToRad(c.Pitch)
	return Vec3{
		X: math.Cos(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: math.Sin(yaw) * math.Cos(pitch),
	}.Normalize()
}

// Right returns the horizontal right vector.
func (c *FlyCamera) Right() Vec3 {
	return c.Forward().Cross(WorldUp).Normalize()
}

// Up returns the camera's local up vector.
func (c *FlyCamera) Up() Vec3 {
	return c.Right().Cross(c.Forward()).Normalize()
}

// SetPitch clamps pitch to ±MaxPitch so the view never aligns with world up.
func (c *FlyCamera) SetPitch(p float64) {
	c.Pitch = mgl64.Clamp(p, -MaxPitch, MaxPitch)
}

// SetFOV clamps the field of view to a usable range.
func (c *FlyCamera) SetFOV(fov float64) {
	c.FOV = mgl64.Clamp(fov, MinFOV, MaxFOV)
}

// Look applies a mouse delta in pixels scaled by sensitivity.
// Moving the mouse up (negative dy) pitches the camera up.
func (c *FlyCamera) Look(dx, dy, sensitivity float64) {
	c.Yaw += dx * sensitivity
	c.SetPitch(c.Pitch - dy*sensitivity)
}

// Move translates along the camera axes; each axis is -1, 0 or +1.
func (c *FlyCamera) Move(forward, right, up, amount float64) {
	p := c.Position
	p = p.Add(c.Forward().Scale(forward * amount))
	p = p.Add(c.Right().Scale(right * amount))
	p = p.Add(c.Up().Scale(up * amount))
	c.Position = p
}

func (c *FlyCamera) ViewMatrix() (Mat4, error) {
	return Mat4LookAt(c.Position, c.Position.Add(c.Forward()), WorldUp)
}

func (c *FlyCamera) ProjectionMatrix() (Mat4, error) {
	return Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}
