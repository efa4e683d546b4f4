package render3d

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateProjection is returned when projection parameters would
	// divide by zero or produce a non-finite matrix.
	ErrDegenerateProjection = errors.New("degenerate projection")
	// ErrDegenerateView is returned when a look-at basis cannot be built.
	ErrDegenerateView = errors.New("degenerate view")
)

// Vec3 is a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// WorldUp is the +Y axis used for camera bases.
var WorldUp = Vec3{0, 1, 0}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-10 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Reflect reflects v (pointing at the surface) about the normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Vec4 for homogeneous coords
type Vec4 struct {
	X, Y, Z, W float64
}

// Mat4 is a 4x4 matrix (column-major, column vectors: p' = M·p).
// m[12], m[13], m[14] hold the translation, same memory layout as OpenGL.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// At returns the element at row, col.
func (m Mat4) At(row, col int) float64 { return m[col*4+row] }

func Mat4Translate(tx, ty, tz float64) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = tx, ty, tz
	return m
}

func Mat4Scale(sx, sy, sz float64) Mat4 {
	m := Mat4Identity()
	m[0], m[5], m[10] = sx, sy, sz
	return m
}

func Mat4RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Mat4Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

func Mat4RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Mat4Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

func Mat4RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Mat4Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Mat4RotateXYZ composes the per-axis rotations as Rx·Ry·Rz.
// The order is fixed; shading results depend on it.
func Mat4RotateXYZ(r Vec3) Mat4 {
	return Mat4RotateX(r.X).Mul(Mat4RotateY(r.Y)).Mul(Mat4RotateZ(r.Z))
}

func Mat4Ortho(left, right, bottom, top, near, far float64) Mat4 {
	var m Mat4
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
	return m
}

// Ortho builds an orthographic projection of the given view height.
// Half-width is derived from the aspect ratio; depth maps to NDC [-1, 1].
func Ortho(height, aspect, near, far float64) (Mat4, error) {
	if !(height > 0) || !isFinite(height) {
		return Mat4{}, fmt.Errorf("ortho height %v: %w", height, ErrDegenerateProjection)
	}
	if err := checkFrustum(aspect, near, far); err != nil {
		return Mat4{}, err
	}
	t := height / 2
	r := t * aspect
	return Mat4Ortho(-r, r, -t, t, near, far), nil
}

// Perspective builds a right-handed OpenGL perspective projection.
// fovY is the full vertical field of view in radians.
func Perspective(fovY, aspect, near, far float64) (Mat4, error) {
	if !(fovY > 0 && fovY < math.Pi) {
		return Mat4{}, fmt.Errorf("field of view %v: %w", fovY, ErrDegenerateProjection)
	}
	if !(near > 0) {
		return Mat4{}, fmt.Errorf("perspective near plane %v: %w", near, ErrDegenerateProjection)
	}
	if err := checkFrustum(aspect, near, far); err != nil {
		return Mat4{}, err
	}
	c := math.Tan(fovY / 2)
	var m Mat4
	m[0] = 1 / (aspect * c)
	m[5] = 1 / c
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -(2 * far * near) / (far - near)
	return m, nil
}

func checkFrustum(aspect, near, far float64) error {
	if !(aspect > 0) || !isFinite(aspect) {
		return fmt.Errorf("aspect ratio %v: %w", aspect, ErrDegenerateProjection)
	}
	if !isFinite(near) || !isFinite(far) {
		return fmt.Errorf("clip planes %v..%v: %w", near, far, ErrDegenerateProjection)
	}
	if !(near < far) {
		return fmt.Errorf("near plane %v not in front of far plane %v: %w", near, far, ErrDegenerateProjection)
	}
	return nil
}

// Mul multiplies two matrices
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r[j*4+i] += a[k*4+i] * b[j*4+k]
			}
		}
	}
	return r
}

// MulVec4 multiplies matrix by vec4
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint transforms a 3D point (w=1)
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	r := m.MulVec4(Vec4{v.X, v.Y, v.Z, 1})
	if r.W != 0 {
		return Vec3{r.X / r.W, r.Y / r.W, r.Z / r.W}
	}
	return Vec3{r.X, r.Y, r.Z}
}

// TransformDir transforms a direction (w=0)
func (m Mat4) TransformDir(v Vec3) Vec3 {
	r := m.MulVec4(Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{r.X, r.Y, r.Z}
}

// Mat4LookAt builds the view matrix as the inverse of the camera's rigid
// transform, written out directly as [Rᵀ | -Rᵀ·eye].
func Mat4LookAt(eye, target, up Vec3) (Mat4, error) {
	if !eye.IsFinite() || !target.IsFinite() || !up.IsFinite() {
		return Mat4{}, fmt.Errorf("non-finite eye %v, target %v or up %v: %w", eye, target, up, ErrDegenerateView)
	}
	fwd := target.Sub(eye)
	if fwd.Len() < 1e-10 {
		return Mat4{}, fmt.Errorf("eye %v coincides with target: %w", eye, ErrDegenerateView)
	}
	f := fwd.Normalize()
	s := f.Cross(up)
	if s.Len() < 1e-10 {
		return Mat4{}, fmt.Errorf("forward %v parallel to up %v: %w", f, up, ErrDegenerateView)
	}
	s = s.Normalize()
	u := s.Cross(f).Normalize()

	var m Mat4
	m[0], m[4], m[8] = s.X, s.Y, s.Z
	m[1], m[5], m[9] = u.X, u.Y, u.Z
	m[2], m[6], m[10] = -f.X, -f.Y, -f.Z
	m[12] = -s.Dot(eye)
	m[13] = -u.Dot(eye)
	m[14] = f.Dot(eye)
	m[15] = 1
	return m, nil
}

// Transform places an object in the world. Rotation holds per-axis Euler
// angles in radians, applied as Rx·Ry·Rz.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: Vec3{1, 1, 1}}
}

// ModelMatrix returns Translation · Rotation · Scale.
func (t *Transform) ModelMatrix() Mat4 {
	tr := Mat4Translate(t.Position.X, t.Position.Y, t.Position.Z)
	sc := Mat4Scale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	return tr.Mul(Mat4RotateXYZ(t.Rotation)).Mul(sc)
}

// Color3 is a linear RGB color
type Color3 struct {
	R, G, B float64
}

func (c Color3) Scale(s float64) Color3 {
	return Color3{c.R * s, c.G * s, c.B * s}
}

func (c Color3) Add(o Color3) Color3 {
	return Color3{
		math.Min(c.R+o.R, 1),
		math.Min(c.G+o.G, 1),
		math.Min(c.B+o.B, 1),
	}
}

func (c Color3) Mul(o Color3) Color3 {
	return Color3{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color3) Clamp() Color3 {
	return Color3{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
