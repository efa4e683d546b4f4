package render3d

import "math"

// Vertex3D is a vertex with position, normal, texture coordinate and color
type Vertex3D struct {
	Pos    Vec3
	Normal Vec3
	U, V   float64
	Color  Color3
}

// Triangle3D is three vertices
type Triangle3D struct {
	V [3]Vertex3D
}

// Mesh3D is a collection of triangles
type Mesh3D struct {
	Triangles []Triangle3D
}

func NewMesh() *Mesh3D { return &Mesh3D{} }

func (m *Mesh3D) AddTriangle(v0, v1, v2 Vertex3D) {
	m.Triangles = append(m.Triangles, Triangle3D{V: [3]Vertex3D{v0, v1, v2}})
}

func (m *Mesh3D) AddQuad(v0, v1, v2, v3 Vertex3D) {
	m.AddTriangle(v0, v1, v2)
	m.AddTriangle(v0, v2, v3)
}

// --- Primitive generators ---
// All primitives are centered on the origin with counter-clockwise front faces.

func MakeBox(w, h, d float64, c Color3) *Mesh3D {
	m := NewMesh()
	hw, hh, hd := w/2, h/2, d/2

	v := [8]Vec3{
		{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {-hw, hh, -hd},
		{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd},
	}

	faces := [][4]int{
		{1, 0, 3, 2}, // back (-Z)
		{4, 5, 6, 7}, // front (+Z)
		{0, 4, 7, 3}, // left
		{5, 1, 2, 6}, // right
		{7, 6, 2, 3}, // top
		{0, 1, 5, 4}, // bottom
	}
	normals := []Vec3{
		{0, 0, -1}, {0, 0, 1}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}
	uvs := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for fi, f := range faces {
		n := normals[fi]
		var q [4]Vertex3D
		for k := 0; k < 4; k++ {
			q[k] = Vertex3D{Pos: v[f[k]], Normal: n, U: uvs[k][0], V: uvs[k][1], Color: c}
		}
		m.AddQuad(q[0], q[1], q[2], q[3])
	}
	return m
}

func MakeSphere(radius float64, segments int, c Color3) *Mesh3D {
	m := NewMesh()
	if segments < 4 {
		segments = 4
	}
	rings := segments / 2

	vert := func(ring, seg int) Vertex3D {
		theta := float64(ring) / float64(rings) * math.Pi
		phi := float64(seg) / float64(segments) * 2 * math.Pi
		n := V3(math.Sin(theta)*math.Sin(phi), math.Cos(theta), math.Sin(theta)*math.Cos(phi))
		return Vertex3D{
			Pos:    n.Scale(radius),
			Normal: n,
			U:      float64(seg) / float64(segments),
			V:      1 - float64(ring)/float64(rings),
			Color:  c,
		}
	}

	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			v00 := vert(r, s)
			v01 := vert(r, s+1)
			v10 := vert(r+1, s)
			v11 := vert(r+1, s+1)
			if r != 0 {
				m.AddTriangle(v00, v10, v01)
			}
			if r != rings-1 {
				m.AddTriangle(v01, v10, v11)
			}
		}
	}
	return m
}

func MakeCylinder(radius, height float64, segments int, c Color3) *Mesh3D {
	m := NewMesh()
	if segments < 6 {
		segments = 6
	}
	hh := height / 2
	top := V3(0, hh, 0)
	bot := V3(0, -hh, 0)

	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * math.Pi
		a1 := float64(i+1) / float64(segments) * 2 * math.Pi
		x0, z0 := radius*math.Sin(a0), radius*math.Cos(a0)
		x1, z1 := radius*math.Sin(a1), radius*math.Cos(a1)
		u0 := float64(i) / float64(segments)
		u1 := float64(i+1) / float64(segments)

		p0t := V3(x0, hh, z0)
		p1t := V3(x1, hh, z1)
		p0b := V3(x0, -hh, z0)
		p1b := V3(x1, -hh, z1)

		n0 := V3(x0, 0, z0).Normalize()
		n1 := V3(x1, 0, z1).Normalize()

		m.AddQuad(
			Vertex3D{Pos: p0b, Normal: n0, U: u0, V: 0, Color: c},
			Vertex3D{Pos: p1b, Normal: n1, U: u1, V: 0, Color: c},
			Vertex3D{Pos: p1t, Normal: n1, U: u1, V: 1, Color: c},
			Vertex3D{Pos: p0t, Normal: n0, U: u0, V: 1, Color: c},
		)

		capUV := func(x, z float64) (float64, float64) {
			return 0.5 + x/(2*radius), 0.5 + z/(2*radius)
		}

		topN := V3(0, 1, 0)
		tu0, tv0 := capUV(x0, z0)
		tu1, tv1 := capUV(x1, z1)
		m.AddTriangle(
			Vertex3D{Pos: top, Normal: topN, U: 0.5, V: 0.5, Color: c},
			Vertex3D{Pos: p0t, Normal: topN, U: tu0, V: tv0, Color: c},
			Vertex3D{Pos: p1t, Normal: topN, U: tu1, V: tv1, Color: c},
		)

		botN := V3(0, -1, 0)
		m.AddTriangle(
			Vertex3D{Pos: bot, Normal: botN, U: 0.5, V: 0.5, Color: c},
			Vertex3D{Pos: p1b, Normal: botN, U: tu1, V: tv1, Color: c},
			Vertex3D{Pos: p0b, Normal: botN, U: tu0, V: tv0, Color: c},
		)
	}
	return m
}

// MakePlane builds a horizontal quad facing +Y.
func MakePlane(w, d float64, c Color3) *Mesh3D {
	m := NewMesh()
	hw, hd := w/2, d/2
	n := V3(0, 1, 0)
	m.AddQuad(
		Vertex3D{Pos: V3(-hw, 0, hd), Normal: n, U: 0, V: 0, Color: c},
		Vertex3D{Pos: V3(hw, 0, hd), Normal: n, U: 1, V: 0, Color: c},
		Vertex3D{Pos: V3(hw, 0, -hd), Normal: n, U: 1, V: 1, Color: c},
		Vertex3D{Pos: V3(-hw, 0, -hd), Normal: n, U: 0, V: 1, Color: c},
	)
	return m
}
