package render3d

import "testing"

// Every primitive must wind counter-clockwise around its outward normal,
// otherwise the renderer culls the wrong side.
func TestPrimitiveWindingMatchesNormals(t *testing.T) {
	white := Color3{1, 1, 1}
	tests := []struct {
		name string
		mesh *Mesh3D
		tris int
	}{
		{"box", MakeBox(1, 2, 3, white), 12},
		{"sphere", MakeSphere(0.5, 16, white), 224},
		{"cylinder", MakeCylinder(0.5, 1, 12, white), 12 * 4},
		{"plane", MakePlane(1, 1, white), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.mesh.Triangles); got != tt.tris {
				t.Errorf("triangle count = %d, want %d", got, tt.tris)
			}
			for i, tri := range tt.mesh.Triangles {
				face := tri.V[1].Pos.Sub(tri.V[0].Pos).Cross(tri.V[2].Pos.Sub(tri.V[0].Pos))
				n := tri.V[0].Normal.Add(tri.V[1].Normal).Add(tri.V[2].Normal)
				if face.Dot(n) <= 0 {
					t.Fatalf("triangle %d winds against its normal: face %v normal %v", i, face, n)
				}
			}
		})
	}
}

func TestSphereVerticesOnSurface(t *testing.T) {
	m := MakeSphere(2, 8, Color3{})
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			if !floatEqual(v.Pos.Len(), 2, 1e-12) {
				t.Fatalf("vertex %v not on radius 2", v.Pos)
			}
			if !vec3Equal(v.Normal, v.Pos.Normalize(), 1e-12) {
				t.Fatalf("normal %v does not point outward from %v", v.Normal, v.Pos)
			}
		}
	}
}

func TestPlaneModelTransform(t *testing.T) {
	m := MakePlane(2, 2, Color3{})
	tr := Transform{Position: V3(0, -1, 0), Rotation: V3(0, 0, 1.5707963267948966), Scale: V3(10, 10, 10)}
	model := tr.ModelMatrix()

	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			// rotated 90° about Z: +Y normal becomes -X
			if n := model.TransformDir(v.Normal).Normalize(); !vec3Equal(n, V3(-1, 0, 0), 1e-9) {
				t.Fatalf("normal = %v, want (-1,0,0)", n)
			}
			if p := model.TransformPoint(v.Pos); !floatEqual(p.X, 0, 1e-9) || !floatEqual(p.Y+1, 10*v.Pos.X, 1e-9) {
				t.Fatalf("position %v maps to %v", v.Pos, p)
			}
		}
	}
}
