package render3d

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Texture is a GPU image plus the mirrored atlas used for mirrored repeat.
type Texture struct {
	img      *ebiten.Image
	mirrored *ebiten.Image
	size     float64
}

// NewTexture uploads a square texture.
func NewTexture(img *image.RGBA) *Texture {
	return &Texture{
		img:      ebiten.NewImageFromImage(img),
		mirrored: ebiten.NewImageFromImage(MirrorTile(img)),
		size:     float64(img.Bounds().Dx()),
	}
}

// DrawItem is one mesh instance submitted for a frame.
type DrawItem struct {
	Mesh     *Mesh3D
	Model    Mat4
	Material Material

	// Unlit items ignore the lighting setup and draw in Color.
	Unlit bool
	Color Color3

	Texture  *Texture
	UVScale  float64
	UVOffset float64
}

// screenVertex is a projected vertex in pixel space.
type screenVertex struct {
	X, Y, Z float64 // Z is NDC depth
	U, V    float64
	Color   Color3
}

// screenTri is one triangle left after clipping, with its sort depth.
type screenTri struct {
	v     [3]screenVertex
	depth float64
}

type projectedTri struct {
	v      [3]screenVertex
	depth  float64
	tex    *Texture
	scale  float64
	offset float64
}

// clipVertex is a vertex in homogeneous clip space.
type clipVertex struct {
	pos   Vec4
	u, v  float64
	color Color3
}

// Renderer3D draws depth-sorted triangle meshes with per-vertex lighting
type Renderer3D struct {
	ScreenW, ScreenH int
	Lighting         LightingSetup
	Wrap             WrapMode
	Wireframe        bool

	whiteImg *ebiten.Image
	tris     []projectedTri
	clipped  []screenTri
}

// NewRenderer3D creates the 3D renderer
func NewRenderer3D(screenW, screenH int) *Renderer3D {
	r := &Renderer3D{
		ScreenW:  screenW,
		ScreenH:  screenH,
		Lighting: DefaultLighting(),
	}

	// small white image for untextured colored triangles
	r.whiteImg = ebiten.NewImage(4, 4)
	r.whiteImg.Fill(color.White)

	return r
}

// Resize updates the viewport size.
func (r *Renderer3D) Resize(w, h int) {
	r.ScreenW, r.ScreenH = w, h
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer3D) Aspect() float64 {
	if r.ScreenH == 0 {
		return 1
	}
	return float64(r.ScreenW) / float64(r.ScreenH)
}

// Draw renders all items as seen from cam. Projection or view errors are
// returned before anything is drawn.
func (r *Renderer3D) Draw(screen *ebiten.Image, cam Projector, items []DrawItem) error {
	view, err := cam.ViewMatrix()
	if err != nil {
		return err
	}
	proj, err := cam.ProjectionMatrix()
	if err != nil {
		return err
	}
	vp := proj.Mul(view)
	eye := cam.Eye()
	sw, sh := float64(r.ScreenW), float64(r.ScreenH)

	r.tris = r.tris[:0]
	for _, it := range items {
		scale := it.UVScale
		if scale == 0 {
			scale = 1
		}
		for _, tri := range it.Mesh.Triangles {
			var world [3]Vertex3D
			for i := 0; i < 3; i++ {
				v := tri.V[i]
				v.Pos = it.Model.TransformPoint(v.Pos)
				v.Normal = it.Model.TransformDir(v.Normal).Normalize()
				if it.Unlit {
					v.Color = it.Color
				} else {
					v.Color = r.Lighting.ComputeLighting(v.Pos, v.Normal, eye, it.Material, v.Color)
				}
				world[i] = v
			}
			r.clipped = projectTriangle(world, vp, sw, sh, r.clipped[:0])
			for _, st := range r.clipped {
				if !frontFacing(st.v) {
					continue
				}
				r.tris = append(r.tris, projectedTri{v: st.v, depth: st.depth, tex: it.Texture, scale: scale, offset: it.UVOffset})
			}
		}
	}

	// Sort back-to-front
	sort.SliceStable(r.tris, func(i, j int) bool {
		return r.tris[i].depth > r.tris[j].depth
	})

	if r.Wireframe {
		r.drawWireframe(screen)
		return nil
	}
	r.drawFilled(screen)
	return nil
}

// projectTriangle clips a world-space triangle against the near and far
// planes and appends what remains to dst as a fan of pixel-space triangles.
// All pieces share the depth of the clipped polygon.
func projectTriangle(tri [3]Vertex3D, vp Mat4, sw, sh float64, dst []screenTri) []screenTri {
	// a triangle cut by two planes has at most five corners
	var bufA, bufB [8]clipVertex
	poly := bufA[:0]
	for _, v := range tri {
		poly = append(poly, clipVertex{
			pos:   vp.MulVec4(Vec4{v.Pos.X, v.Pos.Y, v.Pos.Z, 1}),
			u:     v.U,
			v:     v.V,
			color: v.Color,
		})
	}
	poly = clipPolygon(poly, nearDist, bufB[:0])
	poly = clipPolygon(poly, farDist, bufA[:0])
	if len(poly) < 3 {
		return dst
	}

	var sv [8]screenVertex
	depth := 0.0
	for i, c := range poly {
		if c.pos.W <= 1e-9 {
			return dst
		}
		nx, ny, nz := c.pos.X/c.pos.W, c.pos.Y/c.pos.W, c.pos.Z/c.pos.W
		sv[i] = screenVertex{
			X:     (nx*0.5 + 0.5) * sw,
			Y:     (1 - (ny*0.5 + 0.5)) * sh,
			Z:     nz,
			U:     c.u,
			V:     c.v,
			Color: c.color,
		}
		depth += nz
	}
	depth /= float64(len(poly))

	for i := 1; i+1 < len(poly); i++ {
		dst = append(dst, screenTri{v: [3]screenVertex{sv[0], sv[i], sv[i+1]}, depth: depth})
	}
	return dst
}

// OpenGL clip volume: -w <= z <= w.
func nearDist(p Vec4) float64 { return p.Z + p.W }
func farDist(p Vec4) float64  { return p.W - p.Z }

// clipPolygon keeps the part of poly where dist >= 0 (Sutherland-Hodgman),
// interpolating UVs and colors at the cut. The result is appended to out.
func clipPolygon(poly []clipVertex, dist func(Vec4) float64, out []clipVertex) []clipVertex {
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		dc, dp := dist(cur.pos), dist(prev.pos)
		if (dc >= 0) != (dp >= 0) {
			out = append(out, lerpClip(prev, cur, dp/(dp-dc)))
		}
		if dc >= 0 {
			out = append(out, cur)
		}
	}
	return out
}

func lerpClip(a, b clipVertex, t float64) clipVertex {
	mix := func(x, y float64) float64 { return x + (y-x)*t }
	return clipVertex{
		pos:   Vec4{mix(a.pos.X, b.pos.X), mix(a.pos.Y, b.pos.Y), mix(a.pos.Z, b.pos.Z), mix(a.pos.W, b.pos.W)},
		u:     mix(a.u, b.u),
		v:     mix(a.v, b.v),
		color: Color3{mix(a.color.R, b.color.R), mix(a.color.G, b.color.G), mix(a.color.B, b.color.B)},
	}
}

// frontFacing reports counter-clockwise winding in NDC, which is
// clockwise on the Y-down screen.
func frontFacing(v [3]screenVertex) bool {
	ax := v[1].X - v[0].X
	ay := v[1].Y - v[0].Y
	bx := v[2].X - v[0].X
	by := v[2].Y - v[0].Y
	return ax*by-ay*bx < -0.5
}

func (r *Renderer3D) addressFor(tex *Texture) (*ebiten.Image, ebiten.Address) {
	if tex == nil {
		return r.whiteImg, ebiten.AddressUnsafe
	}
	switch r.Wrap {
	case WrapClampToBorder:
		return tex.img, ebiten.AddressClampToZero
	case WrapRepeat:
		return tex.img, ebiten.AddressRepeat
	case WrapMirroredRepeat:
		return tex.mirrored, ebiten.AddressRepeat
	default:
		return tex.img, ebiten.AddressUnsafe
	}
}

func (r *Renderer3D) srcCoords(v screenVertex, tex *Texture, scale, offset float64) (float32, float32) {
	if tex == nil {
		return 1, 1
	}
	u, t := v.U*scale+offset, v.V*scale
	if r.Wrap == WrapClampToEdge {
		// Clamped per vertex: a triangle whose UVs cross 0 or 1 (for example
		// while scrolling) is squeezed rather than smeared at the edge texel.
		u, _ = WrapCoord(u, WrapClampToEdge)
		t, _ = WrapCoord(t, WrapClampToEdge)
		// keep samples inside the texel grid
		inset := 0.5 / tex.size
		u = math.Min(math.Max(u, inset), 1-inset)
		t = math.Min(math.Max(t, inset), 1-inset)
	}
	return float32(u * tex.size), float32((1 - t) * tex.size)
}

// drawFilled submits triangles in sorted order, batching runs that share a
// source image.
func (r *Renderer3D) drawFilled(screen *ebiten.Image) {
	vertices := make([]ebiten.Vertex, 0, len(r.tris)*3)
	indices := make([]uint16, 0, len(r.tris)*3)
	var curTex *Texture
	flush := func() {
		if len(indices) == 0 {
			return
		}
		src, addr := r.addressFor(curTex)
		screen.DrawTriangles(vertices, indices, src, &ebiten.DrawTrianglesOptions{Address: addr})
		vertices = vertices[:0]
		indices = indices[:0]
	}

	for i, tri := range r.tris {
		if i == 0 || tri.tex != curTex {
			flush()
			curTex = tri.tex
		}
		base := uint16(len(vertices))
		for _, v := range tri.v {
			sx, sy := r.srcCoords(v, tri.tex, tri.scale, tri.offset)
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(v.X),
				DstY:   float32(v.Y),
				SrcX:   sx,
				SrcY:   sy,
				ColorR: float32(v.Color.R),
				ColorG: float32(v.Color.G),
				ColorB: float32(v.Color.B),
				ColorA: 1,
			})
		}
		indices = append(indices, base, base+1, base+2)

		// Flush if approaching uint16 limit
		if len(vertices) > 65000 {
			flush()
		}
	}
	flush()
}

func (r *Renderer3D) drawWireframe(screen *ebiten.Image) {
	for _, tri := range r.tris {
		for i := 0; i < 3; i++ {
			a, b := tri.v[i], tri.v[(i+1)%3]
			c := a.Color
			clr := color.RGBA{uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255), 255}
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, true)
		}
	}
}
