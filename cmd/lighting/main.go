package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/1siamBot/shading-samples/engine/core"
	"github.com/1siamBot/shading-samples/engine/input"
	"github.com/1siamBot/shading-samples/engine/render3d"
	"github.com/1siamBot/shading-samples/engine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	ScreenWidth  = 1080
	ScreenHeight = 720

	MouseSensitivity = 0.1
	CameraMoveSpeed  = 5.0
	CameraZoomSpeed  = 3.0

	TextureSize   = 256
	BambooTexture = "assets/textures/bamboo.jpg"
	FabricTexture = "assets/textures/fabric.jpg"
)

type shape struct {
	mesh      *render3d.Mesh3D
	transform render3d.Transform
	texture   *render3d.Texture
	uvScale   float64
}

// Game implements ebiten.Game interface
type Game struct {
	params   core.Params
	applied  core.Params // last params that passed validation
	camera   *render3d.FlyCamera
	renderer *render3d.Renderer3D
	input    *input.InputState
	panels   *ui.PanelSet
	clock    *core.FrameClock
	events   *core.EventBus
	rejects  core.RejectLog
	drawErrs core.RejectLog
	rejected string // shown until the params validate again

	cube, sphere, cylinder, plane *shape
	lightGizmo                    *shape

	wrapIndex int
	items     []render3d.DrawItem
}

func NewGame() *Game {
	g := &Game{
		params:   core.DefaultParams(),
		renderer: render3d.NewRenderer3D(ScreenWidth, ScreenHeight),
		input:    input.NewInputState(),
		clock:    core.NewFrameClock(),
		events:   core.NewEventBus(),
	}
	g.applied = g.params
	g.camera = render3d.NewFlyCamera(g.renderer.Aspect())

	white := render3d.Color3{R: 1, G: 1, B: 1}
	bamboo := render3d.NewTexture(render3d.LoadTexture(BambooTexture, TextureSize))
	fabric := render3d.NewTexture(render3d.LoadTexture(FabricTexture, TextureSize))
	sphereMesh := render3d.MakeSphere(0.5, 64, white)

	g.cube = &shape{mesh: render3d.MakeBox(1, 1, 1, white), transform: render3d.NewTransform(), texture: bamboo, uvScale: 1}
	g.cube.transform.Position = render3d.V3(-2, 0, 0)

	g.sphere = &shape{mesh: sphereMesh, transform: render3d.NewTransform(), texture: bamboo, uvScale: 2}

	g.cylinder = &shape{mesh: render3d.MakeCylinder(0.5, 1, 64, white), transform: render3d.NewTransform(), texture: bamboo, uvScale: 1}
	g.cylinder.transform.Position = render3d.V3(2, 0, 0)

	g.plane = &shape{mesh: render3d.MakePlane(1, 1, white), transform: render3d.NewTransform(), texture: fabric, uvScale: 4}
	g.plane.transform.Position = render3d.V3(0, -1, 0)
	g.plane.transform.Scale = render3d.V3(10, 10, 10)

	g.lightGizmo = &shape{mesh: sphereMesh, transform: render3d.NewTransform()}
	g.lightGizmo.transform.Scale = render3d.V3(0.5, 0.5, 0.5)

	g.panels = g.buildPanels()
	g.wireEvents()
	g.input.SetCaptured(true)
	return g
}

func (g *Game) wireEvents() {
	g.events.On(core.EvtCameraReset, func(core.Event) {
		g.camera.Reset()
		g.input.Look.Reset()
	})
	g.events.On(core.EvtWireframeToggled, func(core.Event) {
		g.params.Wireframe = !g.params.Wireframe
	})
	g.events.On(core.EvtCursorCaptureToggled, func(e core.Event) {
		log.Printf("Cursor captured: %v", e.Payload)
	})
	g.events.On(core.EvtWrapModeChanged, func(e core.Event) {
		log.Printf("Wrap mode: %v", e.Payload)
	})
	g.events.On(core.EvtConfigRejected, func(e core.Event) {
		if err, ok := e.Payload.(error); ok {
			g.rejected = strings.ReplaceAll(err.Error(), "\n", "; ")
		}
	})
}

func (g *Game) buildPanels() *ui.PanelSet {
	p := &g.params
	l := &p.Lighting
	m := &p.Material

	material := (&ui.Panel{Title: "Material"}).
		Add(&ui.Toggle{Name: "Scrolling", Ptr: &p.Scrolling}).
		Add(&ui.Slider{Name: "Scroll Speed", Ptr: &p.ScrollSpeed, Min: 0, Max: 1}).
		Add(&ui.Choice{
			Name:    "Wrapping Mode",
			Options: render3d.WrapModeNames(),
			Get:     func() int { return int(p.Wrap) },
			Set:     func(i int) { p.Wrap = render3d.WrapMode(i) },
		}).
		Add(&ui.Slider{Name: "Material Ambient K", Ptr: &m.AmbientK, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Material Diffuse K", Ptr: &m.DiffuseK, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Material Specular K", Ptr: &m.SpecularK, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Material Shininess", Ptr: &m.Shininess, Min: 1, Max: 512})

	dir := (&ui.Panel{Title: "Directional Light"}).
		Add(&ui.Slider{Name: "Color R", Ptr: &l.Dir.Color.R, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Color G", Ptr: &l.Dir.Color.G, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Color B", Ptr: &l.Dir.Color.B, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Direction X", Ptr: &l.Dir.Direction.X, Min: -5, Max: 5, Inc: 0.25}).
		Add(&ui.Slider{Name: "Direction Y", Ptr: &l.Dir.Direction.Y, Min: -5, Max: 5, Inc: 0.25}).
		Add(&ui.Slider{Name: "Direction Z", Ptr: &l.Dir.Direction.Z, Min: -5, Max: 5, Inc: 0.25}).
		Add(&ui.Slider{Name: "Intensity", Ptr: &l.Dir.Intensity, Min: 0, Max: 1}).
		Add(&ui.IntSlider{Name: "Cell Levels", Ptr: &l.Toon.Levels, Min: 1, Max: 10}).
		Add(&ui.Toggle{Name: "Enable Cell Shading", Ptr: &l.Toon.Enabled}).
		Add(&ui.Toggle{Name: "Enable Floor Function", Ptr: &l.Toon.Floor})

	point := (&ui.Panel{Title: "Point Lights"}).
		Add(&ui.Slider{Name: "Color R", Ptr: &l.Point.Color.R, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Color G", Ptr: &l.Point.Color.G, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Color B", Ptr: &l.Point.Color.B, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Position X", Ptr: &l.Point.Position.X, Min: -10, Max: 10, Inc: 0.25}).
		Add(&ui.Slider{Name: "Position Y", Ptr: &l.Point.Position.Y, Min: -10, Max: 10, Inc: 0.25}).
		Add(&ui.Slider{Name: "Position Z", Ptr: &l.Point.Position.Z, Min: -10, Max: 10, Inc: 0.25}).
		Add(&ui.Slider{Name: "Intensity", Ptr: &l.Point.Intensity, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Linear Attenuation", Ptr: &l.Point.LinearAtt, Min: 0, Max: 10})

	view := (&ui.Panel{Title: "View"}).
		Add(&ui.Toggle{Name: "Wireframe (1)", Ptr: &p.Wireframe}).
		Add(&ui.Slider{Name: "Background R", Ptr: &p.Background.R, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Background G", Ptr: &p.Background.G, Min: 0, Max: 1}).
		Add(&ui.Slider{Name: "Background B", Ptr: &p.Background.B, Min: 0, Max: 1})

	return &ui.PanelSet{Panels: []*ui.Panel{material, dir, point, view}, X: 10, Y: 10}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := g.clock.Tick()
	g.input.Update()
	g.panels.HandleInput()

	frame := g.clock.Frame
	if g.input.ToggleJustPressed {
		g.events.Emit(core.Event{Type: core.EvtCursorCaptureToggled, Frame: frame, Payload: g.input.Look.Captured})
	}
	if g.input.IsKeyJustPressed(ebiten.KeyR) {
		g.events.Emit(core.Event{Type: core.EvtCameraReset, Frame: frame})
	}
	if g.input.IsKeyJustPressed(ebiten.Key1) {
		g.events.Emit(core.Event{Type: core.EvtWireframeToggled, Frame: frame})
	}
	if int(g.params.Wrap) != g.wrapIndex {
		g.wrapIndex = int(g.params.Wrap)
		g.events.Emit(core.Event{Type: core.EvtWrapModeChanged, Frame: frame, Payload: g.params.Wrap})
	}
	g.events.Dispatch()

	g.processCamera(dt)

	// Spin the cube around X
	g.cube.transform.Rotation.X += dt

	err := g.params.Validate()
	if g.rejects.Observe(err) {
		g.events.Emit(core.Event{Type: core.EvtConfigRejected, Frame: frame, Payload: err})
	}
	if err == nil {
		g.applied = g.params
		g.rejected = ""
	}
	return nil
}

func (g *Game) processCamera(dt float64) {
	amount := CameraMoveSpeed * dt
	g.camera.Move(
		g.input.KeyAxis(ebiten.KeyW, ebiten.KeyS),
		g.input.KeyAxis(ebiten.KeyD, ebiten.KeyA),
		g.input.KeyAxis(ebiten.KeyE, ebiten.KeyQ),
		amount,
	)
	g.camera.Look(g.input.LookDX, g.input.LookDY, MouseSensitivity)
	if g.input.ScrollY != 0 {
		g.camera.SetFOV(g.camera.FOV - g.input.ScrollY*CameraZoomSpeed)
	}
}

func (g *Game) shapeItem(s *shape, uvOffset float64) render3d.DrawItem {
	return render3d.DrawItem{
		Mesh:     s.mesh,
		Model:    s.transform.ModelMatrix(),
		Material: g.applied.Material,
		Texture:  s.texture,
		UVScale:  s.uvScale,
		UVOffset: uvOffset,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	p := &g.applied
	bg := p.Background
	screen.Fill(color.RGBA{uint8(bg.R * 255), uint8(bg.G * 255), uint8(bg.B * 255), 255})

	off := p.UVOffset(g.clock.Elapsed)
	g.lightGizmo.transform.Position = p.Lighting.Point.Position

	g.items = append(g.items[:0],
		g.shapeItem(g.cube, off),
		g.shapeItem(g.sphere, off),
		g.shapeItem(g.cylinder, off),
		g.shapeItem(g.plane, off),
		render3d.DrawItem{
			Mesh:  g.lightGizmo.mesh,
			Model: g.lightGizmo.transform.ModelMatrix(),
			Unlit: true,
			Color: p.Lighting.Point.Color,
		},
	)

	g.renderer.Lighting = p.Lighting
	g.renderer.Wrap = p.Wrap
	g.renderer.Wireframe = p.Wireframe
	g.drawErrs.Observe(g.renderer.Draw(screen, g.camera, g.items))

	g.panels.Draw(screen)
	status := fmt.Sprintf("FPS %.0f  FOV %.1f  RMB: toggle mouse look  R: reset  1: wireframe",
		ebiten.ActualFPS(), g.camera.FOV)
	ebitenutil.DebugPrintAt(screen, status, 10, g.renderer.ScreenH-20)
	if g.rejected != "" {
		ebitenutil.DebugPrintAt(screen, "Rejected: "+g.rejected, 10, g.renderer.ScreenH-36)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.renderer.ScreenW || outsideHeight != g.renderer.ScreenH {
		g.renderer.Resize(outsideWidth, outsideHeight)
		g.camera.Aspect = g.renderer.Aspect()
	}
	return outsideWidth, outsideHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Lighting")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
