package main

import (
	"image/color"
	"log"
	"math/rand"
	"strings"

	"github.com/1siamBot/shading-samples/engine/core"
	"github.com/1siamBot/shading-samples/engine/input"
	"github.com/1siamBot/shading-samples/engine/render3d"
	"github.com/1siamBot/shading-samples/engine/ui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	ScreenWidth  = 1080
	ScreenHeight = 720
	NumCubes     = 5
	Seed         = 0
)

// Game implements ebiten.Game interface
type Game struct {
	params   core.Params
	camera   *render3d.OrbitCamera
	renderer *render3d.Renderer3D
	input    *input.InputState
	panels   *ui.PanelSet
	clock    *core.FrameClock
	events   *core.EventBus
	rejects  core.RejectLog
	drawErrs core.RejectLog
	rejected string // shown until the params validate again

	cubeMesh *render3d.Mesh3D
	cubes    []render3d.Transform
	items    []render3d.DrawItem
}

func NewGame() *Game {
	g := &Game{
		params:   core.DefaultParams(),
		renderer: render3d.NewRenderer3D(ScreenWidth, ScreenHeight),
		input:    input.NewInputState(),
		clock:    core.NewFrameClock(),
		events:   core.NewEventBus(),
		cubeMesh: render3d.MakeBox(1, 1, 1, render3d.Color3{R: 0.9, G: 0.6, B: 0.3}),
	}
	g.params.Lighting.Dir.Color = render3d.Color3{R: 1, G: 1, B: 1}
	g.params.Lighting.HasPoint = false
	g.camera = render3d.NewOrbitCamera(g.params.OrbitRadius, g.renderer.Aspect())
	g.cubes = randomCubes(rand.New(rand.NewSource(Seed)), NumCubes)
	g.panels = g.buildPanels()

	g.events.On(core.EvtProjectionToggled, func(core.Event) {
		g.params.Orthographic = !g.params.Orthographic
	})
	g.events.On(core.EvtConfigRejected, func(e core.Event) {
		if err, ok := e.Payload.(error); ok {
			g.rejected = strings.ReplaceAll(err.Error(), "\n", "; ")
		}
	})
	return g
}

// randomCubes scatters cubes in [-5,5)³ with random orientation and scale.
func randomCubes(rng *rand.Rand, n int) []render3d.Transform {
	cubes := make([]render3d.Transform, n)
	for i := range cubes {
		cubes[i] = render3d.Transform{
			Position: render3d.V3(
				float64(rng.Intn(10)-5),
				float64(rng.Intn(10)-5),
				float64(rng.Intn(10)-5),
			),
			Rotation: render3d.V3(
				mgl64.DegToRad(float64(rng.Intn(360))),
				mgl64.DegToRad(float64(rng.Intn(360))),
				mgl64.DegToRad(float64(rng.Intn(360))),
			),
			Scale: render3d.V3(
				float64(rng.Intn(5))+0.1,
				float64(rng.Intn(5))+0.1,
				float64(rng.Intn(5))+0.1,
			),
		}
	}
	return cubes
}

func (g *Game) buildPanels() *ui.PanelSet {
	p := &g.params
	ortho := func() bool { return p.Orthographic }
	persp := func() bool { return !p.Orthographic }

	settings := (&ui.Panel{Title: "Settings"}).
		Add(&ui.Toggle{Name: "Orthographic Toggle", Ptr: &p.Orthographic}).
		AddIf(&ui.Slider{Name: "Orthographic Height", Ptr: &p.OrthoHeight, Min: 1, Max: 100}, ortho).
		AddIf(&ui.Slider{Name: "Field of View", Ptr: &p.FOV, Min: 0.01, Max: 3.14}, persp).
		Add(&ui.Slider{Name: "Orbit Radius", Ptr: &p.OrbitRadius, Min: 1, Max: 50}).
		Add(&ui.Slider{Name: "Orbit Speed", Ptr: &p.OrbitSpeed, Min: 0, Max: 10})

	return &ui.PanelSet{Panels: []*ui.Panel{settings}, X: 10, Y: 10}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.clock.Tick()
	g.panels.HandleInput()

	if g.input.IsKeyJustPressed(ebiten.KeyO) {
		g.events.Emit(core.Event{Type: core.EvtProjectionToggled, Frame: g.clock.Frame})
	}
	g.events.Dispatch()

	// Projection settings first, then the orbit step.
	err := g.params.Validate()
	if g.rejects.Observe(err) {
		g.events.Emit(core.Event{Type: core.EvtConfigRejected, Frame: g.clock.Frame, Payload: err})
	}
	if err != nil {
		return nil
	}
	g.rejected = ""
	g.params.ApplyTo(g.camera)
	g.camera.Orbit(g.params.OrbitSpeed, g.params.OrbitRadius)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.params.Background
	screen.Fill(color.RGBA{uint8(bg.R * 255), uint8(bg.G * 255), uint8(bg.B * 255), 255})

	g.items = g.items[:0]
	for i := range g.cubes {
		g.items = append(g.items, render3d.DrawItem{
			Mesh:     g.cubeMesh,
			Model:    g.cubes[i].ModelMatrix(),
			Material: g.params.Material,
		})
	}
	g.renderer.Lighting = g.params.Lighting
	g.renderer.Wireframe = g.params.Wireframe
	g.drawErrs.Observe(g.renderer.Draw(screen, g.camera, g.items))

	g.panels.Draw(screen)
	if g.rejected != "" {
		ebitenutil.DebugPrintAt(screen, "Rejected: "+g.rejected, 10, g.renderer.ScreenH-20)
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
	ebiten.SetWindowTitle("Transformations")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
