package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Control is one editable row of a panel.
type Control interface {
	Label() string
	Value() string
	// Step nudges the value; dir is +1 or -1, fine selects a smaller step.
	Step(dir int, fine bool)
}

// Slider edits a float within [Min, Max].
type Slider struct {
	Name     string
	Ptr      *float64
	Min, Max float64
	Inc      float64 // 0 means 1/50 of the range
}

func (s *Slider) Label() string { return s.Name }
func (s *Slider) Value() string { return fmt.Sprintf("%.3f", *s.Ptr) }
func (s *Slider) Step(dir int, fine bool) {
	inc := s.Inc
	if inc == 0 {
		inc = (s.Max - s.Min) / 50
	}
	if fine {
		inc /= 10
	}
	*s.Ptr = math.Max(s.Min, math.Min(s.Max, *s.Ptr+float64(dir)*inc))
}

// IntSlider edits an int within [Min, Max].
type IntSlider struct {
	Name     string
	Ptr      *int
	Min, Max int
}

func (s *IntSlider) Label() string { return s.Name }
func (s *IntSlider) Value() string { return fmt.Sprintf("%d", *s.Ptr) }
func (s *IntSlider) Step(dir int, _ bool) {
	v := *s.Ptr + dir
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	*s.Ptr = v
}

// Toggle flips a bool on any step.
type Toggle struct {
	Name string
	Ptr  *bool
}

func (t *Toggle) Label() string { return t.Name }
func (t *Toggle) Value() string {
	if *t.Ptr {
		return "[x]"
	}
	return "[ ]"
}
func (t *Toggle) Step(int, bool) { *t.Ptr = !*t.Ptr }

// Choice cycles through a fixed option list.
type Choice struct {
	Name    string
	Options []string
	Get     func() int
	Set     func(int)
}

func (c *Choice) Label() string { return c.Name }
func (c *Choice) Value() string {
	i := c.Get()
	if i < 0 || i >= len(c.Options) {
		return "?"
	}
	return c.Options[i]
}
func (c *Choice) Step(dir int, _ bool) {
	n := len(c.Options)
	if n == 0 {
		return
	}
	c.Set(((c.Get()+dir)%n + n) % n)
}

// Entry is a control with an optional visibility condition.
type Entry struct {
	Control
	When func() bool
}

// Panel is a titled list of controls navigated with the arrow keys.
type Panel struct {
	Title    string
	Entries  []Entry
	Selected int
}

func (p *Panel) Add(c Control) *Panel {
	p.Entries = append(p.Entries, Entry{Control: c})
	return p
}

func (p *Panel) AddIf(c Control, when func() bool) *Panel {
	p.Entries = append(p.Entries, Entry{Control: c, When: when})
	return p
}

// Visible returns the controls currently shown.
func (p *Panel) Visible() []Control {
	out := make([]Control, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.When == nil || e.When() {
			out = append(out, e.Control)
		}
	}
	return out
}

// Move changes the selected row, wrapping around.
func (p *Panel) Move(dir int) {
	n := len(p.Visible())
	if n == 0 {
		p.Selected = 0
		return
	}
	p.Selected = ((p.Selected+dir)%n + n) % n
}

// Adjust steps the selected control.
func (p *Panel) Adjust(dir int, fine bool) {
	vis := p.Visible()
	if len(vis) == 0 {
		return
	}
	if p.Selected >= len(vis) {
		p.Selected = len(vis) - 1
	}
	vis[p.Selected].Step(dir, fine)
}

// Lines renders the panel as text rows, marking the selection.
func (p *Panel) Lines() []string {
	vis := p.Visible()
	lines := make([]string, 0, len(vis)+1)
	lines = append(lines, p.Title)
	for i, c := range vis {
		mark := "  "
		if i == p.Selected {
			mark = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-24s %s", mark, c.Label(), c.Value()))
	}
	return lines
}

// PanelSet groups panels; Tab switches the active one.
type PanelSet struct {
	Panels []*Panel
	Active int
	X, Y   int
	Hidden bool
}

const (
	lineHeight  = 16
	panelWidth  = 330
	panelMargin = 8
	repeatDelay = 20
	repeatEvery = 3
)

// HandleInput applies keyboard navigation for the active panel.
func (s *PanelSet) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.Hidden = !s.Hidden
	}
	if s.Hidden || len(s.Panels) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.Active = (s.Active + 1) % len(s.Panels)
	}
	p := s.Panels[s.Active]
	if repeating(ebiten.KeyDown) {
		p.Move(1)
	}
	if repeating(ebiten.KeyUp) {
		p.Move(-1)
	}
	fine := ebiten.IsKeyPressed(ebiten.KeyShift)
	if repeating(ebiten.KeyRight) {
		p.Adjust(1, fine)
	}
	if repeating(ebiten.KeyLeft) {
		p.Adjust(-1, fine)
	}
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatEvery == 0)
}

// Draw renders every panel stacked vertically, active one highlighted.
func (s *PanelSet) Draw(screen *ebiten.Image) {
	if s.Hidden {
		ebitenutil.DebugPrintAt(screen, "F1: show panel", s.X, s.Y)
		return
	}
	y := s.Y
	for i, p := range s.Panels {
		lines := p.Lines()
		if i != s.Active {
			lines = lines[:1]
		}
		h := len(lines)*lineHeight + panelMargin
		bg := color.RGBA{20, 20, 40, 200}
		if i == s.Active {
			bg = color.RGBA{30, 30, 70, 220}
		}
		vector.DrawFilledRect(screen, float32(s.X), float32(y), panelWidth, float32(h), bg, false)
		for j, l := range lines {
			ebitenutil.DebugPrintAt(screen, l, s.X+panelMargin, y+panelMargin/2+j*lineHeight)
		}
		y += h + panelMargin
	}
	ebitenutil.DebugPrintAt(screen, "Tab: next panel  Up/Down: select  Left/Right: adjust (Shift: fine)", s.X, y)
}
