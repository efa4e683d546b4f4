package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseLook turns absolute cursor positions into look deltas while the
// cursor is captured. The first sample after a capture only primes it.
type MouseLook struct {
	Captured     bool
	primed       bool
	prevX, prevY float64
}

// SetCaptured changes capture state and drops the previous sample.
func (m *MouseLook) SetCaptured(c bool) {
	m.Captured = c
	m.primed = false
}

// Reset forgets the previous sample, e.g. after a camera reset.
func (m *MouseLook) Reset() {
	m.primed = false
}

// Delta returns the movement since the previous sample.
func (m *MouseLook) Delta(x, y float64) (dx, dy float64) {
	if !m.Captured {
		return 0, 0
	}
	if !m.primed {
		m.prevX, m.prevY = x, y
		m.primed = true
		return 0, 0
	}
	dx, dy = x-m.prevX, y-m.prevY
	m.prevX, m.prevY = x, y
	return dx, dy
}

// Axis returns +1, 0 or -1 for an opposing key pair.
func Axis(positive, negative bool) float64 {
	a := 0.0
	if positive {
		a++
	}
	if negative {
		a--
	}
	return a
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY int
	ScrollY        float64
	Look           MouseLook
	LookDX, LookDY float64

	// ToggleButton locks / unlocks the cursor
	ToggleButton      ebiten.MouseButton
	ToggleJustPressed bool
}

func NewInputState() *InputState {
	return &InputState{
		ToggleButton: ebiten.MouseButtonRight,
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	s.ToggleJustPressed = inpututil.IsMouseButtonJustPressed(s.ToggleButton)

	if s.ToggleJustPressed {
		s.SetCaptured(!s.Look.Captured)
	}
	s.LookDX, s.LookDY = s.Look.Delta(float64(s.MouseX), float64(s.MouseY))

	// Scroll
	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY
}

// SetCaptured hides and locks the cursor, or releases it for the panel.
func (s *InputState) SetCaptured(c bool) {
	s.Look.SetCaptured(c)
	if c {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// KeyAxis returns the signed axis for a held key pair.
func (s *InputState) KeyAxis(positive, negative ebiten.Key) float64 {
	return Axis(ebiten.IsKeyPressed(positive), ebiten.IsKeyPressed(negative))
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
