package input

import "testing"

func TestAxis(t *testing.T) {
	tests := []struct {
		pos, neg bool
		want     float64
	}{
		{false, false, 0},
		{true, false, 1},
		{false, true, -1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := Axis(tt.pos, tt.neg); got != tt.want {
			t.Errorf("Axis(%v, %v) = %v, want %v", tt.pos, tt.neg, got, tt.want)
		}
	}
}

func TestMouseLookIgnoredWhileReleased(t *testing.T) {
	var m MouseLook
	m.Delta(10, 10)
	if dx, dy := m.Delta(50, 80); dx != 0 || dy != 0 {
		t.Errorf("Delta() while released = %v,%v, want 0,0", dx, dy)
	}
}

func TestMouseLookPrimesAfterCapture(t *testing.T) {
	var m MouseLook
	m.SetCaptured(true)

	if dx, dy := m.Delta(100, 100); dx != 0 || dy != 0 {
		t.Errorf("first sample = %v,%v, want 0,0", dx, dy)
	}
	if dx, dy := m.Delta(110, 95); dx != 10 || dy != -5 {
		t.Errorf("second sample = %v,%v, want 10,-5", dx, dy)
	}

	// re-capturing must not produce a jump from the stale position
	m.SetCaptured(false)
	m.SetCaptured(true)
	if dx, dy := m.Delta(400, 300); dx != 0 || dy != 0 {
		t.Errorf("after recapture = %v,%v, want 0,0", dx, dy)
	}
	if dx, dy := m.Delta(401, 300); dx != 1 || dy != 0 {
		t.Errorf("after recapture second sample = %v,%v, want 1,0", dx, dy)
	}

	m.Reset()
	if dx, dy := m.Delta(0, 0); dx != 0 || dy != 0 {
		t.Errorf("after Reset = %v,%v, want 0,0", dx, dy)
	}
}
