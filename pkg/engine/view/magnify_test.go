package view

import "testing"

func TestMagnifier_StartsAtFullSize(t *testing.T) {
	m := NewMagnifier(nil)
	if m.Zoom() != 1 {
		t.Fatalf("Zoom() = %v, want 1", m.Zoom())
	}
	if m.In() {
		t.Error("In() at the last step should report no change")
	}
}

func TestMagnifier_StepsRoundTrip(t *testing.T) {
	m := NewMagnifier(nil)
	start := m.Zoom()
	for i := 0; i < 3; i++ {
		if !m.Out() {
			t.Fatalf("Out() #%d reported no change", i)
		}
	}
	if got := m.Zoom(); got != 17.0/30.0 {
		t.Errorf("after three steps out Zoom() = %v, want %v", got, 17.0/30.0)
	}
	for i := 0; i < 3; i++ {
		m.In()
	}
	if m.Zoom() != start {
		t.Errorf("Zoom() = %v after stepping back, want %v", m.Zoom(), start)
	}
}

func TestMagnifier_NoWraparound(t *testing.T) {
	m := NewMagnifier([]int{1, 2, 4})
	m.Out()
	m.Out()
	if m.Out() {
		t.Error("Out() at the first step should report no change")
	}
	if m.Index() != 0 || m.Zoom() != 0.25 {
		t.Errorf("index %d zoom %v, want 0 and 0.25", m.Index(), m.Zoom())
	}
	if !m.Reset() || m.Zoom() != 1 {
		t.Error("Reset() should return to full size")
	}
}

func TestMagnifier_SetIndexClamps(t *testing.T) {
	m := NewMagnifier(nil)
	m.SetIndex(-4)
	if m.Index() != 0 {
		t.Errorf("SetIndex(-4) -> %d, want 0", m.Index())
	}
	m.SetIndex(99)
	if m.Index() != m.Len()-1 {
		t.Errorf("SetIndex(99) -> %d, want %d", m.Index(), m.Len()-1)
	}
}
