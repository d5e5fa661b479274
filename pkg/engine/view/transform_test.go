package view

import (
	"math"
	"testing"

	"starmap/pkg/engine/geom"
)

var testCaps = KnobCaps{
	Left:   geom.Size{W: 9, H: 18},
	Right:  geom.Size{W: 9, H: 18},
	Top:    geom.Size{W: 18, H: 9},
	Bottom: geom.Size{W: 18, H: 9},
}

// newTestTransform builds the 800x600 viewport over a 2000x1500 map with a
// horizontal travel of 400 and a vertical travel of 300.
func newTestTransform() *Transform {
	t := New(geom.Size{W: 2000, H: 1500}, testCaps)
	t.SetGeometry(geom.R(0, 20, 800, 600), geom.R(3, 630, 418, 18), geom.R(810, 23, 18, 318))
	t.SetZoom(1)
	return t
}

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestSetZoom_ExcessLargerThanTravel(t *testing.T) {
	tr := newTestTransform()
	if tr.H.Max != 400 || !near(tr.H.Factor, 3) {
		t.Fatalf("horizontal axis = %+v, want Max 400 Factor 3", tr.H)
	}
	if tr.V.Max != 300 || !near(tr.V.Factor, 3) {
		t.Fatalf("vertical axis = %+v, want Max 300 Factor 3", tr.V)
	}
}

func TestSetZoom_ExcessSmallerThanTravel(t *testing.T) {
	tr := newTestTransform()
	tr.SetZoom(0.5)
	if tr.H.Max != 200 || tr.H.Factor != 1 {
		t.Errorf("horizontal axis = %+v, want Max 200 Factor 1", tr.H)
	}
	if tr.V.Max != 150 || tr.V.Factor != 1 {
		t.Errorf("vertical axis = %+v, want Max 150 Factor 1", tr.V)
	}
}

func TestSetZoom_CappedAtOne(t *testing.T) {
	tr := newTestTransform()
	tr.SetZoom(3)
	if tr.Zoom != 1 {
		t.Errorf("Zoom = %v, want 1", tr.Zoom)
	}
	tr.SetZoom(-1)
	if tr.Zoom != 1 {
		t.Errorf("non-positive zoom changed Zoom to %v", tr.Zoom)
	}
}

func TestSetZoom_ReclampsScroll(t *testing.T) {
	tr := newTestTransform()
	tr.SetScroll(400, 300)
	tr.SetZoom(0.5)
	if tr.H.Value != 200 || tr.V.Value != 150 {
		t.Errorf("scroll = (%v, %v), want clamped to (200, 150)", tr.H.Value, tr.V.Value)
	}
}

func TestSetZoom_TrackShorterThanKnob(t *testing.T) {
	tr := New(geom.Size{W: 2000, H: 1500}, testCaps)
	tr.SetGeometry(geom.R(0, 0, 100, 100), geom.R(0, 0, 10, 18), geom.R(0, 0, 18, -40))
	tr.SetZoom(1)
	if tr.H.Max != 0 || tr.H.Factor != 1 || tr.V.Max != 0 || tr.V.Factor != 1 {
		t.Errorf("axes = %+v %+v, want fixed at Max 0 Factor 1", tr.H, tr.V)
	}
	tr.ScrollByContentPixels(50, 50)
	if tr.H.Value != 0 || tr.V.Value != 0 {
		t.Error("an axis without travel must not scroll")
	}
}

func TestSetScroll_ClampsAndIsIdempotent(t *testing.T) {
	tr := newTestTransform()
	cases := [][2]float64{{-50, -1}, {1e9, 1e9}, {123, 77}, {400, 0}, {math.NaN(), 5}}
	for _, c := range cases {
		tr.SetScroll(c[0], c[1])
		h, v := tr.H.Value, tr.V.Value
		if h < 0 || h > tr.H.Max || v < 0 || v > tr.V.Max {
			t.Errorf("SetScroll(%v, %v) -> (%v, %v) out of range", c[0], c[1], h, v)
		}
		tr.SetScroll(c[0], c[1])
		if tr.H.Value != h || tr.V.Value != v {
			t.Errorf("SetScroll(%v, %v) not idempotent", c[0], c[1])
		}
	}
}

func TestScrollByContentPixels_SpecExample(t *testing.T) {
	tr := newTestTransform()
	tr.ScrollByContentPixels(30, 0)
	if !near(tr.H.Value, 10) {
		t.Errorf("30 content px at factor 3 moved the bar by %v, want 10", tr.H.Value)
	}
}

func TestScrollByContentPixels_ZoomIndependent(t *testing.T) {
	m := NewMagnifier(nil)
	for {
		tr := newTestTransform()
		tr.SetZoom(m.Zoom())
		tr.SetScroll(tr.H.Max/2, tr.V.Max/2)

		before := tr.Affine()
		tr.ScrollByContentPixels(7, -5)
		after := tr.Affine()

		ch, cv := tr.Centered()
		if !ch && !near(before.TranslateX-after.TranslateX, 7) {
			t.Errorf("zoom %v: content moved %v px horizontally, want 7", tr.Zoom, before.TranslateX-after.TranslateX)
		}
		if !cv && !near(before.TranslateY-after.TranslateY, -5) {
			t.Errorf("zoom %v: content moved %v px vertically, want -5", tr.Zoom, before.TranslateY-after.TranslateY)
		}
		if !m.Out() {
			break
		}
	}
}

func TestScrollByContentPixels_SameShiftAtEveryZoom(t *testing.T) {
	var moved []float64
	for _, z := range []float64{1, 0.8, 0.5} {
		tr := newTestTransform()
		tr.SetZoom(z)
		tr.SetScroll(tr.H.Max/2, tr.V.Max/2)
		before := tr.Affine()
		tr.ScrollByContentPixels(10, 0)
		moved = append(moved, before.TranslateX-tr.Affine().TranslateX)
	}
	for i, d := range moved {
		if !near(d, 10) {
			t.Errorf("case %d: map moved %v px on screen, want 10", i, d)
		}
	}
}

func TestOffset_CenteredIgnoresScroll(t *testing.T) {
	tr := New(geom.Size{W: 600, H: 400}, testCaps)
	tr.SetGeometry(geom.R(0, 20, 800, 600), geom.R(3, 630, 418, 18), geom.R(810, 23, 18, 318))
	tr.SetZoom(1)

	x0, y0 := tr.Offset()
	tr.H.Value, tr.V.Value = 37, 12
	x1, y1 := tr.Offset()
	if x0 != x1 || y0 != y1 {
		t.Errorf("centered offset changed with scroll: (%v,%v) -> (%v,%v)", x0, y0, x1, y1)
	}
	if x0 != 100 || y0 != 100 {
		t.Errorf("centered offset = (%v, %v), want (100, 100)", x0, y0)
	}
}

func TestCenterOn_RoundTripsThroughContentAt(t *testing.T) {
	tr := newTestTransform()
	tr.SetZoom(0.8)
	tr.CenterOn(1000, 750)
	vp := tr.Viewport()
	cx, cy := tr.ContentAt(vp.X+vp.W/2, vp.Y+vp.H/2)
	if math.Abs(cx-1000) > 1e-6 || math.Abs(cy-750) > 1e-6 {
		t.Errorf("viewport center maps to (%v, %v), want (1000, 750)", cx, cy)
	}
}

func TestKnobs_FollowScroll(t *testing.T) {
	tr := newTestTransform()
	h, v := tr.Knobs()
	if h != geom.R(3, 630, 18, 18) {
		t.Errorf("h knob = %v, want minimum length at track start", h)
	}
	if v != geom.R(810, 23, 18, 18) {
		t.Errorf("v knob = %v, want minimum length at track start", v)
	}

	tr.SetZoom(0.5)
	tr.SetScroll(50, 20)
	h, v = tr.Knobs()
	if h != geom.R(53, 630, 218, 18) {
		t.Errorf("h knob = %v, want (53,630 218x18)", h)
	}
	if v != geom.R(810, 43, 18, 168) {
		t.Errorf("v knob = %v, want (810,43 18x168)", v)
	}
}
