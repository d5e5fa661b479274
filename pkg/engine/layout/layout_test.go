package layout

import (
	"testing"

	"starmap/pkg/engine/geom"
)

var testChrome = Chrome{
	TopBar:        20,
	BottomBar:     18,
	BottomLeft:    geom.Size{W: 250, H: 112},
	BottomRight:   geom.Size{W: 390, H: 112},
	BottomFillerH: 112,
	RightTop:      geom.Size{W: 140, H: 170},
	RightBottom:   geom.Size{W: 140, H: 160},
	RightFillerW:  140,
}

func TestCompute_Idempotent(t *testing.T) {
	a := Compute(800, 600, testChrome, DefaultMetrics, AllSatellites)
	b := Compute(800, 600, testChrome, DefaultMetrics, AllSatellites)
	if a != b {
		t.Fatal("two computations with identical inputs differ")
	}
}

func TestCompute_BaseResolution(t *testing.T) {
	l := Compute(640, 480, testChrome, DefaultMetrics, AllSatellites)

	want := map[Region]geom.Rect{
		RegionMap:         geom.R(0, 20, 500, 330),
		RegionHScroll:     geom.R(3, 353, 498, 18),
		RegionVScroll:     geom.R(503, 23, 18, 323),
		RegionMinimap:     geom.R(507, 353, 131, 108),
		RegionShipControl: geom.R(285, 378, 106, 83),
		RegionRightTop:    geom.R(500, 20, 140, 170),
		RegionRightBottom: geom.R(500, 190, 140, 160),
		RegionColonyPrev:  geom.R(535, 25, 50, 20),
		RegionColonyNext:  geom.R(587, 25, 50, 20),
		RegionColonize:    geom.R(395, 380, 108, 15),
		RegionRadars:      geom.R(395, 401, 53, 18),
		RegionFleets:      geom.R(450, 401, 53, 18),
		RegionName:        geom.R(395, 441, 108, 18),
		RegionMove:        geom.R(290, 381, 98, 23),
		RegionStop:        geom.R(290, 435, 98, 23),
	}
	for region, r := range want {
		if got := l.Rect(region); got != r {
			t.Errorf("%v = %v, want %v", region, got, r)
		}
	}

	if !l.Rect(RegionBottomFiller).Empty() {
		t.Errorf("bottom filler should be empty at 640 wide, got %v", l.Rect(RegionBottomFiller))
	}
	if !l.Rect(RegionRightFiller).Empty() {
		t.Errorf("right filler should be empty at 480 high, got %v", l.Rect(RegionRightFiller))
	}
}

func TestCompute_FillersGrowWithWindow(t *testing.T) {
	l := Compute(1024, 768, testChrome, DefaultMetrics, AllSatellites)
	if got := l.Rect(RegionBottomFiller).W; got != 1024-250-390 {
		t.Errorf("bottom filler width = %d, want %d", got, 1024-250-390)
	}
	if got := l.Rect(RegionRightFiller).H; got != 288 {
		t.Errorf("right filler height = %d, want 288", got)
	}
}

func TestCompute_SatellitesStackVisibleOnly(t *testing.T) {
	l := Compute(640, 480, testChrome, DefaultMetrics, SatelliteVisibility{true, false, true, false})
	first := l.Rect(RegionSatellite)
	third := l.Rect(RegionSpySat2)
	if third.Y != first.Y+DefaultMetrics.SatelliteGap {
		t.Errorf("spy satellite 2 at y=%d, want directly below the first slot at %d", third.Y, first.Y+DefaultMetrics.SatelliteGap)
	}
	if !l.Rect(RegionSpySat1).Empty() || !l.Rect(RegionHubble2).Empty() {
		t.Error("hidden satellites should have empty rectangles")
	}
	if first.X != l.Rect(RegionColonize).X-DefaultMetrics.SatelliteLeft {
		t.Errorf("satellite column at x=%d, want %d", first.X, l.Rect(RegionColonize).X-DefaultMetrics.SatelliteLeft)
	}
}

func TestCompute_DegenerateSizeNotClamped(t *testing.T) {
	l := Compute(100, 100, testChrome, DefaultMetrics, AllSatellites)
	m := l.Rect(RegionMap)
	if m.W >= 0 || m.H >= 0 {
		t.Fatalf("expected negative map extents for a 100x100 widget, got %v", m)
	}
	if m.Contains(0, 50) {
		t.Error("a negative rectangle must not contain points")
	}
}

func TestRegion_String(t *testing.T) {
	if RegionMagnify.String() != "btn-magnify" {
		t.Errorf("RegionMagnify.String() = %q", RegionMagnify.String())
	}
	if Region(-1).String() != "unknown" || RegionCount.String() != "unknown" {
		t.Error("out of range regions should be unknown")
	}
}
