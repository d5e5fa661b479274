package geom

import (
	"image"
	"testing"
)

func TestRect_Contains(t *testing.T) {
	r := R(10, 20, 5, 3)
	if !r.Contains(10, 20) || !r.Contains(14, 22) {
		t.Error("corners inside the rect should be contained")
	}
	if r.Contains(15, 20) || r.Contains(10, 23) {
		t.Error("right and bottom edges are exclusive")
	}
}

func TestRect_NegativeSizeContainsNothing(t *testing.T) {
	r := R(0, 0, -4, 10)
	if !r.Empty() {
		t.Fatal("negative width should be empty")
	}
	if r.Contains(0, 0) || r.Contains(-2, 5) {
		t.Error("empty rect should contain no points")
	}
}

func TestSizeOf(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 25, 15))
	if got := SizeOf(img); got != (Size{W: 20, H: 10}) {
		t.Errorf("SizeOf = %v, want 20x10", got)
	}
	if got := SizeOf(nil); got != (Size{}) {
		t.Errorf("SizeOf(nil) = %v, want zero", got)
	}
}

type panicky struct{ w int }

func (p *panicky) Bounds() image.Rectangle { return image.Rect(0, 0, p.w, p.w) }

func TestSizeOf_TypedNil(t *testing.T) {
	var rgba *image.RGBA
	if got := SizeOf(rgba); got != (Size{}) {
		t.Errorf("SizeOf(nil *image.RGBA) = %v, want zero", got)
	}
	var p *panicky
	if got := SizeOf(p); got != (Size{}) {
		t.Errorf("SizeOf(nil *panicky) = %v, want zero", got)
	}
	if got := SizeOf(&panicky{w: 3}); got != (Size{W: 3, H: 3}) {
		t.Errorf("SizeOf(3x3) = %v", got)
	}
}

func TestAffine_InvertRoundTrip(t *testing.T) {
	a := MapAffine(40, 30, 0.5, -100, -60)
	for _, p := range [][2]float64{{0, 0}, {100, 60}, {333, 17}} {
		sx, sy := a.Apply(p[0], p[1])
		x, y := a.Invert(sx, sy)
		if x != p[0] || y != p[1] {
			t.Errorf("Invert(Apply(%v)) = (%v,%v)", p, x, y)
		}
	}
	if sx, sy := a.Apply(100, 60); sx != 40 || sy != 30 {
		t.Errorf("offset point should land on the origin, got (%v,%v)", sx, sy)
	}
}
