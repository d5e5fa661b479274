// Package geom holds the integer screen geometry shared by the layout engine,
// the view transform and the renderer.
package geom

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned pixel rectangle. Width and height may be zero or
// negative when the widget is smaller than its chrome; such rectangles contain
// no points.
type Rect struct {
	X, Y int
	W, H int
}

// R is shorthand for a Rect literal.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Image converts r to an image.Rectangle for toolkits that clip with one.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// SizeOf returns the pixel dimensions of anything with image bounds. A nil
// image, typed or not, has zero size.
func SizeOf(b interface{ Bounds() image.Rectangle }) (s Size) {
	switch img := b.(type) {
	case nil:
		return Size{}
	case *image.RGBA:
		if img == nil {
			return Size{}
		}
	case *image.NRGBA:
		if img == nil {
			return Size{}
		}
	case *image.Paletted:
		if img == nil {
			return Size{}
		}
	case *image.Gray:
		if img == nil {
			return Size{}
		}
	}
	// other pointer types, such as *ebiten.Image, panic on a nil receiver
	defer func() {
		if recover() != nil {
			s = Size{}
		}
	}()
	bb := b.Bounds()
	return Size{W: bb.Dx(), H: bb.Dy()}
}

// Affine maps content coordinates to screen coordinates as
// screen = Translate + Scale*content. It is the composition
// translate(origin) · scale(zoom) · translate(offset) used for the map.
type Affine struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// MapAffine builds the map transform from the viewport origin, the zoom and the
// content-space offset.
func MapAffine(originX, originY int, zoom, offsetX, offsetY float64) Affine {
	return Affine{
		Scale:      zoom,
		TranslateX: float64(originX) + zoom*offsetX,
		TranslateY: float64(originY) + zoom*offsetY,
	}
}

// Apply maps a content point to the screen.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return a.TranslateX + a.Scale*x, a.TranslateY + a.Scale*y
}

// Invert maps a screen point back to content space.
func (a Affine) Invert(x, y float64) (float64, float64) {
	if a.Scale == 0 {
		return 0, 0
	}
	return (x - a.TranslateX) / a.Scale, (y - a.TranslateY) / a.Scale
}
