// Package view holds the scroll and zoom model of the map viewport. It maps
// scrollbar positions to content offsets and back, independent of any
// windowing toolkit.
package view

import (
	"math"

	"starmap/pkg/engine/geom"
)

// Axis is the scroll state of one direction. Value is the scrollbar position
// in track pixels, always within [0, Max]. One track pixel moves the rendered
// content by Factor screen pixels.
type Axis struct {
	Value  float64
	Max    float64
	Factor float64
}

// configure applies the excess/travel policy: while the zoomed excess fits in
// the track travel the bar scrolls pixel for pixel, otherwise the bar is
// pinned to the travel and each bar pixel covers several content pixels.
func (a *Axis) configure(content, viewport, track, minKnob int, zoom float64) {
	excess := math.Max(float64(content)*zoom-float64(viewport), 0)
	travel := float64(track - minKnob)
	switch {
	case travel <= 0:
		a.Max = 0
		a.Factor = 1
	case excess < travel:
		a.Max = excess
		a.Factor = 1
	default:
		a.Max = travel
		a.Factor = excess / travel
	}
	a.Value = a.clamp(a.Value)
}

func (a *Axis) clamp(v float64) float64 {
	if v > a.Max {
		v = a.Max
	}
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	return v
}

// KnobCaps are the sizes of the scrollbar knob end images. Their sum along the
// scroll direction is the minimum knob length.
type KnobCaps struct {
	Left, Right geom.Size
	Top, Bottom geom.Size
}

// MinH is the shortest horizontal knob.
func (c KnobCaps) MinH() int { return c.Left.W + c.Right.W }

// MinV is the shortest vertical knob.
func (c KnobCaps) MinV() int { return c.Top.H + c.Bottom.H }

// Transform is the view model: zoom, both scroll axes and the geometry they
// are derived from.
type Transform struct {
	Zoom float64
	H, V Axis

	content  geom.Size
	caps     KnobCaps
	viewport geom.Rect
	hTrack   geom.Rect
	vTrack   geom.Rect
}

// New returns a transform at zoom 1 for a map of the given size.
func New(content geom.Size, caps KnobCaps) *Transform {
	return &Transform{
		Zoom:    1,
		H:       Axis{Factor: 1},
		V:       Axis{Factor: 1},
		content: content,
		caps:    caps,
	}
}

// Content returns the unscaled map size.
func (t *Transform) Content() geom.Size { return t.content }

// Viewport returns the on-screen map rectangle.
func (t *Transform) Viewport() geom.Rect { return t.viewport }

// SetGeometry records the viewport and scroll tracks. Callers re-apply the
// zoom afterwards so the scroll bounds follow.
func (t *Transform) SetGeometry(viewport, hTrack, vTrack geom.Rect) {
	t.viewport = viewport
	t.hTrack = hTrack
	t.vTrack = vTrack
}

// SetZoom sets the zoom factor, capped at 1.0, and recomputes the scroll
// bounds of both axes. Non-positive factors are ignored.
func (t *Transform) SetZoom(f float64) {
	if f > 1 {
		f = 1
	}
	if f > 0 {
		t.Zoom = f
	}
	t.H.configure(t.content.W, t.viewport.W, t.hTrack.W, t.caps.MinH(), t.Zoom)
	t.V.configure(t.content.H, t.viewport.H, t.vTrack.H, t.caps.MinV(), t.Zoom)
}

// SetScroll moves both scrollbars, clamping each into [0, Max].
func (t *Transform) SetScroll(x, y float64) {
	t.H.Value = t.H.clamp(x)
	t.V.Value = t.V.clamp(y)
}

// ScrollByContentPixels scrolls so the rendered content moves by exactly
// dx, dy pixels at any zoom (up to clamping). It inverts the render mapping
// offset = Value*Factor/Zoom, so one track pixel is Factor content pixels on
// screen.
func (t *Transform) ScrollByContentPixels(dx, dy float64) {
	t.SetScroll(t.H.Value+dx/t.H.Factor, t.V.Value+dy/t.V.Factor)
}

// Centered reports per axis whether the zoomed map is smaller than the
// viewport and is drawn centered instead of scrolled.
func (t *Transform) Centered() (h, v bool) {
	return float64(t.viewport.W) > float64(t.content.W)*t.Zoom,
		float64(t.viewport.H) > float64(t.content.H)*t.Zoom
}

// Offset returns the content-space translation applied after scaling.
func (t *Transform) Offset() (x, y float64) {
	ch, cv := t.Centered()
	if ch {
		x = (float64(t.viewport.W)/t.Zoom - float64(t.content.W)) / 2
	} else {
		x = -t.H.Value * t.H.Factor / t.Zoom
	}
	if cv {
		y = (float64(t.viewport.H)/t.Zoom - float64(t.content.H)) / 2
	} else {
		y = -t.V.Value * t.V.Factor / t.Zoom
	}
	return x, y
}

// Affine returns the content-to-screen transform for the map image.
func (t *Transform) Affine() geom.Affine {
	ox, oy := t.Offset()
	return geom.MapAffine(t.viewport.X, t.viewport.Y, t.Zoom, ox, oy)
}

// ContentAt maps a widget pixel to map content coordinates.
func (t *Transform) ContentAt(x, y int) (float64, float64) {
	return t.Affine().Invert(float64(x), float64(y))
}

// CenterOn scrolls so the content point (cx, cy) sits in the middle of the
// viewport as far as the scroll range allows.
func (t *Transform) CenterOn(cx, cy float64) {
	x := (cx*t.Zoom - float64(t.viewport.W)/2) / t.H.Factor
	y := (cy*t.Zoom - float64(t.viewport.H)/2) / t.V.Factor
	t.SetScroll(x, y)
}

// VisibleContent returns the part of the map currently inside the viewport,
// in content coordinates.
func (t *Transform) VisibleContent() (x, y, w, h float64) {
	x, y = t.ContentAt(t.viewport.X, t.viewport.Y)
	return x, y, float64(t.viewport.W) / t.Zoom, float64(t.viewport.H) / t.Zoom
}

// Knobs returns the scrollbar knob rectangles for the current scroll state.
func (t *Transform) Knobs() (h, v geom.Rect) {
	hLen := max(t.caps.MinH(), t.hTrack.W-int(math.Round(t.H.Max)))
	h = geom.R(t.hTrack.X+int(math.Round(t.H.Value)), t.hTrack.Y, hLen, t.caps.Left.H)

	vLen := max(t.caps.MinV(), t.vTrack.H-int(math.Round(t.V.Max)))
	v = geom.R(t.vTrack.X, t.vTrack.Y+int(math.Round(t.V.Value)), t.caps.Top.W, vLen)
	return h, v
}
