package starmap

import (
	"image"
	"image/color"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/layout"
	"starmap/pkg/engine/view"
)

// Image is a decoded picture. Only its size is read here; the Canvas draws it.
type Image interface {
	Bounds() image.Rectangle
}

// Skin holds the state variants of one button. Nil variants draw nothing,
// leaving the chrome underneath visible.
type Skin struct {
	Normal   Image
	Pressed  Image
	Toggled  Image
	Disabled Image
	// Framed draws a line above and below the pressed variant and shifts it
	// down one pixel.
	Framed bool
}

// NameMode selects which labels are drawn on the map.
type NameMode int

const (
	NameNone NameMode = iota
	NameColony
	NameFleets
	NameBoth

	NameModeCount
)

// Next cycles through the modes.
func (n NameMode) Next() NameMode {
	return (n + 1) % NameModeCount
}

func (n NameMode) String() string {
	switch n {
	case NameNone:
		return "none"
	case NameColony:
		return "colony"
	case NameFleets:
		return "fleets"
	case NameBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Assets is what the asset provider supplies for the screen.
type Assets struct {
	// Info bars
	TopLeft, TopFiller, TopRight   Image
	BottomLeftBar, BottomFillerBar Image
	BottomRightBar                 Image

	// Content frame
	BottomLeft, BottomFiller, BottomRight Image
	RightTop, RightFiller, RightBottom    Image

	// Scrollbar knobs
	HScrollLeft, HScrollFiller, HScrollRight Image
	VScrollTop, VScrollFiller, VScrollBottom Image

	Minimap       Image
	FullMap       Image
	MapBackground color.Color

	Buttons   [ButtonCount]Skin
	NameModes [NameModeCount]Image
}

// Chrome returns the frame dimensions the layout engine needs.
func (a *Assets) Chrome() layout.Chrome {
	return layout.Chrome{
		TopBar:        geom.SizeOf(a.TopLeft).H,
		BottomBar:     geom.SizeOf(a.BottomLeftBar).H,
		BottomLeft:    geom.SizeOf(a.BottomLeft),
		BottomRight:   geom.SizeOf(a.BottomRight),
		BottomFillerH: geom.SizeOf(a.BottomFiller).H,
		RightTop:      geom.SizeOf(a.RightTop),
		RightBottom:   geom.SizeOf(a.RightBottom),
		RightFillerW:  geom.SizeOf(a.RightFiller).W,
	}
}

// Caps returns the scrollbar end cap sizes.
func (a *Assets) Caps() view.KnobCaps {
	return view.KnobCaps{
		Left:   geom.SizeOf(a.HScrollLeft),
		Right:  geom.SizeOf(a.HScrollRight),
		Top:    geom.SizeOf(a.VScrollTop),
		Bottom: geom.SizeOf(a.VScrollBottom),
	}
}
