// Package layout computes the screen rectangles of the starmap screen from the
// widget size. Compute is a pure function: the same inputs always produce an
// identical Layout value.
package layout

import (
	"starmap/pkg/engine/geom"
)

// Region names one rectangle of the screen.
type Region int

// Regions. The button regions are contiguous, from RegionColonyPrev to
// RegionHubble2.
const (
	RegionTopBar Region = iota
	RegionBottomBar
	RegionMap
	RegionMinimap
	RegionHScroll
	RegionVScroll
	RegionShipControl
	RegionColonies
	RegionEquipments
	RegionBottomLeft
	RegionBottomFiller
	RegionBottomRight
	RegionRightTop
	RegionRightFiller
	RegionRightBottom

	RegionColonyPrev
	RegionColonyNext
	RegionColony
	RegionEquipmentPrev
	RegionEquipmentNext
	RegionEquipment
	RegionInfo
	RegionBridge
	RegionMagnify
	RegionColonize
	RegionRadars
	RegionFleets
	RegionStars
	RegionGrids
	RegionName
	RegionMove
	RegionAttack
	RegionStop
	RegionSatellite
	RegionSpySat1
	RegionSpySat2
	RegionHubble2

	RegionCount
)

var regionNames = [RegionCount]string{
	"top-bar", "bottom-bar", "map", "minimap", "hscroll", "vscroll",
	"ship-control", "colonies", "equipments",
	"bottom-left", "bottom-filler", "bottom-right",
	"right-top", "right-filler", "right-bottom",
	"btn-colony-prev", "btn-colony-next", "btn-colony",
	"btn-equipment-prev", "btn-equipment-next", "btn-equipment",
	"btn-info", "btn-bridge", "btn-magnify", "btn-colonize",
	"btn-radars", "btn-fleets", "btn-stars", "btn-grids", "btn-name",
	"btn-move", "btn-attack", "btn-stop",
	"btn-satellite", "btn-spysat1", "btn-spysat2", "btn-hubble2",
}

func (r Region) String() string {
	if r < 0 || r >= RegionCount {
		return "unknown"
	}
	return regionNames[r]
}

// Chrome carries the fixed dimensions of the frame images supplied by the
// asset provider.
type Chrome struct {
	TopBar    int // height of the top info bar
	BottomBar int // height of the bottom info bar

	BottomLeft    geom.Size
	BottomRight   geom.Size
	BottomFillerH int
	RightTop      geom.Size
	RightBottom   geom.Size
	RightFillerW  int
}

// Satellites is the number of satellite launch buttons.
const Satellites = 4

// SatelliteVisibility lists which satellite buttons take a slot in the stack,
// in the order satellite, spy satellite 1, spy satellite 2, hubble.
type SatelliteVisibility [Satellites]bool

// AllSatellites shows every satellite button.
var AllSatellites = SatelliteVisibility{true, true, true, true}

// Layout is the full set of rectangles for one widget size. It is a
// comparable value.
type Layout struct {
	Width  int
	Height int
	rects  [RegionCount]geom.Rect
}

// Rect returns the rectangle of a region.
func (l Layout) Rect(r Region) geom.Rect {
	if r < 0 || r >= RegionCount {
		return geom.Rect{}
	}
	return l.rects[r]
}

// Each calls fn for every region in declaration order.
func (l Layout) Each(fn func(Region, geom.Rect)) {
	for i := Region(0); i < RegionCount; i++ {
		fn(i, l.rects[i])
	}
}

// Compute lays out the screen for a w x h widget. Sizes below the chrome
// minimum are not clamped and can produce rectangles with negative extents.
func Compute(w, h int, c Chrome, m Metrics, sat SatelliteVisibility) Layout {
	l := Layout{Width: w, Height: h}
	r := &l.rects

	bh := c.BottomBar + c.BottomLeft.H
	panelTop := h - bh

	r[RegionTopBar] = geom.R(0, 0, w, c.TopBar)
	r[RegionBottomBar] = geom.R(0, h-c.BottomBar, w, c.BottomBar)

	r[RegionHScroll] = geom.R(m.ScrollInset, panelTop+m.ScrollInset, w-m.HScrollTrim, m.ScrollThickness)
	r[RegionVScroll] = geom.R(w-c.RightBottom.W+m.ScrollInset, c.TopBar+m.ScrollInset,
		m.ScrollThickness, h-bh-c.TopBar-m.VScrollTrim)

	r[RegionShipControl] = geom.R(w-m.ShipControlFromRight, panelTop+m.ShipControlDown, m.ShipControlW, m.ShipControlH)
	r[RegionMinimap] = geom.R(w-m.MinimapFromRight, h-m.MinimapFromBottom-c.BottomBar, m.MinimapW, m.MinimapH)
	r[RegionMap] = geom.R(0, c.TopBar, w-c.RightTop.W, h-c.TopBar-bh)

	bl := geom.R(0, panelTop, c.BottomLeft.W, c.BottomLeft.H)
	br := geom.R(w-c.BottomRight.W, bl.Y, c.BottomRight.W, c.BottomRight.H)
	r[RegionBottomLeft] = bl
	r[RegionBottomRight] = br
	r[RegionBottomFiller] = geom.R(bl.Right(), bl.Y, br.X-bl.Right(), c.BottomFillerH)

	rt := geom.R(w-c.RightTop.W, c.TopBar, c.RightTop.W, c.RightTop.H)
	rb := geom.R(rt.X, br.Y-c.RightBottom.H, c.RightBottom.W, c.RightBottom.H)
	r[RegionRightTop] = rt
	r[RegionRightBottom] = rb
	r[RegionRightFiller] = geom.R(rt.X, rt.Bottom(), c.RightFillerW, rb.Y-rt.Bottom())

	layoutPanel(r, w, m, rt, rb)
	layoutBottomPanel(r, w, m, bl)
	layoutSatellites(r, m, sat)

	return l
}

// layoutPanel places the colony and equipment controls in the right panel.
func layoutPanel(r *[RegionCount]geom.Rect, w int, m Metrics, rt, rb geom.Rect) {
	prev := geom.R(w-m.PanelFromRight, rt.Y+m.PanelTopPad, m.StepButtonW, m.StepButtonH)
	r[RegionColonyPrev] = prev
	r[RegionColonyNext] = geom.R(prev.X+m.StepButtonGap, prev.Y, m.StepButtonW, m.StepButtonH)

	colonies := geom.R(prev.X-2, prev.Bottom(), m.ListW, 0)
	colonies.H = rb.Y + m.ListOverhang - colonies.Y
	r[RegionColonies] = colonies

	colony := geom.R(colonies.X+1, colonies.Bottom(), colonies.W-2, m.WideButtonH)
	r[RegionColony] = colony

	eqPrev := geom.R(prev.X, colony.Bottom()+m.EquipmentGap, m.StepButtonW, m.StepButtonH)
	r[RegionEquipmentPrev] = eqPrev
	r[RegionEquipmentNext] = geom.R(eqPrev.X+m.StepButtonGap, eqPrev.Y, m.StepButtonW, m.StepButtonH)

	equipments := geom.R(colonies.X, eqPrev.Bottom(), m.ListW, m.EquipmentListH)
	r[RegionEquipments] = equipments

	equipment := geom.R(colony.X, equipments.Bottom(), m.EquipmentW, m.WideButtonH)
	r[RegionEquipment] = equipment

	info := geom.R(colony.X+1, equipment.Y+m.InfoDown, m.InfoW, m.InfoH)
	r[RegionInfo] = info
	r[RegionBridge] = geom.R(info.X, info.Bottom(), m.InfoW, m.InfoH)

	r[RegionMagnify] = geom.R(equipment.X+m.MagnifyRight, equipment.Y+m.MagnifyDown, m.MagnifyW, m.MagnifyH)
}

// layoutBottomPanel places colonize, the layer toggles, the name mode button
// and the ship commands.
func layoutBottomPanel(r *[RegionCount]geom.Rect, w int, m Metrics, bl geom.Rect) {
	colonize := geom.R(w-m.ColonizeFromRight, bl.Y+m.ColonizeDown, m.ColonizeW, m.ColonizeH)
	r[RegionColonize] = colonize

	radars := geom.R(colonize.X, colonize.Y+m.ToggleFirstDown, m.ToggleW, m.ToggleH)
	fleets := geom.R(radars.X+m.ToggleColGap, radars.Y, m.ToggleW, m.ToggleH)
	stars := geom.R(radars.X, radars.Y+m.ToggleRowGap, m.ToggleW, m.ToggleH)
	r[RegionRadars] = radars
	r[RegionFleets] = fleets
	r[RegionStars] = stars
	r[RegionGrids] = geom.R(fleets.X, stars.Y, m.ToggleW, m.ToggleH)
	r[RegionName] = geom.R(stars.X, stars.Y+m.ToggleRowGap, m.NameW, m.ToggleH)

	move := geom.R(stars.X-m.ShipCmdLeft, colonize.Y+1, m.ShipCmdW, m.ShipCmdH)
	r[RegionMove] = move
	r[RegionAttack] = geom.R(move.X, move.Y+m.ShipCmdGap, m.ShipCmdW, m.ShipCmdH)
	r[RegionStop] = geom.R(move.X, move.Y+2*m.ShipCmdGap, m.ShipCmdW, m.ShipCmdH)
}

// layoutSatellites stacks the visible satellite buttons left of colonize.
// Hidden ones get an empty rectangle.
func layoutSatellites(r *[RegionCount]geom.Rect, m Metrics, sat SatelliteVisibility) {
	colonize := r[RegionColonize]
	x := colonize.X - m.SatelliteLeft
	y := colonize.Y
	for i := 0; i < Satellites; i++ {
		region := RegionSatellite + Region(i)
		if !sat[i] {
			r[region] = geom.Rect{}
			continue
		}
		r[region] = geom.R(x, y, m.SatelliteW, m.SatelliteH)
		y += m.SatelliteGap
	}
}
