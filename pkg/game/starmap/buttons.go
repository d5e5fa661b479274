package starmap

import (
	"strings"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/layout"
)

// ButtonID is the handle of a button in the view's button arena. The order
// matches the button regions of the layout.
type ButtonID int

const (
	BtnColonyPrev ButtonID = iota
	BtnColonyNext
	BtnColony
	BtnEquipmentPrev
	BtnEquipmentNext
	BtnEquipment
	BtnInfo
	BtnBridge
	BtnMagnify
	BtnColonize
	BtnRadars
	BtnFleets
	BtnStars
	BtnGrids
	BtnName
	BtnMove
	BtnAttack
	BtnStop
	BtnSatellite
	BtnSpySat1
	BtnSpySat2
	BtnHubble2

	ButtonCount
)

// NoButton marks the absence of a button.
const NoButton ButtonID = -1

// Region returns the layout region the button occupies.
func (id ButtonID) Region() layout.Region {
	return layout.RegionColonyPrev + layout.Region(id)
}

func (id ButtonID) String() string {
	if id < 0 || id >= ButtonCount {
		return "none"
	}
	return strings.TrimPrefix(id.Region().String(), "btn-")
}

// Satellite reports whether the button is one of the satellite launchers.
func (id ButtonID) Satellite() bool {
	return id >= BtnSatellite && id <= BtnHubble2
}

// ShipCommand reports whether the button is only shown with ship controls.
func (id ButtonID) ShipCommand() bool {
	return id == BtnMove || id == BtnAttack || id == BtnStop
}

// Button is the state of one button. Buttons live in a fixed arena and are
// addressed by ButtonID; callers get copies.
type Button struct {
	Rect     geom.Rect
	Visible  bool
	Disabled bool
	Pressed  bool
	Toggled  bool
	Action   func()
}

// plainOrder is the hit-test priority of the plain buttons.
var plainOrder = []ButtonID{
	BtnColony, BtnColonyPrev, BtnColonyNext,
	BtnEquipment, BtnEquipmentPrev, BtnEquipmentNext,
	BtnInfo, BtnBridge, BtnColonize, BtnName,
	BtnSatellite, BtnSpySat1, BtnSpySat2, BtnHubble2,
}

// toggleOrder is the hit-test priority of the toggle group. It is tested
// after every plain button.
var toggleOrder = []ButtonID{
	BtnFleets, BtnGrids, BtnRadars, BtnStars,
	BtnMove, BtnAttack, BtnStop,
}

var toggleGroup = func() [ButtonCount]bool {
	var g [ButtonCount]bool
	for _, id := range toggleOrder {
		g[id] = true
	}
	return g
}()

// Toggle reports whether the button belongs to the toggle group.
func (id ButtonID) Toggle() bool {
	return id >= 0 && id < ButtonCount && toggleGroup[id]
}

// buttons is the arena.
type buttons [ButtonCount]Button

func newButtons() buttons {
	var bs buttons
	for i := range bs {
		bs[i].Visible = true
	}
	return bs
}

// place copies the button rectangles out of a layout.
func (bs *buttons) place(l layout.Layout) {
	for i := range bs {
		bs[i].Rect = l.Rect(ButtonID(i).Region())
	}
}

// hitTest returns the first enabled button under (x, y) in priority order.
// shown filters buttons hidden by panel state.
func (bs *buttons) hitTest(x, y int, shown func(ButtonID) bool) ButtonID {
	for _, order := range [][]ButtonID{plainOrder, toggleOrder} {
		for _, id := range order {
			b := &bs[id]
			if shown(id) && !b.Disabled && b.Rect.Contains(x, y) {
				return id
			}
		}
	}
	return NoButton
}

// clearPressed releases every button and reports whether any was pressed.
func (bs *buttons) clearPressed() bool {
	changed := false
	for i := range bs {
		changed = changed || bs[i].Pressed
		bs[i].Pressed = false
	}
	return changed
}

// satellites returns the visibility flags that drive the satellite stack.
func (bs *buttons) satellites() layout.SatelliteVisibility {
	var v layout.SatelliteVisibility
	for i := 0; i < layout.Satellites; i++ {
		v[i] = bs[BtnSatellite+ButtonID(i)].Visible
	}
	return v
}
