package starmap

import "starmap/pkg/engine/input"

// HandleIntent applies a keyboard intent. It reports whether the view consumed
// it; quitting, screenshots and the other host actions are left to the caller.
func (m *MapView) HandleIntent(in input.Intent) bool {
	step := m.scrollStep
	switch in.Action {
	case input.ActionScrollUp:
		m.ScrollByContentPixels(0, -step)
	case input.ActionScrollDown:
		m.ScrollByContentPixels(0, step)
	case input.ActionScrollLeft:
		m.ScrollByContentPixels(-step, 0)
	case input.ActionScrollRight:
		m.ScrollByContentPixels(step, 0)
	case input.ActionScrollHome:
		m.SetScroll(0, 0)
	case input.ActionZoomIn:
		m.ZoomIn()
	case input.ActionZoomOut:
		m.ZoomOut()
	case input.ActionZoomReset:
		m.ZoomReset()
	case input.ActionCycleNames:
		m.click(BtnName)
	case input.ActionToggleRadars:
		m.clickIfEnabled(BtnRadars)
	case input.ActionToggleFleets:
		m.clickIfEnabled(BtnFleets)
	case input.ActionToggleStars:
		m.clickIfEnabled(BtnStars)
	case input.ActionToggleGrids:
		m.clickIfEnabled(BtnGrids)
	default:
		return false
	}
	return true
}

func (m *MapView) clickIfEnabled(id ButtonID) {
	if m.shown(id) && !m.buttons[id].Disabled {
		m.click(id)
	}
}
