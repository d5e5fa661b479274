package starmap

import (
	log "github.com/sirupsen/logrus"

	"starmap/pkg/engine/input"
	"starmap/pkg/engine/layout"
)

// HandlePointer feeds one pointer event through the interaction state machine.
func (m *MapView) HandlePointer(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerPress:
		m.press(ev)
	case input.PointerMove:
		m.move(ev)
	case input.PointerRelease:
		m.release(ev)
	case input.PointerWheel:
		m.wheel(ev)
	}
}

func (m *MapView) press(ev input.PointerEvent) {
	m.trackPointer(ev.X, ev.Y)
	if m.mode.Dragging() || m.pressTarget != NoButton {
		// a second button while one is held is ignored until release
		return
	}
	m.lastX, m.lastY = ev.X, ev.Y

	switch ev.Button {
	case input.ButtonSecondary:
		if m.layout.Rect(layout.RegionMap).Contains(ev.X, ev.Y) {
			m.mode = input.ModeDraggingMap
			return
		}
		if m.hitMagnify(ev.X, ev.Y) {
			m.magnifyIn = false
			m.pressButtonDown(BtnMagnify, ev.Button)
		}
	case input.ButtonPrimary:
		switch {
		case m.hKnob.Contains(ev.X, ev.Y):
			m.mode = input.ModeDraggingHKnob
		case m.vKnob.Contains(ev.X, ev.Y):
			m.mode = input.ModeDraggingVKnob
		case m.hitMagnify(ev.X, ev.Y):
			m.magnifyIn = true
			m.pressButtonDown(BtnMagnify, ev.Button)
		default:
			if id := m.buttons.hitTest(ev.X, ev.Y, m.shown); id != NoButton {
				m.pressButtonDown(id, ev.Button)
			} else if m.layout.Rect(layout.RegionMinimap).Contains(ev.X, ev.Y) {
				m.centerFromMinimap(ev.X, ev.Y)
			}
		}
	}
}

func (m *MapView) hitMagnify(x, y int) bool {
	b := &m.buttons[BtnMagnify]
	return b.Visible && !b.Disabled && b.Rect.Contains(x, y)
}

func (m *MapView) pressButtonDown(id ButtonID, btn input.MouseButton) {
	m.pressTarget = id
	m.pressButton = btn
	m.buttons[id].Pressed = true
	m.inv.RepaintRect(m.buttons[id].Rect)
}

func (m *MapView) move(ev input.PointerEvent) {
	dx := float64(ev.X - m.lastX)
	dy := float64(ev.Y - m.lastY)
	m.lastX, m.lastY = ev.X, ev.Y
	m.trackPointer(ev.X, ev.Y)

	switch m.mode {
	case input.ModeDraggingMap:
		// content follows the pointer
		m.ScrollByContentPixels(-dx, -dy)
	case input.ModeDraggingHKnob:
		m.SetScroll(m.transform.H.Value+dx, m.transform.V.Value)
	case input.ModeDraggingVKnob:
		m.SetScroll(m.transform.H.Value, m.transform.V.Value+dy)
	}
}

func (m *MapView) release(ev input.PointerEvent) {
	m.trackPointer(ev.X, ev.Y)
	wasDragging := m.mode.Dragging()
	target, btn := m.pressTarget, m.pressButton

	m.mode = input.ModeIdle
	m.pressTarget = NoButton
	m.pressButton = input.ButtonNone
	if m.buttons.clearPressed() {
		m.inv.Repaint()
	}

	if wasDragging || target == NoButton || ev.Button != btn {
		return
	}
	if m.releaseTarget(ev.X, ev.Y, target) {
		m.click(target)
	}
}

// releaseTarget reports whether a release at (x, y) still lands on the
// pressed button.
func (m *MapView) releaseTarget(x, y int, target ButtonID) bool {
	if target == BtnMagnify {
		return m.hitMagnify(x, y)
	}
	return m.buttons.hitTest(x, y, m.shown) == target
}

// click runs the built-in behaviour of a button and then its callback.
func (m *MapView) click(id ButtonID) {
	b := &m.buttons[id]
	switch {
	case id == BtnMagnify:
		if m.magnifyIn {
			m.ZoomIn()
		} else {
			m.ZoomOut()
		}
	case id == BtnName:
		m.nameMode = m.nameMode.Next()
		m.inv.RepaintRect(b.Rect)
		log.WithField("mode", m.nameMode).Debug("name mode changed")
	case id.Toggle():
		b.Toggled = !b.Toggled
		m.inv.RepaintRect(b.Rect)
	}
	log.WithFields(log.Fields{
		"button":  id,
		"toggled": b.Toggled,
	}).Debug("button clicked")
	if b.Action != nil {
		b.Action()
	}
}

func (m *MapView) wheel(ev input.PointerEvent) {
	m.trackPointer(ev.X, ev.Y)
	if ev.WheelY == 0 || !m.layout.Rect(layout.RegionMap).Contains(ev.X, ev.Y) {
		return
	}
	switch {
	case ev.Mods.Has(input.ModCtrl):
		m.zoomWheel(ev.WheelY)
	case ev.Mods.Has(input.ModShift):
		m.ScrollByContentPixels(ev.WheelY*m.scrollStep, 0)
	default:
		m.ScrollByContentPixels(0, ev.WheelY*m.scrollStep)
	}
}

// zoomWheel steps the magnifier once for every whole notch of accumulated
// wheel travel. Fractional deltas from trackpads add up until they cross a
// notch; reversing direction starts over.
func (m *MapView) zoomWheel(dy float64) {
	if (dy < 0) != (m.wheelZoom < 0) {
		m.wheelZoom = 0
	}
	m.wheelZoom += dy
	for m.wheelZoom >= 1 {
		m.wheelZoom--
		if !m.ZoomOut() {
			m.wheelZoom = 0
		}
	}
	for m.wheelZoom <= -1 {
		m.wheelZoom++
		if !m.ZoomIn() {
			m.wheelZoom = 0
		}
	}
}

// centerFromMinimap scrolls the map so the point under the minimap pixel
// (x, y) sits in the middle of the viewport.
func (m *MapView) centerFromMinimap(x, y int) {
	mm := m.layout.Rect(layout.RegionMinimap)
	content := m.transform.Content()
	if mm.Empty() {
		return
	}
	cx := float64(x-mm.X) * float64(content.W) / float64(mm.W)
	cy := float64(y-mm.Y) * float64(content.H) / float64(mm.H)
	m.CenterOn(cx, cy)
}

// trackPointer remembers the pointer for the coordinate readout.
func (m *MapView) trackPointer(x, y int) {
	if x == m.pointerX && y == m.pointerY {
		return
	}
	m.pointerX, m.pointerY = x, y
	m.inv.RepaintRect(m.layout.Rect(layout.RegionTopBar))
}
