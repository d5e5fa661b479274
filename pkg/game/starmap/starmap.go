// Package starmap is the strategic map screen: a scrollable, zoomable map
// viewport with its scrollbars, minimap and control panel. MapView owns the
// layout, the view transform and the button arena, and is driven by pointer
// events and intents from a host toolkit adapter.
package starmap

import (
	log "github.com/sirupsen/logrus"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/input"
	"starmap/pkg/engine/layout"
	"starmap/pkg/engine/view"
)

// DefaultScrollStep is the wheel and arrow key scroll distance in pixels.
const DefaultScrollStep = 20

// Invalidator receives redraw requests. Requests are hints; the host decides
// when to repaint.
type Invalidator interface {
	Repaint()
	RepaintRect(r geom.Rect)
}

type nopInvalidator struct{}

func (nopInvalidator) Repaint()              {}
func (nopInvalidator) RepaintRect(geom.Rect) {}

// ZoomListener is told about every magnifier step.
type ZoomListener func(notch int, zoom float64)

// Option configures a MapView.
type Option func(*MapView)

// WithMetrics replaces the layout constants.
func WithMetrics(m layout.Metrics) Option {
	return func(v *MapView) { v.metrics = m }
}

// WithScrollStep sets the wheel and keyboard scroll distance.
func WithScrollStep(px int) Option {
	return func(v *MapView) {
		if px > 0 {
			v.scrollStep = float64(px)
		}
	}
}

// WithMagnification replaces the magnification table.
func WithMagnification(steps []int) Option {
	return func(v *MapView) { v.magnifier = view.NewMagnifier(steps) }
}

// WithNotch starts at the given magnification step.
func WithNotch(i int) Option {
	return func(v *MapView) { v.startNotch = &i }
}

// WithInvalidator routes redraw requests to the host.
func WithInvalidator(inv Invalidator) Option {
	return func(v *MapView) {
		if inv != nil {
			v.inv = inv
		}
	}
}

// WithZoomListener observes magnifier steps.
func WithZoomListener(fn ZoomListener) Option {
	return func(v *MapView) { v.onZoom = fn }
}

// MapView is the starmap screen controller.
type MapView struct {
	assets  *Assets
	metrics layout.Metrics
	layout  layout.Layout
	sized   bool

	transform  *view.Transform
	magnifier  *view.Magnifier
	startNotch *int
	hKnob      geom.Rect
	vKnob      geom.Rect

	buttons     buttons
	mode        input.Mode
	lastX       int
	lastY       int
	pointerX    int
	pointerY    int
	pressTarget ButtonID
	pressButton input.MouseButton
	magnifyIn   bool
	wheelZoom   float64 // ctrl+wheel travel not yet turned into a notch

	nameMode         NameMode
	showShipControls bool
	showSatellites   bool
	colonies         panelList
	equipment        panelList

	scrollStep float64
	inv        Invalidator
	onZoom     ZoomListener
}

// panelList is the text shown in one of the right panel lists.
type panelList struct {
	lines    []string
	selected int
}

// New creates the view. The button arena is built once here.
func New(assets *Assets, opts ...Option) *MapView {
	m := &MapView{
		assets:         assets,
		metrics:        layout.DefaultMetrics,
		magnifier:      view.NewMagnifier(nil),
		buttons:        newButtons(),
		pressTarget:    NoButton,
		showSatellites: true,
		scrollStep:     DefaultScrollStep,
		inv:            nopInvalidator{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.startNotch != nil {
		m.magnifier.SetIndex(*m.startNotch)
	}
	for _, id := range []ButtonID{BtnMove, BtnAttack, BtnStop} {
		m.buttons[id].Visible = false
	}
	m.transform = view.New(geom.SizeOf(assets.FullMap), assets.Caps())
	m.transform.Zoom = m.magnifier.Zoom()
	return m
}

// Resize lays the screen out for a new widget size. Repeated calls with the
// same size are ignored.
func (m *MapView) Resize(w, h int) {
	if m.sized && m.layout.Width == w && m.layout.Height == h {
		return
	}
	m.relayout(w, h)
}

func (m *MapView) relayout(w, h int) {
	m.sized = true
	m.layout = layout.Compute(w, h, m.assets.Chrome(), m.metrics, m.buttons.satellites())
	m.buttons.place(m.layout)
	m.transform.SetGeometry(
		m.layout.Rect(layout.RegionMap),
		m.layout.Rect(layout.RegionHScroll),
		m.layout.Rect(layout.RegionVScroll),
	)
	// re-zoom so the scroll bounds follow the new viewport
	m.transform.SetZoom(m.transform.Zoom)
	m.updateKnobs()
	m.inv.Repaint()
}

func (m *MapView) updateKnobs() {
	m.hKnob, m.vKnob = m.transform.Knobs()
}

// SetZoom sets the zoom factor directly, capped at 1.0.
func (m *MapView) SetZoom(f float64) {
	m.transform.SetZoom(f)
	m.updateKnobs()
	m.inv.Repaint()
}

// SetScroll moves both scrollbars to the given track positions.
func (m *MapView) SetScroll(x, y float64) {
	m.transform.SetScroll(x, y)
	m.updateKnobs()
	m.inv.Repaint()
}

// ScrollByContentPixels moves the rendered map by dx, dy pixels.
func (m *MapView) ScrollByContentPixels(dx, dy float64) {
	m.transform.ScrollByContentPixels(dx, dy)
	m.updateKnobs()
	m.inv.Repaint()
}

// CenterOn scrolls the content point (cx, cy) to the middle of the viewport.
func (m *MapView) CenterOn(cx, cy float64) {
	m.transform.CenterOn(cx, cy)
	m.updateKnobs()
	m.inv.Repaint()
}

// ZoomIn steps the magnifier towards full size.
func (m *MapView) ZoomIn() bool {
	return m.applyMagnifier(m.magnifier.In())
}

// ZoomOut steps the magnifier away from full size.
func (m *MapView) ZoomOut() bool {
	return m.applyMagnifier(m.magnifier.Out())
}

// ZoomReset returns to full size.
func (m *MapView) ZoomReset() bool {
	return m.applyMagnifier(m.magnifier.Reset())
}

func (m *MapView) applyMagnifier(changed bool) bool {
	if !changed {
		return false
	}
	m.SetZoom(m.magnifier.Zoom())
	log.WithFields(log.Fields{
		"notch": m.magnifier.Index(),
		"zoom":  m.transform.Zoom,
	}).Debug("zoom changed")
	if m.onZoom != nil {
		m.onZoom(m.magnifier.Index(), m.transform.Zoom)
	}
	return true
}

// OnClick sets the callback of a button. Name and magnify keep their built-in
// behaviour and call fn afterwards.
func (m *MapView) OnClick(id ButtonID, fn func()) {
	if id < 0 || id >= ButtonCount {
		return
	}
	m.buttons[id].Action = fn
}

// SetDisabled enables or disables a button.
func (m *MapView) SetDisabled(id ButtonID, disabled bool) {
	if id < 0 || id >= ButtonCount || m.buttons[id].Disabled == disabled {
		return
	}
	m.buttons[id].Disabled = disabled
	m.inv.RepaintRect(m.buttons[id].Rect)
}

// SetVisible shows or hides a button. Satellite buttons re-stack.
func (m *MapView) SetVisible(id ButtonID, visible bool) {
	if id < 0 || id >= ButtonCount || m.buttons[id].Visible == visible {
		return
	}
	m.buttons[id].Visible = visible
	if id.Satellite() && m.sized {
		m.relayout(m.layout.Width, m.layout.Height)
		return
	}
	m.inv.RepaintRect(m.buttons[id].Rect)
}

// SetToggled sets the state of a toggle-group button without invoking it.
func (m *MapView) SetToggled(id ButtonID, on bool) {
	if !id.Toggle() || m.buttons[id].Toggled == on {
		return
	}
	m.buttons[id].Toggled = on
	m.inv.RepaintRect(m.buttons[id].Rect)
}

// SetShipControls switches the bottom panel between ship commands and the
// satellite launchers.
func (m *MapView) SetShipControls(on bool) {
	if m.showShipControls == on {
		return
	}
	m.showShipControls = on
	for id := ButtonID(0); id < ButtonCount; id++ {
		if id.ShipCommand() {
			m.buttons[id].Visible = on
		}
	}
	m.inv.RepaintRect(m.layout.Rect(layout.RegionShipControl))
}

// SetSatellites shows or hides the satellite panel while ship controls are off.
func (m *MapView) SetSatellites(on bool) {
	if m.showSatellites == on {
		return
	}
	m.showSatellites = on
	m.inv.RepaintRect(m.layout.Rect(layout.RegionShipControl))
}

// SetColonies sets the colony list text.
func (m *MapView) SetColonies(lines []string, selected int) {
	m.colonies = panelList{lines: lines, selected: selected}
	m.inv.RepaintRect(m.layout.Rect(layout.RegionColonies))
}

// SetEquipment sets the equipment list text.
func (m *MapView) SetEquipment(lines []string, selected int) {
	m.equipment = panelList{lines: lines, selected: selected}
	m.inv.RepaintRect(m.layout.Rect(layout.RegionEquipments))
}

// shown reports whether a button is on screen given the panel state.
func (m *MapView) shown(id ButtonID) bool {
	if !m.buttons[id].Visible {
		return false
	}
	if id.Satellite() {
		return !m.showShipControls && m.showSatellites
	}
	return true
}

// Layout returns the current rectangles.
func (m *MapView) Layout() layout.Layout { return m.layout }

// Transform returns a copy of the view transform.
func (m *MapView) Transform() view.Transform { return *m.transform }

// Knobs returns the scrollbar knob rectangles.
func (m *MapView) Knobs() (h, v geom.Rect) { return m.hKnob, m.vKnob }

// Button returns a copy of a button's state.
func (m *MapView) Button(id ButtonID) Button {
	if id < 0 || id >= ButtonCount {
		return Button{}
	}
	return m.buttons[id]
}

// Shown reports whether a button is currently drawn and clickable.
func (m *MapView) Shown(id ButtonID) bool {
	return id >= 0 && id < ButtonCount && m.shown(id)
}

// Mode returns the current interaction mode.
func (m *MapView) Mode() input.Mode { return m.mode }

// NameMode returns the current label mode.
func (m *MapView) NameMode() NameMode { return m.nameMode }

// Notch returns the magnifier step.
func (m *MapView) Notch() int { return m.magnifier.Index() }

// PointerContent returns the map coordinate under the last known pointer
// position, and whether the pointer is over the map.
func (m *MapView) PointerContent() (x, y float64, ok bool) {
	if !m.layout.Rect(layout.RegionMap).Contains(m.pointerX, m.pointerY) {
		return 0, 0, false
	}
	x, y = m.transform.ContentAt(m.pointerX, m.pointerY)
	return x, y, true
}
