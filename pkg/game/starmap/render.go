package starmap

import (
	"image/color"
	"math"

	"github.com/leonelquinteros/gotext"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/layout"
)

// Canvas is the drawing surface supplied by the host for one paint.
type Canvas interface {
	FillRect(r geom.Rect, c color.Color)
	DrawLine(x0, y0, x1, y1 int, c color.Color)
	// DrawImage draws img unscaled with its top left corner at (x, y).
	DrawImage(img Image, x, y int)
	// TileImage repeats img to fill r.
	TileImage(img Image, r geom.Rect)
	// DrawImageTransformed draws img through a, clipped to clip.
	DrawImageTransformed(img Image, clip geom.Rect, a geom.Affine)
	// DrawText draws one line with its top left corner at (x, y).
	DrawText(s string, x, y int, c color.Color)
}

var (
	colorTrack     = color.Black
	colorIndicator = color.RGBA{0xff, 0xff, 0x00, 0xff}
	colorFrame     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colorStatus    = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	colorListText  = color.RGBA{0xa0, 0xc0, 0xa0, 0xff}
	colorListSel   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// ListLineHeight is the row pitch of the panel lists.
const ListLineHeight = 12

// Render draws the whole screen. It only reads view state.
func (m *MapView) Render(c Canvas) {
	if !m.sized {
		return
	}
	m.renderBars(c)
	m.renderFrame(c)
	m.renderScrollbars(c)
	m.renderMinimap(c)
	m.renderMap(c)
	m.renderButtons(c)
	m.renderStatus(c)
	m.renderList(c, layout.RegionColonies, m.colonies)
	m.renderList(c, layout.RegionEquipments, m.equipment)
}

func (m *MapView) renderBars(c Canvas) {
	a := m.assets
	for _, bar := range []struct {
		r                   geom.Rect
		left, filler, right Image
	}{
		{m.layout.Rect(layout.RegionTopBar), a.TopLeft, a.TopFiller, a.TopRight},
		{m.layout.Rect(layout.RegionBottomBar), a.BottomLeftBar, a.BottomFillerBar, a.BottomRightBar},
	} {
		if bar.r.Empty() {
			continue
		}
		lw := geom.SizeOf(bar.left).W
		rw := geom.SizeOf(bar.right).W
		drawTiled(c, bar.filler, geom.R(bar.r.X+lw, bar.r.Y, bar.r.W-lw-rw, bar.r.H))
		drawAt(c, bar.left, bar.r.X, bar.r.Y)
		drawAt(c, bar.right, bar.r.Right()-rw, bar.r.Y)
	}
}

func (m *MapView) renderFrame(c Canvas) {
	a := m.assets
	corners := []struct {
		region layout.Region
		img    Image
	}{
		{layout.RegionBottomLeft, a.BottomLeft},
		{layout.RegionBottomRight, a.BottomRight},
		{layout.RegionRightTop, a.RightTop},
		{layout.RegionRightBottom, a.RightBottom},
	}
	for _, p := range corners {
		r := m.layout.Rect(p.region)
		drawAt(c, p.img, r.X, r.Y)
	}
	drawTiled(c, a.BottomFiller, m.layout.Rect(layout.RegionBottomFiller))
	drawTiled(c, a.RightFiller, m.layout.Rect(layout.RegionRightFiller))
}

func (m *MapView) renderScrollbars(c Canvas) {
	a := m.assets
	fillNonEmpty(c, m.layout.Rect(layout.RegionHScroll), colorTrack)
	fillNonEmpty(c, m.layout.Rect(layout.RegionVScroll), colorTrack)

	if h := m.hKnob; !h.Empty() {
		l, r := geom.SizeOf(a.HScrollLeft), geom.SizeOf(a.HScrollRight)
		drawTiled(c, a.HScrollFiller, geom.R(h.X+l.W, h.Y, h.W-l.W-r.W, h.H))
		drawAt(c, a.HScrollLeft, h.X, h.Y)
		drawAt(c, a.HScrollRight, h.Right()-r.W, h.Y)
	}
	if v := m.vKnob; !v.Empty() {
		t, b := geom.SizeOf(a.VScrollTop), geom.SizeOf(a.VScrollBottom)
		drawTiled(c, a.VScrollFiller, geom.R(v.X, v.Y+t.H, v.W, v.H-t.H-b.H))
		drawAt(c, a.VScrollTop, v.X, v.Y)
		drawAt(c, a.VScrollBottom, v.X, v.Bottom()-b.H)
	}
}

func (m *MapView) renderMinimap(c Canvas) {
	mm := m.layout.Rect(layout.RegionMinimap)
	if mm.Empty() {
		return
	}
	drawAt(c, m.assets.Minimap, mm.X, mm.Y)

	r := m.minimapIndicator()
	if r.Empty() {
		return
	}
	x1, y1 := r.Right()-1, r.Bottom()-1
	c.DrawLine(r.X, r.Y, x1, r.Y, colorIndicator)
	c.DrawLine(r.X, y1, x1, y1, colorIndicator)
	c.DrawLine(r.X, r.Y, r.X, y1, colorIndicator)
	c.DrawLine(x1, r.Y, x1, y1, colorIndicator)
}

// minimapIndicator is the visible part of the map scaled onto the minimap,
// clipped to it.
func (m *MapView) minimapIndicator() geom.Rect {
	mm := m.layout.Rect(layout.RegionMinimap)
	content := m.transform.Content()
	if content.W <= 0 || content.H <= 0 {
		return geom.Rect{}
	}
	sx := float64(mm.W) / float64(content.W)
	sy := float64(mm.H) / float64(content.H)
	vx, vy, vw, vh := m.transform.VisibleContent()

	x0 := max(mm.X, mm.X+int(math.Round(vx*sx)))
	y0 := max(mm.Y, mm.Y+int(math.Round(vy*sy)))
	x1 := min(mm.Right(), mm.X+int(math.Round((vx+vw)*sx)))
	y1 := min(mm.Bottom(), mm.Y+int(math.Round((vy+vh)*sy)))
	return geom.R(x0, y0, x1-x0, y1-y0)
}

func (m *MapView) renderMap(c Canvas) {
	vp := m.layout.Rect(layout.RegionMap)
	if vp.Empty() {
		return
	}
	if m.assets.MapBackground != nil {
		c.FillRect(vp, m.assets.MapBackground)
	}
	if m.assets.FullMap != nil {
		c.DrawImageTransformed(m.assets.FullMap, vp, m.transform.Affine())
	}
}

func (m *MapView) renderButtons(c Canvas) {
	if !m.showShipControls && !m.showSatellites {
		fillNonEmpty(c, m.layout.Rect(layout.RegionShipControl), color.Black)
	}
	for i := range m.buttons {
		id := ButtonID(i)
		if !m.shown(id) {
			continue
		}
		b := &m.buttons[id]
		if b.Rect.Empty() {
			continue
		}
		skin := m.assets.Buttons[id]
		img := m.buttonImage(id, b, skin)
		if img == nil {
			continue
		}
		if skin.Framed && b.Pressed && !b.Disabled {
			c.DrawLine(b.Rect.X, b.Rect.Y, b.Rect.Right()-1, b.Rect.Y, colorFrame)
			c.DrawLine(b.Rect.X, b.Rect.Bottom()-1, b.Rect.Right()-1, b.Rect.Bottom()-1, colorFrame)
			c.DrawImage(img, b.Rect.X, b.Rect.Y+1)
			continue
		}
		c.DrawImage(img, b.Rect.X, b.Rect.Y)
	}
}

// buttonImage picks the state variant: disabled, pressed, toggled, default.
func (m *MapView) buttonImage(id ButtonID, b *Button, skin Skin) Image {
	switch {
	case b.Disabled:
		return skin.Disabled
	case b.Pressed && skin.Pressed != nil:
		return skin.Pressed
	case b.Toggled && skin.Toggled != nil:
		return skin.Toggled
	case id == BtnName && m.assets.NameModes[m.nameMode] != nil:
		return m.assets.NameModes[m.nameMode]
	default:
		return skin.Normal
	}
}

// StatusLine is the text of the top bar readout.
func (m *MapView) StatusLine() string {
	s := gotext.Get("Zoom: %d%%", int(math.Round(m.transform.Zoom*100)))
	if x, y, ok := m.PointerContent(); ok {
		s += "  " + gotext.Get("Position: %d, %d", int(math.Floor(x)), int(math.Floor(y)))
	}
	return s
}

func (m *MapView) renderStatus(c Canvas) {
	bar := m.layout.Rect(layout.RegionTopBar)
	if bar.Empty() {
		return
	}
	x := bar.X + geom.SizeOf(m.assets.TopLeft).W + 4
	c.DrawText(m.StatusLine(), x, bar.Y+2, colorStatus)
}

func (m *MapView) renderList(c Canvas, region layout.Region, list panelList) {
	r := m.layout.Rect(region)
	if r.Empty() {
		return
	}
	y := r.Y + 2
	for i, line := range list.lines {
		if y+ListLineHeight > r.Bottom() {
			break
		}
		col := colorListText
		if i == list.selected {
			col = colorListSel
		}
		c.DrawText(line, r.X+4, y, col)
		y += ListLineHeight
	}
}

func drawAt(c Canvas, img Image, x, y int) {
	if img != nil {
		c.DrawImage(img, x, y)
	}
}

func drawTiled(c Canvas, img Image, r geom.Rect) {
	if img != nil && !r.Empty() {
		c.TileImage(img, r)
	}
}

func fillNonEmpty(c Canvas, r geom.Rect, col color.Color) {
	if !r.Empty() {
		c.FillRect(r, col)
	}
}
