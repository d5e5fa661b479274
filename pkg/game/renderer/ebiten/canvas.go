package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starmap/pkg/engine/geom"
	"starmap/pkg/game/starmap"
)

// canvas draws the view onto an Ebiten image. The target may be a sub-image
// of the screen, which clips every operation to the damaged area.
type canvas struct {
	dst  *ebiten.Image
	face *text.GoTextFace
}

var _ starmap.Canvas = (*canvas)(nil)

func newCanvas(dst *ebiten.Image, face *text.GoTextFace) *canvas {
	return &canvas{dst: dst, face: face}
}

func asEbiten(img starmap.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	return nil
}

// sub returns the target clipped to r, or nil when nothing is left
func (c *canvas) sub(r geom.Rect) *ebiten.Image {
	clip := r.Image().Intersect(c.dst.Bounds())
	if clip.Empty() {
		return nil
	}
	return c.dst.SubImage(clip).(*ebiten.Image)
}

func (c *canvas) FillRect(r geom.Rect, col color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

func (c *canvas) DrawLine(x0, y0, x1, y1 int, col color.Color) {
	switch {
	case y0 == y1:
		c.FillRect(geom.R(min(x0, x1), y0, abs(x1-x0)+1, 1), col)
	case x0 == x1:
		c.FillRect(geom.R(x0, min(y0, y1), 1, abs(y1-y0)+1), col)
	default:
		vector.StrokeLine(c.dst, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, col, true)
	}
}

func (c *canvas) DrawImage(img starmap.Image, x, y int) {
	src := asEbiten(img)
	if src == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	c.dst.DrawImage(src, op)
}

func (c *canvas) TileImage(img starmap.Image, r geom.Rect) {
	src := asEbiten(img)
	s := geom.SizeOf(img)
	dst := c.sub(r)
	if src == nil || dst == nil || s.W == 0 || s.H == 0 {
		return
	}
	for y := r.Y; y < r.Bottom(); y += s.H {
		for x := r.X; x < r.Right(); x += s.W {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			dst.DrawImage(src, op)
		}
	}
}

func (c *canvas) DrawImageTransformed(img starmap.Image, clip geom.Rect, a geom.Affine) {
	src := asEbiten(img)
	dst := c.sub(clip)
	if src == nil || dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.Scale, a.Scale)
	op.GeoM.Translate(a.TranslateX, a.TranslateY)
	if a.Scale < 1 {
		op.Filter = ebiten.FilterLinear
	}
	dst.DrawImage(src, op)
}

func (c *canvas) DrawText(s string, x, y int, col color.Color) {
	if s == "" || c.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, c.face, op)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
