package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/layout"
	"starmap/pkg/game/devtools"
)

// Draw renders the pending repaints to the screen (Ebiten interface). The
// screen is not cleared between frames, so untouched areas keep their pixels.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	if !e.queue.Pending() {
		return
	}
	face := e.getUIFontFace()

	full, rects := e.queue.Take()
	if full {
		screen.Fill(colorBackground)
		c := newCanvas(screen, face)
		e.view.Render(c)
		e.drawMessages(c)
	} else {
		for _, r := range rects {
			clip := r.Image().Intersect(screen.Bounds())
			if clip.Empty() {
				continue
			}
			dst := screen.SubImage(clip).(*ebiten.Image)
			dst.Fill(colorBackground)
			c := newCanvas(dst, face)
			e.view.Render(c)
			e.drawMessages(c)
		}
	}

	if e.screenshotPending && full {
		e.screenshotPending = false
		e.saveScreenshot(screen)
	}
}

// drawMessages draws the latest game message in the bottom bar
func (e *EbitenRenderer) drawMessages(c *canvas) {
	if len(e.game.Messages) == 0 {
		return
	}
	bar := e.view.Layout().Rect(layout.RegionBottomBar)
	if bar.Empty() {
		return
	}
	msg := e.game.Messages[len(e.game.Messages)-1]
	c.DrawText(msg, bar.X+sizeBottomBar.W+4, bar.Y+2, colorMessage)
}

// logMessage adds a message to the game log and repaints the bottom bar
func (e *EbitenRenderer) logMessage(msg string, a ...any) {
	e.game.AddMessage(gotext.Get(msg, a...))
	e.queue.RepaintRect(e.view.Layout().Rect(layout.RegionBottomBar))
}

// saveScreenshot writes the frame as PNG next to an HTML outline of the layout
func (e *EbitenRenderer) saveScreenshot(screen *ebiten.Image) {
	png, err := devtools.SaveScreenshotPNG(".", screen)
	if err != nil {
		log.WithError(err).Warn("could not save screenshot")
		return
	}
	html, err := devtools.SaveLayoutHTML(e.view.Layout())
	if err != nil {
		log.WithError(err).Warn("could not save layout outline")
	}
	log.WithFields(log.Fields{
		"png":  png,
		"html": html,
		"size": geom.SizeOf(screen),
	}).Info("screenshot saved")
	e.logMessage("Screenshot saved to %s", png)
}
