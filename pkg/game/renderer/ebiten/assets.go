package ebiten

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/layout"
	"starmap/pkg/game/starmap"
)

// buttonLabel returns the translated caption of a button
func buttonLabel(id starmap.ButtonID) string {
	switch id {
	case starmap.BtnColonyPrev, starmap.BtnEquipmentPrev:
		return "<"
	case starmap.BtnColonyNext, starmap.BtnEquipmentNext:
		return ">"
	case starmap.BtnColony:
		return gotext.Get("Colony")
	case starmap.BtnEquipment:
		return gotext.Get("Equipment")
	case starmap.BtnInfo:
		return gotext.Get("Info")
	case starmap.BtnBridge:
		return gotext.Get("Bridge")
	case starmap.BtnMagnify:
		return gotext.Get("Zoom")
	case starmap.BtnColonize:
		return gotext.Get("Colonize")
	case starmap.BtnRadars:
		return gotext.Get("Radars")
	case starmap.BtnFleets:
		return gotext.Get("Fleets")
	case starmap.BtnStars:
		return gotext.Get("Stars")
	case starmap.BtnGrids:
		return gotext.Get("Grids")
	case starmap.BtnName:
		return gotext.Get("Names")
	case starmap.BtnMove:
		return gotext.Get("Move")
	case starmap.BtnAttack:
		return gotext.Get("Attack")
	case starmap.BtnStop:
		return gotext.Get("Stop")
	case starmap.BtnSatellite:
		return gotext.Get("Satellite")
	case starmap.BtnSpySat1:
		return gotext.Get("Spy Sat I")
	case starmap.BtnSpySat2:
		return gotext.Get("Spy Sat II")
	case starmap.BtnHubble2:
		return gotext.Get("Hubble II")
	default:
		return ""
	}
}

// nameModeLabel returns the translated caption of a name mode
func nameModeLabel(m starmap.NameMode) string {
	switch m {
	case starmap.NameColony:
		return gotext.Get("Names: colonies")
	case starmap.NameFleets:
		return gotext.Get("Names: fleets")
	case starmap.NameBoth:
		return gotext.Get("Names: all")
	default:
		return gotext.Get("Names: off")
	}
}

// loadAssets builds the screen artwork. The map comes from mapPath when set,
// otherwise a starfield is generated from seed.
func (e *EbitenRenderer) loadAssets(mapPath string, seed int64) (*starmap.Assets, error) {
	a := &starmap.Assets{
		TopLeft:         bevelImage(sizeTopBar.W, sizeTopBar.H, colorBar),
		TopFiller:       flatImage(sizeBarFiller, sizeTopBar.H, colorBar),
		TopRight:        bevelImage(sizeTopBar.W, sizeTopBar.H, colorBar),
		BottomLeftBar:   bevelImage(sizeBottomBar.W, sizeBottomBar.H, colorBar),
		BottomFillerBar: flatImage(sizeBarFiller, sizeBottomBar.H, colorBar),
		BottomRightBar:  bevelImage(sizeBottomBar.W, sizeBottomBar.H, colorBar),
		BottomLeft:      bevelImage(sizeBottomLeft.W, sizeBottomLeft.H, colorPanel),
		BottomFiller:    flatImage(sizeFrameFiller, sizeBottomLeft.H, colorPanel),
		BottomRight:     bevelImage(sizeBottomRight.W, sizeBottomRight.H, colorPanel),
		RightTop:        bevelImage(sizeRightTop.W, sizeRightTop.H, colorPanel),
		RightFiller:     flatImage(sizeRightTop.W, sizeFrameFiller, colorPanel),
		RightBottom:     bevelImage(sizeRightBottom.W, sizeRightBottom.H, colorPanel),
		HScrollLeft:     flatImage(sizeHKnobCap.W, sizeHKnobCap.H, colorKnobCap),
		HScrollFiller:   flatImage(1, sizeHKnobCap.H, colorKnob),
		HScrollRight:    flatImage(sizeHKnobCap.W, sizeHKnobCap.H, colorKnobCap),
		VScrollTop:      flatImage(sizeVKnobCap.W, sizeVKnobCap.H, colorKnobCap),
		VScrollFiller:   flatImage(sizeVKnobCap.W, 1, colorKnob),
		VScrollBottom:   flatImage(sizeVKnobCap.W, sizeVKnobCap.H, colorKnobCap),
		MapBackground:   colorMapBackground,
	}

	full, err := loadMap(mapPath, seed)
	if err != nil {
		return nil, err
	}
	a.FullMap = full
	a.Minimap = scaleImage(full, sizeMinimap.W, sizeMinimap.H)

	// buttons take the size of their slot at the base resolution
	base := layout.Compute(minWindowWidth, minWindowHeight, Chrome(), layout.DefaultMetrics, layout.AllSatellites)
	face := e.getUIFontFace()
	for id := starmap.ButtonID(0); id < starmap.ButtonCount; id++ {
		r := base.Rect(id.Region())
		label := buttonLabel(id)
		a.Buttons[id] = starmap.Skin{
			Normal:   labelImage(r.W, r.H, colorButton, colorText, label, face),
			Pressed:  labelImage(r.W, r.H, colorButtonPressed, colorText, label, face),
			Toggled:  labelImage(r.W, r.H, colorButtonToggled, colorText, label, face),
			Disabled: labelImage(r.W, r.H, colorButtonOff, colorTextDisabled, label, face),
			Framed:   id == starmap.BtnColonyPrev || id == starmap.BtnColonyNext || id == starmap.BtnEquipmentPrev || id == starmap.BtnEquipmentNext,
		}
	}
	nameRect := base.Rect(starmap.BtnName.Region())
	for m := starmap.NameMode(0); m < starmap.NameModeCount; m++ {
		a.NameModes[m] = labelImage(nameRect.W, nameRect.H, colorButton, colorText, nameModeLabel(m), face)
	}
	return a, nil
}

func loadMap(path string, seed int64) (*ebiten.Image, error) {
	if path == "" {
		log.WithField("seed", seed).Debug("generating starfield")
		return ebiten.NewImageFromImage(starfield(sizeSynthMap, seed)), nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading map %s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"path": path,
		"size": geom.SizeOf(img),
	}).Info("map loaded")
	return img, nil
}

// starfield draws a grid and random stars into an in-memory image
func starfield(size geom.Size, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if x%100 == 0 || y%100 == 0 {
				img.Set(x, y, colorGrid)
			} else {
				img.Set(x, y, colorMapBackground)
			}
		}
	}
	rng := rand.New(rand.NewSource(seed))
	stars := int(float64(size.W*size.H) * synthStarDensity)
	for i := 0; i < stars; i++ {
		x, y := rng.Intn(size.W), rng.Intn(size.H)
		c := colorStar
		if rng.Intn(4) == 0 {
			c = colorStarWarm
		}
		img.Set(x, y, c)
		if rng.Intn(10) == 0 && x+1 < size.W && y+1 < size.H {
			img.Set(x+1, y, c)
			img.Set(x, y+1, c)
			img.Set(x+1, y+1, c)
		}
	}
	return img
}

func flatImage(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(c)
	return img
}

// bevelImage is a flat panel with a light top/left and dark bottom/right edge
func bevelImage(w, h int, c color.Color) *ebiten.Image {
	img := flatImage(w, h, c)
	fw, fh := float32(w), float32(h)
	vector.DrawFilledRect(img, 0, 0, fw, 1, colorPanelLight, false)
	vector.DrawFilledRect(img, 0, 0, 1, fh, colorPanelLight, false)
	vector.DrawFilledRect(img, 0, fh-1, fw, 1, colorPanelDark, false)
	vector.DrawFilledRect(img, fw-1, 0, 1, fh, colorPanelDark, false)
	return img
}

// labelImage is a bevelled button face with a centred caption
func labelImage(w, h int, bg, fg color.Color, label string, face *text.GoTextFace) *ebiten.Image {
	img := bevelImage(w, h, bg)
	tw, th := text.Measure(label, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(w)-tw)/2, (float64(h)-th)/2)
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(img, label, face, op)
	return img
}

// scaleImage draws src scaled into a new w x h image
func scaleImage(src *ebiten.Image, w, h int) *ebiten.Image {
	dst := ebiten.NewImage(w, h)
	s := geom.SizeOf(src)
	if s.W == 0 || s.H == 0 {
		return dst
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(s.W), float64(h)/float64(s.H))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}
