// Package ebiten provides the Ebiten-based host for the starmap screen.
package ebiten

import (
	"image/color"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/layout"
)

// Color palette for the map screen
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{4, 4, 12, 255}      // Near black space
	colorPanel         = color.RGBA{52, 56, 82, 255}    // Panel face
	colorPanelLight    = color.RGBA{96, 102, 140, 255}  // Bevel highlight
	colorPanelDark     = color.RGBA{24, 26, 40, 255}    // Bevel shadow
	colorBar           = color.RGBA{36, 38, 60, 255}    // Info bars
	colorKnob          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorKnobCap       = color.RGBA{160, 170, 220, 255} // Knob ends
	colorButton        = color.RGBA{70, 76, 110, 255}   // Button face
	colorButtonPressed = color.RGBA{40, 44, 70, 255}    // Pressed face
	colorButtonToggled = color.RGBA{60, 110, 70, 255}   // Dark green when on
	colorButtonOff     = color.RGBA{50, 50, 60, 255}    // Disabled face
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorTextDisabled  = color.RGBA{110, 110, 130, 255} // Medium gray
	colorMessage       = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorStar          = color.RGBA{230, 230, 255, 255}
	colorStarWarm      = color.RGBA{255, 220, 170, 255}
	colorGrid          = color.RGBA{30, 40, 70, 255}
)

// Chrome piece sizes of the procedural artwork
var (
	sizeTopBar       = geom.Size{W: 200, H: 20}
	sizeBottomBar    = geom.Size{W: 200, H: 18}
	sizeBarFiller    = 8
	sizeBottomLeft   = geom.Size{W: 250, H: 112}
	sizeBottomRight  = geom.Size{W: 390, H: 112}
	sizeRightTop     = geom.Size{W: 140, H: 170}
	sizeRightBottom  = geom.Size{W: 140, H: 160}
	sizeFrameFiller  = 8
	sizeHKnobCap     = geom.Size{W: 9, H: 18}
	sizeVKnobCap     = geom.Size{W: 18, H: 9}
	sizeMinimap      = geom.Size{W: 131, H: 108}
	sizeSynthMap     = geom.Size{W: 2000, H: 1500}
	synthStarDensity = 0.0012
)

// Window constraints
const (
	minWindowWidth  = 640
	minWindowHeight = 480
	windowTitle     = "Starmap"
	uiFontSize      = 11.0
)

// Chrome returns the frame dimensions of the built-in artwork. It matches
// what Assets().Chrome() reports and needs no graphics context.
func Chrome() layout.Chrome {
	return layout.Chrome{
		TopBar:        sizeTopBar.H,
		BottomBar:     sizeBottomBar.H,
		BottomLeft:    sizeBottomLeft,
		BottomRight:   sizeBottomRight,
		BottomFillerH: sizeBottomLeft.H,
		RightTop:      sizeRightTop,
		RightBottom:   sizeRightBottom,
		RightFillerW:  sizeRightTop.W,
	}
}
