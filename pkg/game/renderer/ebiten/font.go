package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFontSource parses the embedded Go Regular font
func loadFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading ui font: %w", err)
	}
	return src, nil
}

// getUIFontFace returns a cached face for labels and the status line
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	if e.cachedUIFace == nil {
		e.cachedUIFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   uiFontSize,
		}
	}
	return e.cachedUIFace
}
