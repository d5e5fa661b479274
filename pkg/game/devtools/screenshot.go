package devtools

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/layout"
)

func screenshotName(ext string, now time.Time) string {
	return fmt.Sprintf("screenshot-%s.%s", now.Format("20060102-150405"), ext)
}

// SaveScreenshotPNG writes img to screenshot-<timestamp>.png in dir.
func SaveScreenshotPNG(dir string, img image.Image) (string, error) {
	filename := filepath.Join(dir, screenshotName("png", time.Now()))
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing screenshot: %w", err)
	}
	return filename, nil
}

// regionClass returns the CSS class for a region box
func regionClass(r layout.Region) string {
	switch {
	case r == layout.RegionMap:
		return "map"
	case r == layout.RegionMinimap:
		return "minimap"
	case r == layout.RegionHScroll || r == layout.RegionVScroll:
		return "track"
	case r >= layout.RegionColonyPrev:
		return "button"
	default:
		return "chrome"
	}
}

// LayoutHTML renders the layout as absolutely positioned boxes, one per
// non-empty region.
func LayoutHTML(l layout.Layout) string {
	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Starmap - Layout</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .screen {
            position: relative;
            background-color: #0f0f1a;
            outline: 1px solid #333;
        }
        .screen div {
            position: absolute;
            box-sizing: border-box;
            font-size: 9px;
            overflow: hidden;
        }
        .chrome { border: 1px solid #666; color: #888; }
        .map { border: 1px solid #00aa00; color: #00aa00; }
        .minimap { border: 1px solid #ffff00; color: #ffff00; }
        .track { background-color: #000; border: 1px solid #444; }
        .button { border: 1px solid #ff66ff; color: #ff66ff; }
    </style>
</head>
<body>
`)

	html.WriteString(fmt.Sprintf(`    <div class="header">Layout %dx%d</div>`+"\n", l.Width, l.Height))
	html.WriteString(fmt.Sprintf(`    <div class="screen" style="width:%dpx;height:%dpx">`+"\n", l.Width, l.Height))

	l.Each(func(r layout.Region, rect geom.Rect) {
		if rect.Empty() {
			return
		}
		html.WriteString(fmt.Sprintf(
			`        <div class="%s" style="left:%dpx;top:%dpx;width:%dpx;height:%dpx">%s</div>`+"\n",
			regionClass(r), rect.X, rect.Y, rect.W, rect.H, r))
	})

	html.WriteString(`    </div>
</body>
</html>
`)
	return html.String()
}

// SaveLayoutHTML writes LayoutHTML to screenshot-<timestamp>.html.
func SaveLayoutHTML(l layout.Layout) (string, error) {
	filename := screenshotName("html", time.Now())
	if err := os.WriteFile(filename, []byte(LayoutHTML(l)), 0644); err != nil {
		return "", fmt.Errorf("writing layout html: %w", err)
	}
	return filename, nil
}
