// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/layout"
	"starmap/pkg/engine/terminal"
	"starmap/pkg/game/starmap"
)

const layoutDumpFilename = "layout.txt"

var (
	colorRegion   = color.Style{color.FgCyan}
	colorButton   = color.Style{color.FgMagenta}
	colorDegen    = color.Style{color.FgRed, color.OpBold}
	colorHeadline = color.Style{color.FgGreen, color.OpBold}
)

// regionStyle picks the colour of a table row.
func regionStyle(r layout.Region, rect geom.Rect) color.Style {
	switch {
	case rect.W < 0 || rect.H < 0:
		return colorDegen
	case r >= layout.RegionColonyPrev:
		return colorButton
	default:
		return colorRegion
	}
}

// WriteLayoutTable writes one line per region. Lines are cut at width when
// width > 0, and coloured when colorize is set.
func WriteLayoutTable(w io.Writer, l layout.Layout, width int, colorize bool) {
	head := fmt.Sprintf("%-20s %6s %6s %6s %6s", "region", "x", "y", "w", "h")
	if colorize {
		head = colorHeadline.Sprint(head)
	}
	fmt.Fprintln(w, head)
	l.Each(func(r layout.Region, rect geom.Rect) {
		line := fmt.Sprintf("%-20s %6d %6d %6d %6d", r, rect.X, rect.Y, rect.W, rect.H)
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		if colorize {
			line = regionStyle(r, rect).Sprint(line)
		}
		fmt.Fprintln(w, line)
	})
}

// PrintLayout writes the layout table to stdout, coloured and fitted to the
// terminal when stdout is one.
func PrintLayout(l layout.Layout) {
	tty := terminal.IsTerminal(os.Stdout)
	width := 0
	if tty {
		width = terminal.GetWidth(os.Stdout)
	}
	WriteLayoutTable(os.Stdout, l, width, tty)
}

// writeLayoutDump writes the full debug dump: metadata, the view state and
// the region table.
func writeLayoutDump(w io.Writer, v *starmap.MapView) {
	l := v.Layout()
	tr := v.Transform()
	hKnob, vKnob := v.Knobs()

	fmt.Fprintln(w, "=== LAYOUT DUMP DEBUG (regions, view transform, buttons) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", l.Width)
	fmt.Fprintf(w, "height: %d\n", l.Height)
	fmt.Fprintf(w, "content: %dx%d\n", tr.Content().W, tr.Content().H)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, origin top left, pixels)\n")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- View ---")
	fmt.Fprintf(w, "zoom: %.4f\n", tr.Zoom)
	fmt.Fprintf(w, "notch: %d\n", v.Notch())
	fmt.Fprintf(w, "h_scroll: value=%.2f max=%.2f factor=%.4f\n", tr.H.Value, tr.H.Max, tr.H.Factor)
	fmt.Fprintf(w, "v_scroll: value=%.2f max=%.2f factor=%.4f\n", tr.V.Value, tr.V.Max, tr.V.Factor)
	fmt.Fprintf(w, "h_knob: %v\n", hKnob)
	fmt.Fprintf(w, "v_knob: %v\n", vKnob)
	fmt.Fprintf(w, "mode: %v\n", v.Mode())
	fmt.Fprintf(w, "name_mode: %v\n", v.NameMode())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Regions ---")
	WriteLayoutTable(w, l, 0, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Buttons ---")
	for id := starmap.ButtonID(0); id < starmap.ButtonCount; id++ {
		b := v.Button(id)
		var flags []string
		if v.Shown(id) {
			flags = append(flags, "shown")
		}
		if b.Disabled {
			flags = append(flags, "disabled")
		}
		if b.Pressed {
			flags = append(flags, "pressed")
		}
		if b.Toggled {
			flags = append(flags, "toggled")
		}
		fmt.Fprintf(w, "%-16s %-20v %s\n", id, b.Rect, strings.Join(flags, ","))
	}
}

// DumpLayoutToFile writes the debug dump to layout.txt in the working
// directory and returns its absolute path.
func DumpLayoutToFile(v *starmap.MapView) (string, error) {
	absPath, err := filepath.Abs(layoutDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("creating layout dump: %w", err)
	}
	defer f.Close()

	writeLayoutDump(f, v)
	return absPath, nil
}
