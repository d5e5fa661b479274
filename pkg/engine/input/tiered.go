package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
)

// Action represents a high‑level intent on the map screen.
type Action int

const (
	ActionNone Action = iota

	// Scrolling
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionScrollHome

	// Zoom
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset

	// Map overlays
	ActionCycleNames
	ActionToggleRadars
	ActionToggleFleets
	ActionToggleStars
	ActionToggleGrids

	// Meta / tooling
	ActionQuit
	ActionScreenshot
	ActionDumpLayout
	ActionCopyCoordinate
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "f12").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed queries already debounce keys, but the distinct type
// keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Scrolling (arrows, WASD)
	"arrow_up":    ActionScrollUp,
	"w":           ActionScrollUp,
	"arrow_down":  ActionScrollDown,
	"s":           ActionScrollDown,
	"arrow_left":  ActionScrollLeft,
	"a":           ActionScrollLeft,
	"arrow_right": ActionScrollRight,
	"d":           ActionScrollRight,
	"home":        ActionScrollHome,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"0":               ActionZoomReset,

	// Overlays
	"n": ActionCycleNames,
	"r": ActionToggleRadars,
	"f": ActionToggleFleets,
	"t": ActionToggleStars,
	"g": ActionToggleGrids,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Tooling
	"f12":    ActionScreenshot,
	"f8":     ActionDumpLayout,
	"ctrl+c": ActionCopyCoordinate,
}

// reserved codes cannot be rebound away from their action.
var reserved = map[string]bool{
	"arrow_up": true, "arrow_down": true, "arrow_left": true, "arrow_right": true,
	"escape": true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionScrollUp:
		return "Scroll Up"
	case ActionScrollDown:
		return "Scroll Down"
	case ActionScrollLeft:
		return "Scroll Left"
	case ActionScrollRight:
		return "Scroll Right"
	case ActionScrollHome:
		return "Scroll Home"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Zoom Reset"
	case ActionCycleNames:
		return "Cycle Names"
	case ActionToggleRadars:
		return "Toggle Radars"
	case ActionToggleFleets:
		return "Toggle Fleets"
	case ActionToggleStars:
		return "Toggle Stars"
	case ActionToggleGrids:
		return "Toggle Grids"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDumpLayout:
		return "Dump Layout"
	case ActionCopyCoordinate:
		return "Copy Coordinate"
	default:
		return "None"
	}
}

// ActionByName is the inverse of ActionName, ignoring case.
func ActionByName(name string) (Action, bool) {
	for a := ActionScrollUp; a <= ActionCopyCoordinate; a++ {
		if strings.EqualFold(ActionName(a), strings.TrimSpace(name)) {
			return a, true
		}
	}
	return ActionNone, false
}

// Repeats reports whether holding a key bound to a fires it repeatedly.
func Repeats(a Action) bool {
	switch a {
	case ActionScrollUp, ActionScrollDown, ActionScrollLeft, ActionScrollRight:
		return true
	}
	return false
}

// ShadowedByCtrl reports whether code must be ignored while Ctrl is held.
// Plain letters are, so that ctrl+c copies without also toggling anything.
func ShadowedByCtrl(code string, mods Modifiers) bool {
	if !mods.Has(ModCtrl) || len(code) != 1 {
		return false
	}
	return code[0] >= 'a' && code[0] <= 'z'
}

// Codes returns every bound code in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(bindings))
	for c := range bindings {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering within each action.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved codes keep their action.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// ApplyBindings rebinds each named action to its code with SetSingleBinding.
// Unknown action names are skipped and reported together.
func ApplyBindings(custom map[string]string) error {
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		act, ok := ActionByName(name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown action %q", name))
			continue
		}
		SetSingleBinding(act, strings.ToLower(strings.TrimSpace(custom[name])))
	}
	return errors.Join(errs...)
}
