// Package input defines the toolkit-independent input vocabulary of the map
// screen: pointer events, interaction modes and keyboard bindings.
package input

import "fmt"

// PointerKind is the type of a pointer event.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerRelease
	PointerMove
	PointerWheel
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerRelease:
		return "release"
	case PointerMove:
		return "move"
	case PointerWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
)

// Has reports whether every modifier in m is held.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// PointerEvent is a pointer event in widget coordinates. WheelY is in notches;
// negative values roll away from the user.
type PointerEvent struct {
	Kind   PointerKind
	Button MouseButton
	X, Y   int
	WheelY float64
	Mods   Modifiers
}

func (e PointerEvent) String() string {
	return fmt.Sprintf("%v b%d (%d,%d) wheel=%v mods=%b", e.Kind, e.Button, e.X, e.Y, e.WheelY, e.Mods)
}

// Mode is the exclusive drag state of the dispatcher.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDraggingMap
	ModeDraggingHKnob
	ModeDraggingVKnob
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDraggingMap:
		return "dragging-map"
	case ModeDraggingHKnob:
		return "dragging-hknob"
	case ModeDraggingVKnob:
		return "dragging-vknob"
	default:
		return "unknown"
	}
}

// Dragging reports whether the mode is one of the drag modes.
func (m Mode) Dragging() bool {
	return m != ModeIdle
}
