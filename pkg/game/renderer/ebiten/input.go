package ebiten

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	engineinput "starmap/pkg/engine/input"
	"starmap/pkg/game/devtools"
)

const (
	keyRepeatInitialDelay = 400 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 50  // Interval between repeat events (milliseconds)
)

// pointerButtons maps Ebiten mouse buttons to view buttons
var pointerButtons = []struct {
	mouse ebiten.MouseButton
	btn   engineinput.MouseButton
}{
	{ebiten.MouseButtonLeft, engineinput.ButtonPrimary},
	{ebiten.MouseButtonRight, engineinput.ButtonSecondary},
	{ebiten.MouseButtonMiddle, engineinput.ButtonMiddle},
}

// keyCodes maps binding codes to Ebiten keys. Codes missing here, such as
// "ctrl+c", are produced another way.
var keyCodes = func() map[string]ebiten.Key {
	m := map[string]ebiten.Key{
		"arrow_up":        ebiten.KeyArrowUp,
		"arrow_down":      ebiten.KeyArrowDown,
		"arrow_left":      ebiten.KeyArrowLeft,
		"arrow_right":     ebiten.KeyArrowRight,
		"home":            ebiten.KeyHome,
		"end":             ebiten.KeyEnd,
		"page_up":         ebiten.KeyPageUp,
		"page_down":       ebiten.KeyPageDown,
		"space":           ebiten.KeySpace,
		"tab":             ebiten.KeyTab,
		"enter":           ebiten.KeyEnter,
		"escape":          ebiten.KeyEscape,
		"=":               ebiten.KeyEqual,
		"-":               ebiten.KeyMinus,
		"numpad_add":      ebiten.KeyNumpadAdd,
		"numpad_subtract": ebiten.KeyNumpadSubtract,
	}
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		m[string(rune('a'+i))] = k
	}
	digits := []ebiten.Key{
		ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
		ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
	for i, k := range digits {
		m[string(rune('0'+i))] = k
	}
	fkeys := []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
	for i, k := range fkeys {
		m[fmt.Sprintf("f%d", i+1)] = k
	}
	return m
}()

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.WithFields(log.Fields{"width": w, "height": h}).Info("window opened")
	}

	if e.quitting {
		return e.shutdown()
	}

	e.checkPointer()

	for _, in := range e.checkInput() {
		if e.view.HandleIntent(in) {
			continue
		}
		e.handleHostIntent(in)
	}

	if e.quitting {
		return e.shutdown()
	}
	return nil
}

// modifiers returns the held modifier keys
func modifiers() engineinput.Modifiers {
	var m engineinput.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= engineinput.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= engineinput.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= engineinput.ModAlt
	}
	return m
}

// checkPointer turns the mouse state of this tick into view events
func (e *EbitenRenderer) checkPointer() {
	x, y := ebiten.CursorPosition()
	mods := modifiers()

	if !e.cursorKnown || x != e.lastCursorX || y != e.lastCursorY {
		e.cursorKnown = true
		e.lastCursorX, e.lastCursorY = x, y
		e.view.HandlePointer(engineinput.PointerEvent{Kind: engineinput.PointerMove, X: x, Y: y, Mods: mods})
	}

	for _, pb := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(pb.mouse) {
			e.view.HandlePointer(engineinput.PointerEvent{Kind: engineinput.PointerPress, Button: pb.btn, X: x, Y: y, Mods: mods})
		}
		if inpututil.IsMouseButtonJustReleased(pb.mouse) {
			e.view.HandlePointer(engineinput.PointerEvent{Kind: engineinput.PointerRelease, Button: pb.btn, X: x, Y: y, Mods: mods})
		}
	}

	// Ebiten reports positive y for rolling away from the user
	if _, wy := ebiten.Wheel(); wy != 0 {
		e.view.HandlePointer(engineinput.PointerEvent{Kind: engineinput.PointerWheel, X: x, Y: y, WheelY: -wy, Mods: mods})
	}
}

// checkInput collects the keyboard intents of this tick
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	emit := func(code string) {
		in := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: time.Now(),
		}))
		if in.Action != engineinput.ActionNone {
			intents = append(intents, in)
		}
	}

	mods := modifiers()
	if mods.Has(engineinput.ModCtrl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		emit("ctrl+c")
	}

	// codes are read from the live bindings so rebound keys work
	for _, code := range engineinput.Codes() {
		key, ok := keyCodes[code]
		if !ok {
			continue
		}
		if engineinput.ShadowedByCtrl(code, mods) {
			delete(e.keyRepeatState, "key_"+code)
			continue
		}
		act := engineinput.MapToIntent(engineinput.DebouncedInput{Code: code}).Action
		if engineinput.Repeats(act) {
			if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, "key_"+code) {
				emit(code)
			}
		} else if inpututil.IsKeyJustPressed(key) {
			emit(code)
		}
	}
	return intents
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	pressed := isPressed()
	state, exists := e.keyRepeatState[code]

	if !pressed {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{
			firstPressed: now,
			lastRepeat:   now,
		}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// handleHostIntent runs the actions the view leaves to its host
func (e *EbitenRenderer) handleHostIntent(in engineinput.Intent) {
	switch in.Action {
	case engineinput.ActionQuit:
		e.Quit()
	case engineinput.ActionScreenshot:
		e.screenshotPending = true
		e.queue.Repaint()
	case engineinput.ActionDumpLayout:
		path, err := devtools.DumpLayoutToFile(e.view)
		if err != nil {
			log.WithError(err).Warn("could not dump layout")
			return
		}
		devtools.PrintLayout(e.view.Layout())
		e.logMessage("Layout written to %s", path)
	case engineinput.ActionCopyCoordinate:
		x, y, ok := e.view.PointerContent()
		if !ok {
			return
		}
		coord := fmt.Sprintf("%d, %d", int(x), int(y))
		if err := clipboard.WriteAll(coord); err != nil {
			log.WithError(err).Warn("could not copy coordinate")
			return
		}
		e.logMessage("Copied %s", coord)
	}
}

// saveZoomPreference stores the magnifier notch in the preferences
func (e *EbitenRenderer) saveZoomPreference(notch int, zoom float64) {
	if err := e.prefs.SetMagnifyNotch(notch); err != nil {
		log.WithError(err).Warn("could not save preferences")
	}
}
