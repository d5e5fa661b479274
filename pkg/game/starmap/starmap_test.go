package starmap

import (
	"image"
	"image/color"
	"math"
	"testing"

	"starmap/pkg/engine/geom"
	"starmap/pkg/engine/input"
	"starmap/pkg/engine/layout"
)

func img(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// testAssets mirrors the chrome dimensions of the original artwork.
func testAssets() *Assets {
	a := &Assets{
		TopLeft:         img(200, 20),
		TopFiller:       img(8, 20),
		TopRight:        img(200, 20),
		BottomLeftBar:   img(200, 18),
		BottomFillerBar: img(8, 18),
		BottomRightBar:  img(200, 18),
		BottomLeft:      img(250, 112),
		BottomFiller:    img(8, 112),
		BottomRight:     img(390, 112),
		RightTop:        img(140, 170),
		RightFiller:     img(140, 8),
		RightBottom:     img(140, 160),
		HScrollLeft:     img(9, 18),
		HScrollFiller:   img(1, 18),
		HScrollRight:    img(9, 18),
		VScrollTop:      img(18, 9),
		VScrollFiller:   img(18, 1),
		VScrollBottom:   img(18, 9),
		Minimap:         img(131, 108),
		FullMap:         img(2000, 1500),
		MapBackground:   color.Black,
	}
	for i := range a.Buttons {
		a.Buttons[i] = Skin{
			Normal:   img(10, 10),
			Pressed:  img(10, 10),
			Toggled:  img(10, 10),
			Disabled: img(10, 10),
		}
	}
	for i := range a.NameModes {
		a.NameModes[i] = img(10, 10)
	}
	return a
}

type countingInvalidator struct {
	full  int
	rects []geom.Rect
}

func (c *countingInvalidator) Repaint()                { c.full++ }
func (c *countingInvalidator) RepaintRect(r geom.Rect) { c.rects = append(c.rects, r) }

func newTestView(t *testing.T, opts ...Option) (*MapView, *countingInvalidator) {
	t.Helper()
	inv := &countingInvalidator{}
	v := New(testAssets(), append([]Option{WithInvalidator(inv)}, opts...)...)
	v.Resize(640, 480)
	return v, inv
}

func center(r geom.Rect) (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func press(v *MapView, b input.MouseButton, x, y int) {
	v.HandlePointer(input.PointerEvent{Kind: input.PointerPress, Button: b, X: x, Y: y})
}

func release(v *MapView, b input.MouseButton, x, y int) {
	v.HandlePointer(input.PointerEvent{Kind: input.PointerRelease, Button: b, X: x, Y: y})
}

func moveTo(v *MapView, x, y int) {
	v.HandlePointer(input.PointerEvent{Kind: input.PointerMove, X: x, Y: y})
}

func wheel(v *MapView, x, y int, dy float64, mods input.Modifiers) {
	v.HandlePointer(input.PointerEvent{Kind: input.PointerWheel, X: x, Y: y, WheelY: dy, Mods: mods})
}

func clickButton(v *MapView, id ButtonID, b input.MouseButton) {
	x, y := center(v.Button(id).Rect)
	press(v, b, x, y)
	release(v, b, x, y)
}

func TestResize_SameSizeTwice(t *testing.T) {
	v, inv := newTestView(t)
	first := v.Layout()
	v.Resize(640, 480)
	if v.Layout() != first {
		t.Fatal("layout changed on resize to the same size")
	}
	if inv.full != 1 {
		t.Errorf("full repaints = %d, want 1", inv.full)
	}
	v.Resize(800, 600)
	if v.Layout() == first {
		t.Error("layout did not change on a real resize")
	}
}

func TestResize_KeepsScrollInRange(t *testing.T) {
	v, _ := newTestView(t)
	v.SetScroll(1e6, 1e6)
	v.Resize(1600, 1200)
	tr := v.Transform()
	if tr.H.Value > tr.H.Max || tr.V.Value > tr.V.Max {
		t.Errorf("scroll (%v, %v) exceeds max (%v, %v)", tr.H.Value, tr.V.Value, tr.H.Max, tr.V.Max)
	}
}

func TestHandlePointer_ClickInvokesOnce(t *testing.T) {
	v, _ := newTestView(t)
	calls := 0
	v.OnClick(BtnInfo, func() { calls++ })

	clickButton(v, BtnInfo, input.ButtonPrimary)
	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
	if v.Button(BtnInfo).Pressed {
		t.Error("button still pressed after release")
	}
}

func TestHandlePointer_ReleaseOutsideCancels(t *testing.T) {
	v, _ := newTestView(t)
	calls := 0
	v.OnClick(BtnInfo, func() { calls++ })

	x, y := center(v.Button(BtnInfo).Rect)
	press(v, input.ButtonPrimary, x, y)
	if !v.Button(BtnInfo).Pressed {
		t.Fatal("press did not mark the button pressed")
	}
	moveTo(v, 10, 10)
	release(v, input.ButtonPrimary, 10, 10)
	if calls != 0 {
		t.Errorf("callback ran %d times, want 0", calls)
	}
	if v.Button(BtnInfo).Pressed {
		t.Error("pressed flag survived release")
	}
}

func TestHandlePointer_DisabledButtonIgnored(t *testing.T) {
	v, _ := newTestView(t)
	calls := 0
	v.OnClick(BtnColonize, func() { calls++ })
	v.SetDisabled(BtnColonize, true)

	clickButton(v, BtnColonize, input.ButtonPrimary)
	if calls != 0 || v.Button(BtnColonize).Pressed {
		t.Errorf("disabled button reacted: calls=%d pressed=%v", calls, v.Button(BtnColonize).Pressed)
	}
}

func TestHandlePointer_ToggleFlips(t *testing.T) {
	v, _ := newTestView(t)
	calls := 0
	v.OnClick(BtnRadars, func() { calls++ })

	clickButton(v, BtnRadars, input.ButtonPrimary)
	if !v.Button(BtnRadars).Toggled || calls != 1 {
		t.Fatalf("after first click toggled=%v calls=%d", v.Button(BtnRadars).Toggled, calls)
	}
	clickButton(v, BtnRadars, input.ButtonPrimary)
	if v.Button(BtnRadars).Toggled || calls != 2 {
		t.Errorf("after second click toggled=%v calls=%d", v.Button(BtnRadars).Toggled, calls)
	}
}

func TestHandlePointer_MagnifyDirection(t *testing.T) {
	var notches []int
	v, _ := newTestView(t, WithZoomListener(func(n int, _ float64) { notches = append(notches, n) }))
	last := v.Notch()

	clickButton(v, BtnMagnify, input.ButtonSecondary)
	if v.Notch() != last-1 {
		t.Fatalf("secondary click: notch %d, want %d", v.Notch(), last-1)
	}
	clickButton(v, BtnMagnify, input.ButtonPrimary)
	if v.Notch() != last {
		t.Fatalf("primary click: notch %d, want %d", v.Notch(), last)
	}
	clickButton(v, BtnMagnify, input.ButtonPrimary)
	if v.Notch() != last {
		t.Errorf("zoom in past full size moved to notch %d", v.Notch())
	}
	if len(notches) != 2 {
		t.Errorf("zoom listener saw %v, want two steps", notches)
	}
}

func TestHandlePointer_NameCycles(t *testing.T) {
	v, _ := newTestView(t)
	seen := []NameMode{v.NameMode()}
	for i := 0; i < int(NameModeCount); i++ {
		clickButton(v, BtnName, input.ButtonPrimary)
		seen = append(seen, v.NameMode())
	}
	want := []NameMode{NameNone, NameColony, NameFleets, NameBoth, NameNone}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("name modes = %v, want %v", seen, want)
		}
	}
}

func TestHandlePointer_DragMovesContentExactly(t *testing.T) {
	v, _ := newTestView(t)
	vp := v.Layout().Rect(layout.RegionMap)
	for notch := v.Notch(); notch >= 0; notch-- {
		for v.Notch() > notch {
			v.ZoomOut()
		}
		tr := v.Transform()
		v.SetScroll(tr.H.Max/2, tr.V.Max/2)

		before := v.Transform()
		beforeX, beforeY := before.Affine().Apply(0, 0)
		x, y := center(vp)
		press(v, input.ButtonSecondary, x, y)
		if v.Mode() != input.ModeDraggingMap {
			t.Fatalf("notch %d: mode %v after secondary press in map", notch, v.Mode())
		}
		moveTo(v, x-37, y-23)
		release(v, input.ButtonSecondary, x-37, y-23)
		after := v.Transform()
		afterX, afterY := after.Affine().Apply(0, 0)

		if math.Abs(afterX-beforeX+37) > 1e-9 || math.Abs(afterY-beforeY+23) > 1e-9 {
			t.Errorf("notch %d: content moved (%v, %v), want (-37, -23)",
				notch, afterX-beforeX, afterY-beforeY)
		}
		if v.Mode() != input.ModeIdle {
			t.Errorf("notch %d: mode %v after release", notch, v.Mode())
		}
	}
}

func TestHandlePointer_DragDoesNotClick(t *testing.T) {
	v, _ := newTestView(t)
	calls := 0
	v.OnClick(BtnInfo, func() { calls++ })

	x, y := center(v.Layout().Rect(layout.RegionMap))
	press(v, input.ButtonSecondary, x, y)
	bx, by := center(v.Button(BtnInfo).Rect)
	moveTo(v, bx, by)
	release(v, input.ButtonSecondary, bx, by)
	if calls != 0 {
		t.Errorf("drag release over a button ran its callback %d times", calls)
	}
}

func TestHandlePointer_KnobDrag(t *testing.T) {
	v, _ := newTestView(t)
	h, _ := v.Knobs()
	x, y := center(h)

	press(v, input.ButtonPrimary, x, y)
	if v.Mode() != input.ModeDraggingHKnob {
		t.Fatalf("mode = %v, want dragging-hknob", v.Mode())
	}
	moveTo(v, x+10, y+50)
	if got := v.Transform().H.Value; got != 10 {
		t.Errorf("H.Value = %v, want 10 (raw track delta)", got)
	}
	if got := v.Transform().V.Value; got != 0 {
		t.Errorf("V.Value = %v, want 0", got)
	}
	if nh, _ := v.Knobs(); nh.X != h.X+10 {
		t.Errorf("knob x = %d, want %d", nh.X, h.X+10)
	}
	release(v, input.ButtonPrimary, x+10, y+50)

	_, vk := v.Knobs()
	x, y = center(vk)
	press(v, input.ButtonPrimary, x, y)
	if v.Mode() != input.ModeDraggingVKnob {
		t.Fatalf("mode = %v, want dragging-vknob", v.Mode())
	}
	moveTo(v, x, y+1000)
	if tr := v.Transform(); tr.V.Value != tr.V.Max {
		t.Errorf("V.Value = %v, want clamped to %v", tr.V.Value, tr.V.Max)
	}
	release(v, input.ButtonPrimary, x, y+1000)
}

func TestHandlePointer_WheelModifiers(t *testing.T) {
	v, _ := newTestView(t)
	x, y := center(v.Layout().Rect(layout.RegionMap))
	last := v.Notch()

	wheel(v, x, y, 1, input.ModCtrl)
	if v.Notch() != last-1 {
		t.Fatalf("ctrl+wheel down: notch %d, want %d", v.Notch(), last-1)
	}
	wheel(v, x, y, -1, input.ModCtrl)
	if v.Notch() != last {
		t.Fatalf("ctrl+wheel up: notch %d, want %d", v.Notch(), last)
	}

	tr := v.Transform()
	wheel(v, x, y, 1, input.ModShift)
	if got, want := v.Transform().H.Value, DefaultScrollStep/tr.H.Factor; math.Abs(got-want) > 1e-9 {
		t.Errorf("shift+wheel: H.Value = %v, want %v", got, want)
	}
	wheel(v, x, y, 2, 0)
	if got, want := v.Transform().V.Value, 2*DefaultScrollStep/tr.V.Factor; math.Abs(got-want) > 1e-9 {
		t.Errorf("wheel: V.Value = %v, want %v", got, want)
	}

	before := v.Transform()
	mx, my := center(v.Layout().Rect(layout.RegionMinimap))
	wheel(v, mx, my, 3, 0)
	if v.Transform() != before {
		t.Error("wheel outside the map changed the view")
	}
}

func TestHandlePointer_FractionalWheelZoomsPerNotch(t *testing.T) {
	v, _ := newTestView(t)
	x, y := center(v.Layout().Rect(layout.RegionMap))
	last := v.Notch()

	for i := 0; i < 3; i++ {
		wheel(v, x, y, 0.25, input.ModCtrl)
	}
	if v.Notch() != last {
		t.Fatalf("0.75 notch of travel changed the notch to %d, want %d", v.Notch(), last)
	}
	wheel(v, x, y, 0.25, input.ModCtrl)
	if v.Notch() != last-1 {
		t.Fatalf("a full notch of travel: notch %d, want %d", v.Notch(), last-1)
	}

	wheel(v, x, y, -0.6, input.ModCtrl)
	if v.Notch() != last-1 {
		t.Errorf("partial reverse notch changed the notch to %d", v.Notch())
	}
	wheel(v, x, y, -0.6, input.ModCtrl)
	if v.Notch() != last {
		t.Errorf("after a full reverse notch: notch %d, want %d", v.Notch(), last)
	}
}

func TestHandlePointer_MinimapCenters(t *testing.T) {
	v, _ := newTestView(t)
	mm := v.Layout().Rect(layout.RegionMinimap)
	press(v, input.ButtonPrimary, mm.X+8, mm.Y+7)
	release(v, input.ButtonPrimary, mm.X+8, mm.Y+7)

	if tr := v.Transform(); tr.H.Value != 0 || tr.V.Value != 0 {
		t.Errorf("centering near the origin should clamp to 0, got (%v, %v)", tr.H.Value, tr.V.Value)
	}

	press(v, input.ButtonPrimary, mm.X+65, mm.Y+10)
	release(v, input.ButtonPrimary, mm.X+65, mm.Y+10)
	tr := v.Transform()
	cx, _ := tr.ContentAt(center(v.Layout().Rect(layout.RegionMap)))
	if want := 65 * 2000 / float64(mm.W); math.Abs(cx-want) > 1e-6 {
		t.Errorf("viewport center x = %v, want %v", cx, want)
	}
}

func TestSetShipControls_SwapsPanels(t *testing.T) {
	v, _ := newTestView(t)
	if v.Shown(BtnMove) || !v.Shown(BtnSatellite) {
		t.Fatal("default panel should show satellites, not ship commands")
	}
	v.SetShipControls(true)
	if !v.Shown(BtnMove) || !v.Shown(BtnAttack) || !v.Shown(BtnStop) {
		t.Error("ship commands hidden with ship controls on")
	}
	if v.Shown(BtnSatellite) {
		t.Error("satellites shown with ship controls on")
	}
	v.SetShipControls(false)
	v.SetSatellites(false)
	if v.Shown(BtnSatellite) || v.Shown(BtnMove) {
		t.Error("panel should be empty with both off")
	}
}

func TestButtonID_ShipCommandFollowsShipControls(t *testing.T) {
	v, _ := newTestView(t)
	v.SetShipControls(true)
	for id := ButtonID(0); id < ButtonCount; id++ {
		if id.ShipCommand() && !v.Button(id).Visible {
			t.Errorf("%v should be visible with ship controls on", id)
		}
	}
	v.SetShipControls(false)
	for id := ButtonID(0); id < ButtonCount; id++ {
		if id.ShipCommand() && v.Button(id).Visible {
			t.Errorf("%v should be hidden with ship controls off", id)
		}
	}
	if BtnSatellite.ShipCommand() || !BtnAttack.ShipCommand() {
		t.Error("only move, attack and stop are ship commands")
	}
}

func TestSetVisible_SatellitesRestack(t *testing.T) {
	v, _ := newTestView(t)
	first := v.Button(BtnSatellite).Rect
	v.SetVisible(BtnSatellite, false)
	if got := v.Button(BtnSpySat1).Rect; got != first {
		t.Errorf("spy satellite rect = %v, want the freed slot %v", got, first)
	}
	if !v.Button(BtnSatellite).Rect.Empty() {
		t.Error("hidden satellite kept a rectangle")
	}
}

func TestHandleIntent_ScrollAndToggle(t *testing.T) {
	v, _ := newTestView(t)
	if !v.HandleIntent(input.Intent{Action: input.ActionScrollDown}) {
		t.Fatal("scroll down not consumed")
	}
	tr := v.Transform()
	if want := DefaultScrollStep / tr.V.Factor; math.Abs(tr.V.Value-want) > 1e-9 {
		t.Errorf("V.Value = %v, want %v", tr.V.Value, want)
	}
	v.HandleIntent(input.Intent{Action: input.ActionScrollHome})
	if tr := v.Transform(); tr.H.Value != 0 || tr.V.Value != 0 {
		t.Errorf("home left scroll at (%v, %v)", tr.H.Value, tr.V.Value)
	}

	v.HandleIntent(input.Intent{Action: input.ActionToggleGrids})
	if !v.Button(BtnGrids).Toggled {
		t.Error("toggle grids intent did not toggle")
	}
	v.HandleIntent(input.Intent{Action: input.ActionZoomOut})
	v.HandleIntent(input.Intent{Action: input.ActionZoomReset})
	if v.Transform().Zoom != 1 {
		t.Errorf("zoom after reset = %v", v.Transform().Zoom)
	}
	if v.HandleIntent(input.Intent{Action: input.ActionQuit}) {
		t.Error("quit should be left to the host")
	}
}

func TestStatusLine_ShowsZoomAndPosition(t *testing.T) {
	v, _ := newTestView(t)
	v.ZoomOut()
	moveTo(v, 10, 30)
	if got := v.StatusLine(); got != "Zoom: 80%  Position: 12, 12" {
		t.Errorf("status = %q", got)
	}
	moveTo(v, 600, 5)
	if got := v.StatusLine(); got != "Zoom: 80%" {
		t.Errorf("status off map = %q", got)
	}
}
