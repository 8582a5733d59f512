package alder

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	doubleClickWindow = 300 * time.Millisecond
	doubleClickRadius = 4.0 // pixels
)

// EbitenSource is an EventSource backed by Ebitengine's polled input state.
// It turns cursor, button, wheel, and touch state transitions into the
// discrete pointer inputs the dispatcher consumes: move, down, up, leave,
// click, double-click, context-menu, wheel, and lost-capture.
//
// Ebitengine has no OS-level pointer capture, so SetPointerCapture and
// ReleasePointerCapture return ErrCaptureUnsupported; logical capture on the
// scene is unaffected.
type EbitenSource struct {
	scene *Scene

	// Mouse state
	prevX, prevY float64
	hasPrev      bool
	prevButtons  [3]bool
	inside       bool

	// Click synthesis
	lastClickAt time.Time
	lastClickX  float64
	lastClickY  float64

	// Touch state (slots 1-9)
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchDown    [maxPointers]bool
	touchX       [maxPointers]float64
	touchY       [maxPointers]float64
	prevTouchIDs []ebiten.TouchID
}

// NewEbitenSource creates an unconnected source.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Connect implements [EventSource].
func (src *EbitenSource) Connect(s *Scene) {
	src.scene = s
}

// Disconnect implements [EventSource].
func (src *EbitenSource) Disconnect() {
	src.scene = nil
}

// SetPointerCapture implements [EventSource]. Always unsupported on Ebitengine.
func (src *EbitenSource) SetPointerCapture(pointerID int) error {
	return ErrCaptureUnsupported
}

// ReleasePointerCapture implements [EventSource]. Always unsupported on Ebitengine.
func (src *EbitenSource) ReleasePointerCapture(pointerID int) error {
	return ErrCaptureUnsupported
}

// Poll reads the current Ebitengine input state and dispatches the deltas
// since the previous call. Called once per frame from Scene.Update.
func (src *EbitenSource) Poll() {
	if src.scene == nil {
		return
	}
	mods := readModifiers()
	src.pollMouse(mods)
	src.pollTouches(mods)
}

// pollMouse handles the mouse (pointer 0).
func (src *EbitenSource) pollMouse(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	w, h := src.scene.Size()

	base := PointerInput{
		PointerID:   0,
		PointerType: PointerMouse,
		Modifiers:   mods,
		OffsetX:     x,
		OffsetY:     y,
	}

	inside := x >= 0 && y >= 0 && x <= w && y <= h
	if !inside && src.inside {
		in := base
		in.Type = EventPointerLeave
		src.scene.Dispatch(in)
	}
	src.inside = inside

	if inside && (!src.hasPrev || x != src.prevX || y != src.prevY) {
		in := base
		in.Type = EventPointerMove
		src.scene.Dispatch(in)
	}
	src.prevX, src.prevY, src.hasPrev = x, y, true

	var anyHeld, anyReleased bool
	for i, btn := range [3]ebiten.MouseButton{
		ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle,
	} {
		pressed := ebiten.IsMouseButtonPressed(btn)
		was := src.prevButtons[i]
		src.prevButtons[i] = pressed
		if pressed {
			anyHeld = true
		}

		in := base
		in.Button = MouseButton(i)
		switch {
		case pressed && !was:
			in.Type = EventPointerDown
			src.scene.Dispatch(in)
		case !pressed && was:
			anyReleased = true
			in.Type = EventPointerUp
			src.scene.Dispatch(in)
			src.synthesizeClick(in)
		}
	}

	// Native semantics: capture is implicitly lost once the press gesture ends.
	if anyReleased && !anyHeld && src.scene.CaptureTarget(0) != nil {
		in := base
		in.Type = EventLostCapture
		src.scene.Dispatch(in)
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		in := base
		in.Type = EventWheel
		in.WheelDeltaX = wx
		in.WheelDeltaY = wy
		src.scene.Dispatch(in)
	}
}

// synthesizeClick turns a button release into the matching click-family
// input: click or double-click for the primary button, context-menu for the
// secondary button.
func (src *EbitenSource) synthesizeClick(up PointerInput) {
	in := up
	switch up.Button {
	case MouseButtonLeft:
		now := time.Now()
		dist := math.Hypot(up.OffsetX-src.lastClickX, up.OffsetY-src.lastClickY)
		if !src.lastClickAt.IsZero() && now.Sub(src.lastClickAt) <= doubleClickWindow && dist <= doubleClickRadius {
			in.Type = EventDoubleClick
			src.lastClickAt = time.Time{}
		} else {
			in.Type = EventClick
			src.lastClickAt = now
			src.lastClickX, src.lastClickY = up.OffsetX, up.OffsetY
		}
		src.scene.Dispatch(in)
	case MouseButtonRight:
		in.Type = EventContextMenu
		src.scene.Dispatch(in)
	}
}

// pollTouches handles touch input (pointers 1-9).
func (src *EbitenSource) pollTouches(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(src.prevTouchIDs[:0])
	src.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := src.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		x, y := float64(tx), float64(ty)

		in := PointerInput{
			PointerID:   slot,
			PointerType: PointerTouch,
			Button:      MouseButtonLeft,
			Modifiers:   mods,
			OffsetX:     x,
			OffsetY:     y,
		}
		if !src.touchDown[slot] {
			src.touchDown[slot] = true
			in.Type = EventPointerDown
			src.scene.Dispatch(in)
		} else if x != src.touchX[slot] || y != src.touchY[slot] {
			in.Type = EventPointerMove
			src.scene.Dispatch(in)
		}
		src.touchX[slot], src.touchY[slot] = x, y
	}

	// Release slots whose touch disappeared this frame. A completed touch is
	// an up followed by a tap click.
	for i := 1; i < maxPointers; i++ {
		if !src.touchUsed[i] || active[i] {
			continue
		}
		in := PointerInput{
			PointerID:   i,
			PointerType: PointerTouch,
			Button:      MouseButtonLeft,
			Modifiers:   mods,
			OffsetX:     src.touchX[i],
			OffsetY:     src.touchY[i],
		}
		if src.touchDown[i] {
			in.Type = EventPointerUp
			src.scene.Dispatch(in)
			in.Type = EventClick
			src.scene.Dispatch(in)
			if src.scene.CaptureTarget(i) != nil {
				in.Type = EventLostCapture
				src.scene.Dispatch(in)
			}
		}
		src.touchUsed[i] = false
		src.touchDown[i] = false
		src.touchMap[i] = 0
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (src *EbitenSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if src.touchUsed[i] && src.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !src.touchUsed[i] {
			src.touchUsed[i] = true
			src.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
