package alder

// Synthetic input. Injected events use the same screen coordinates an event
// source would report and flow through Dispatch identically, so scripted
// interactions (tests, replays, automation) are indistinguishable from real
// pointer input. Queued events are consumed one per Update call, before the
// connected source polls.

// InjectPress queues a primary-button press at the given screen coordinates.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerInput{
		Type:        EventPointerDown,
		PointerType: PointerMouse,
		Button:      MouseButtonLeft,
		OffsetX:     x, OffsetY: y,
	})
}

// InjectMove queues a pointer move to the given screen coordinates.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerInput{
		Type:        EventPointerMove,
		PointerType: PointerMouse,
		OffsetX:     x, OffsetY: y,
	})
}

// InjectRelease queues a primary-button release at the given screen
// coordinates, followed by the click it resolves to.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerInput{
		Type:        EventPointerUp,
		PointerType: PointerMouse,
		Button:      MouseButtonLeft,
		OffsetX:     x, OffsetY: y,
	})
	s.injectQueue = append(s.injectQueue, PointerInput{
		Type:        EventClick,
		PointerType: PointerMouse,
		Button:      MouseButtonLeft,
		OffsetX:     x, OffsetY: y,
	})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same screen coordinates. Consumes three frames (down, up, click).
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectWheel queues a scroll wheel event at the given screen coordinates.
func (s *Scene) InjectWheel(x, y, deltaX, deltaY float64) {
	s.injectQueue = append(s.injectQueue, PointerInput{
		Type:        EventWheel,
		PointerType: PointerMouse,
		OffsetX:     x, OffsetY: y,
		WheelDeltaX: deltaX, WheelDeltaY: deltaY,
	})
}

// InjectCancel queues a pointer cancellation, clearing hover and press state
// for the primary pointer.
func (s *Scene) InjectCancel() {
	s.injectQueue = append(s.injectQueue, PointerInput{
		Type:        EventPointerCancel,
		PointerType: PointerMouse,
	})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-3 intermediate frames, and a release at
// (toX, toY). Minimum frames is 3 (press, up, click).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 3
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Inject queues an arbitrary pointer input. Use this for multi-pointer or
// touch sequences the convenience helpers do not cover.
func (s *Scene) Inject(in PointerInput) {
	s.injectQueue = append(s.injectQueue, in)
}

// drainInjected pops one queued event and dispatches it. Returns true if an
// event was consumed.
func (s *Scene) drainInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	in := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.Dispatch(in)
	return true
}
