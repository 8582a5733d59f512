package alder

// EventSource feeds raw pointer inputs into a Scene and forwards pointer
// capture to the platform when it supports it.
//
// A polling source (like [EbitenSource]) delivers events from Poll, which the
// scene calls once per Update. A push-style source may call [Scene.Dispatch]
// directly and leave Poll a no-op.
type EventSource interface {
	// Connect binds the source to a scene so it can dispatch into it.
	Connect(s *Scene)
	// Disconnect unbinds the source. The source must stop dispatching.
	Disconnect()
	// Poll reads pending platform input and dispatches it.
	Poll()

	// SetPointerCapture forwards a capture to the platform. Sources with no
	// native capture return ErrCaptureUnsupported; logical capture on the
	// scene works regardless.
	SetPointerCapture(pointerID int) error
	// ReleasePointerCapture releases a previously forwarded capture.
	ReleasePointerCapture(pointerID int) error
}
