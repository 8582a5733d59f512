package alder

import "testing"

// --- Construction ---

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene(640, 480)
	if s.Root() == nil || s.Root().Name != "root" {
		t.Error("scene should have a root group")
	}
	if s.Camera() == nil {
		t.Error("scene should have a default camera")
	}
	w, h := s.Size()
	if w != 640 || h != 480 {
		t.Errorf("Size = (%v, %v), want (640, 480)", w, h)
	}
	if !s.raycastEnabled {
		t.Error("raycasting should default to enabled")
	}
}

func TestSetCamera(t *testing.T) {
	s := NewScene(100, 100)
	cam := NewCamera()
	s.SetCamera(cam)
	if s.Camera() != cam {
		t.Error("camera not replaced")
	}
	s.SetCamera(nil)
	if s.Camera() != cam {
		t.Error("SetCamera(nil) should be ignored")
	}
}

func TestSetRaycasterNilRestoresDefault(t *testing.T) {
	s := NewScene(100, 100)
	s.SetRaycaster(nil)
	if _, ok := s.raycaster.(VolumeRaycaster); !ok {
		t.Errorf("raycaster = %T, want VolumeRaycaster", s.raycaster)
	}
}

// --- Scene independence ---

func TestScenesAreIndependent(t *testing.T) {
	s1 := NewScene(100, 100)
	s2 := NewScene(100, 100)

	ball1 := addSphere(s1, "ball1", Vec3{}, 1)
	ball1.OnPointerMove = func(*PointerEvent) {}
	ball2 := addSphere(s2, "ball2", Vec3{}, 1)
	ball2.OnPointerDown = func(ev *PointerEvent) { ev.SetPointerCapture(0) }

	s1.Dispatch(input(EventPointerMove, 50, 50))
	s2.Dispatch(input(EventPointerDown, 50, 50))

	if s1.HoverTarget(0) != ball1 {
		t.Error("s1 should hover ball1")
	}
	if s1.CaptureTarget(0) != nil {
		t.Error("s2's capture must not leak into s1")
	}
	if s2.CaptureTarget(0) != ball2 {
		t.Error("s2 should capture ball2")
	}
	if s2.HoverTarget(0) != ball2 {
		t.Error("capturing sets the capturing pointer's hover")
	}
}

// --- Source binding ---

func TestConnectDisconnect(t *testing.T) {
	s := NewScene(100, 100)
	src := &stubSource{supported: true}

	s.Connect(src)
	if src.scene != s {
		t.Error("Connect should hand the scene to the source")
	}

	// Connecting a replacement disconnects the old source.
	src2 := &stubSource{supported: true}
	s.Connect(src2)
	if src.scene != nil {
		t.Error("old source should be disconnected")
	}
	if src2.scene != s {
		t.Error("new source should be connected")
	}

	s.Disconnect()
	if src2.scene != nil {
		t.Error("Disconnect should detach the source")
	}
	s.Disconnect() // no-op without a source
}

func TestUpdatePollsSource(t *testing.T) {
	s := NewScene(100, 100)
	src := &stubSource{supported: true}
	s.Connect(src)

	if err := s.Update(1.0 / 60); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if src.polls != 1 {
		t.Errorf("polls = %d, want 1", src.polls)
	}
}

func TestUpdateSkipsPollWhileInjecting(t *testing.T) {
	s := NewScene(100, 100)
	src := &stubSource{supported: true}
	s.Connect(src)

	s.InjectMove(50, 50)
	_ = s.Update(1.0 / 60)
	if src.polls != 0 {
		t.Error("injected input should preempt real input for the frame")
	}
	_ = s.Update(1.0 / 60)
	if src.polls != 1 {
		t.Error("polling should resume once the queue drains")
	}
}

func TestUpdateFunc(t *testing.T) {
	s := NewScene(100, 100)
	ran := false
	s.SetUpdateFunc(func() error { ran = true; return nil })
	if err := s.Update(1.0 / 60); err != nil || !ran {
		t.Errorf("update func: ran=%v err=%v", ran, err)
	}
}

// --- Sink bridge ---

type recordingSink struct {
	events []InteractionEvent
}

func (r *recordingSink) EmitEvent(ev InteractionEvent) {
	r.events = append(r.events, ev)
}

func TestSinkReceivesInteractionSummaries(t *testing.T) {
	s := newTestScene()
	ball := addSphere(s, "ball", Vec3{}, 1)
	ball.OnPointerDown = func(*PointerEvent) {}

	sink := &recordingSink{}
	s.SetEventSink(sink)

	s.Dispatch(input(EventPointerDown, 50, 50))
	if len(sink.events) != 1 {
		t.Fatalf("sink events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Type != EventPointerDown {
		t.Errorf("Type = %v, want pointerdown", ev.Type)
	}
	if ev.ObjectID != ball.ID {
		t.Errorf("ObjectID = %d, want %d", ev.ObjectID, ball.ID)
	}
	if ev.OffsetX != 50 || ev.OffsetY != 50 {
		t.Errorf("Offset = (%v, %v), want (50, 50)", ev.OffsetX, ev.OffsetY)
	}
	if ev.FaceIndex != NoIndex || ev.InstanceID != NoIndex {
		t.Errorf("indices = (%d, %d), want sentinels", ev.FaceIndex, ev.InstanceID)
	}
}

func TestSinkSilentOnMiss(t *testing.T) {
	s := newTestScene()
	ball := addSphere(s, "ball", Vec3{}, 1)
	ball.OnPointerDown = func(*PointerEvent) {}

	sink := &recordingSink{}
	s.SetEventSink(sink)

	s.Dispatch(input(EventPointerDown, 5, 5))
	if len(sink.events) != 0 {
		t.Errorf("sink events = %d, want 0 on a miss", len(sink.events))
	}
}

// --- Teardown ---

func TestSceneDispose(t *testing.T) {
	s := newTestScene()
	src := &stubSource{supported: true}
	s.Connect(src)

	ball := addSphere(s, "ball", Vec3{}, 1)
	ball.OnPointerDown = func(ev *PointerEvent) { ev.SetPointerCapture(0) }
	s.Dispatch(input(EventPointerDown, 50, 50))
	s.InjectMove(10, 10)

	s.Dispose()
	if src.scene != nil {
		t.Error("Dispose should disconnect the source")
	}
	if s.CaptureTarget(0) != nil || s.HoverTarget(0) != nil {
		t.Error("Dispose should drop interaction state")
	}
	if len(s.injectQueue) != 0 {
		t.Error("Dispose should drop queued input")
	}
	if ball.IsDisposed() {
		t.Error("the object tree belongs to the caller")
	}
}
