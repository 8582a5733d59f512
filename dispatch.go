package alder

import "math"

// clickMissThreshold is the maximum press-to-release distance, in pixels, at
// which a click-family event with no intersections still counts as a
// deliberate "missed" click rather than the tail of a drag.
const clickMissThreshold = 2.0

// PointerInput is a raw input event fed to [Scene.Dispatch]. The fields are a
// fixed allow-list of what the synthetic event carries from the platform
// event; sources populate only what applies to the event kind.
type PointerInput struct {
	Type        EventType
	PointerID   int
	PointerType PointerType
	Button      MouseButton
	Modifiers   KeyModifiers

	// OffsetX, OffsetY are surface-relative coordinates in pixels.
	OffsetX, OffsetY float64

	// WheelDeltaX, WheelDeltaY are scroll deltas, valid for EventWheel.
	WheelDeltaX, WheelDeltaY float64
}

// PointerEvent is the synthetic event delivered to object handlers. One event
// value is synthesized per target in the bubble chain; the stop-propagation
// flag is shared by the whole chain of a single dispatch.
type PointerEvent struct {
	Type EventType

	// Intersection carries the hit this dispatch resolved to, with
	// EventObject substituted for the current bubble target.
	Intersection

	// Intersections is the full deduplicated hit list for this dispatch.
	Intersections []Intersection

	// Ray is the picking ray the hits were computed with.
	Ray Ray
	// Camera is the camera that unprojected the pointer position.
	Camera *Camera
	// UnprojectedPoint is the pointer position unprojected onto the camera's
	// near plane in world space.
	UnprojectedPoint Vec3

	// Raw input fields.
	PointerID   int
	PointerType PointerType
	Button      MouseButton
	Modifiers   KeyModifiers

	// OffsetX, OffsetY are surface-relative pixel coordinates.
	OffsetX, OffsetY float64
	// SpaceX, SpaceY are normalized device coordinates in [-1, 1], Y up.
	SpaceX, SpaceY float64
	// WheelDeltaX, WheelDeltaY are scroll deltas, valid for wheel events.
	WheelDeltaX, WheelDeltaY float64

	// Delta is the press-to-release screen distance in pixels, valid for
	// click-family events.
	Delta float64

	// Phase is PhaseAtTarget on the hit object, PhaseBubbling on ancestors.
	Phase EventPhase
	// Target is the object the dispatch started at.
	Target *Object
	// CurrentTarget is the object whose handler is being invoked.
	CurrentTarget *Object

	scene   *Scene
	stopped *bool
}

// StopPropagation prevents delivery to the remaining ancestors in this
// dispatch. Handlers already queued for the current target still run, and
// future dispatches are unaffected.
func (e *PointerEvent) StopPropagation() {
	*e.stopped = true
}

// PropagationStopped reports whether StopPropagation has been called during
// this dispatch.
func (e *PointerEvent) PropagationStopped() bool {
	return *e.stopped
}

// SetPointerCapture captures the given pointer to the current target: until
// released, that pointer's dispatches start at the captured object even when
// the live raycast misses it. Replaces any previous capture for the pointer.
func (e *PointerEvent) SetPointerCapture(pointerID int) {
	e.scene.setPointerCapture(pointerID, e.Intersection, e.CurrentTarget)
}

// ReleasePointerCapture releases the given pointer's capture if the current
// target holds it. No-op otherwise.
func (e *PointerEvent) ReleasePointerCapture(pointerID int) {
	e.scene.releasePointerCapture(pointerID, e.CurrentTarget)
}

// HasPointerCapture reports whether the current target holds the given
// pointer's capture.
func (e *PointerEvent) HasPointerCapture(pointerID int) bool {
	return e.scene.hasPointerCapture(pointerID, e.CurrentTarget)
}

// --- Dispatch entry point ---

// Dispatch processes one raw input event start to finish: unproject, raycast,
// normalize, update hover/capture bookkeeping, and deliver synthetic events
// up the bubble chain. Exactly one input is processed per call; handlers run
// synchronously and may mutate capture/hover state, which affects subsequent
// dispatches but never the chain already in flight.
func (s *Scene) Dispatch(in PointerInput) {
	switch in.Type {
	case EventPointerDown:
		s.handleDown(in)
	case EventPointerUp:
		s.handleUp(in)
	case EventPointerMove:
		s.handleMove(in)
	case EventPointerCancel, EventPointerLeave:
		s.handleCancel(in)
	case EventClick, EventDoubleClick, EventContextMenu:
		s.handleClickFamily(in)
	case EventWheel:
		s.handleWheel(in)
	case EventLostCapture:
		s.handleLostCapture(in)
	}
}

// frame is the per-dispatch snapshot: resolved offsets, picking ray, and the
// normalized hit list (post filter, post capture injection, post dedup).
type frame struct {
	hits           []Intersection
	ray            Ray
	x, y           float64
	spaceX, spaceY float64
}

// resolve converts a raw input into a frame. With raycast=false only the
// coordinates and ray are computed (used by cancel-family handling, which
// works from an empty hit list by contract).
func (s *Scene) resolve(in PointerInput, raycast bool) frame {
	var f frame
	f.x, f.y = in.OffsetX, in.OffsetY
	if s.computeOffsets != nil {
		f.x, f.y = s.computeOffsets(in, s)
	}
	if s.width > 0 {
		f.spaceX = (f.x/s.width)*2 - 1
	}
	if s.height > 0 {
		f.spaceY = -((f.y / s.height) * 2) + 1
	}
	f.ray = s.camera.ScreenRay(f.x, f.y, s.width, s.height)

	if raycast && s.raycastEnabled {
		s.candBuf = s.reg.candidates(s.candBuf[:0])
		hits := s.raycaster.Raycast(f.ray, s.candBuf, s.recursive)
		if s.filter != nil {
			hits = s.filter(hits, s)
		}
		f.hits = hits
	}

	// A live capture always heads the pointer's hit list, even when the
	// raycast missed the captured object entirely.
	if entry, ok := s.reg.captured[in.PointerID]; ok {
		f.hits = append([]Intersection{entry.intersection}, f.hits...)
	}
	f.hits = dedupeHits(f.hits)
	return f
}

// deliver walks the bubble chain from the top hit's event object through its
// ancestors, synthesizing an event per target and handing it to visit.
// Targets with no handlers are skipped silently but still advance the walk.
// The walk stops when the shared stopped flag is set, the chain ends, or the
// depth guard trips on a cyclic graph.
func (s *Scene) deliver(in PointerInput, f frame, delta float64, visit func(*PointerEvent)) {
	if len(f.hits) == 0 {
		return
	}
	stopped := false
	origin := f.hits[0].EventObject
	target := origin
	phase := PhaseAtTarget
	visited := 0
	for depth := 0; target != nil && depth < maxTreeDepth; depth++ {
		if target.handlerCount() > 0 {
			ev := s.newEvent(in, f, target, delta)
			ev.Phase = phase
			ev.Target = origin
			ev.stopped = &stopped
			visit(ev)
			visited++
			if stopped {
				break
			}
		}
		target = target.Parent
		phase = PhaseBubbling
	}
	if s.debug {
		s.debugDispatch(in, len(f.hits), visited)
	}
}

// newEvent synthesizes the event for one bubble target.
func (s *Scene) newEvent(in PointerInput, f frame, target *Object, delta float64) *PointerEvent {
	hit := f.hits[0]
	hit.EventObject = target
	return &PointerEvent{
		Type:             in.Type,
		Intersection:     hit,
		Intersections:    f.hits,
		Ray:              f.ray,
		Camera:           s.camera,
		UnprojectedPoint: s.camera.Unproject(f.x, f.y, s.width, s.height),
		PointerID:        in.PointerID,
		PointerType:      in.PointerType,
		Button:           in.Button,
		Modifiers:        in.Modifiers,
		OffsetX:          f.x,
		OffsetY:          f.y,
		SpaceX:           f.spaceX,
		SpaceY:           f.spaceY,
		WheelDeltaX:      in.WheelDeltaX,
		WheelDeltaY:      in.WheelDeltaY,
		Delta:            delta,
		CurrentTarget:    target,
		scene:            s,
	}
}

// invoke calls the current target's handler for ev.Type, if any.
func (s *Scene) invoke(ev *PointerEvent) {
	if fn := ev.CurrentTarget.handlerFor(ev.Type); fn != nil {
		fn(ev)
	}
}

// --- Per-kind handling ---

func (s *Scene) handleDown(in PointerInput) {
	f := s.resolve(in, true)
	pid := in.PointerID

	// Record the press gesture: position and initial hit, consumed by
	// click-family resolution until the next press.
	s.reg.pressPos[pid] = Vec2{X: f.x, Y: f.y}
	if len(f.hits) > 0 {
		s.reg.initialHit[pid] = f.hits[0].EventObject
	} else {
		delete(s.reg.initialHit, pid)
	}

	s.deliver(in, f, 0, s.invoke)
	s.emitInteraction(in, f)
}

func (s *Scene) handleUp(in PointerInput) {
	f := s.resolve(in, true)
	s.deliver(in, f, 0, s.invoke)
	s.emitInteraction(in, f)
}

func (s *Scene) handleMove(in PointerInput) {
	f := s.resolve(in, true)
	pid := in.PointerID

	// Leave the previous object before entering the new one.
	if prev, ok := s.reg.hovered[pid]; ok {
		if len(f.hits) == 0 || !sameHit(prev, f.hits[0]) {
			s.deliverLeave(in, f, prev)
			delete(s.reg.hovered, pid)
		}
	}
	if len(f.hits) == 0 {
		return
	}

	s.deliver(in, f, 0, func(ev *PointerEvent) {
		if ev.Phase == PhaseAtTarget {
			if cur, ok := s.reg.hovered[pid]; !ok || !sameHit(cur, ev.Intersection) {
				ev.Type = EventPointerOver
				s.invoke(ev)
				ev.Type = EventPointerEnter
				s.invoke(ev)
				s.reg.hovered[pid] = ev.Intersection
			}
		}
		ev.Type = EventPointerMove
		s.invoke(ev)
	})

	// Refresh the entry with this move's data. This also covers a top hit
	// with no handlers, which is never visited: tracking it anyway lets the
	// next differing move pair a leave with the enter-less hover.
	s.reg.hovered[pid] = f.hits[0]
	s.emitInteraction(in, f)
}

// handleCancel performs the leave transition with an empty hit list: the
// pointer left the surface or was cancelled, so nothing is entered and no
// move dispatch follows.
func (s *Scene) handleCancel(in PointerInput) {
	pid := in.PointerID
	prev, ok := s.reg.hovered[pid]
	if !ok {
		return
	}
	f := s.resolve(in, false)
	f.hits = nil
	s.deliverLeave(in, f, prev)
	delete(s.reg.hovered, pid)
}

func (s *Scene) handleClickFamily(in PointerInput) {
	f := s.resolve(in, true)
	pid := in.PointerID

	var delta float64
	press, pressed := s.reg.pressPos[pid]
	if pressed {
		delta = math.Hypot(f.x-press.X, f.y-press.Y)
	}

	if len(f.hits) == 0 {
		// A gesture that began on an object and released over nothing always
		// misses. One that began on nothing only counts as a deliberate miss
		// when the pointer barely moved, so drag tails stay silent.
		if initial, had := s.reg.initialHit[pid]; had {
			s.pointerMissed(in, initial)
		} else if pressed && delta <= clickMissThreshold {
			s.pointerMissed(in, nil)
		}
		return
	}

	// Release over a different object than the press cancels the click:
	// objects outside the initial hit's ancestor chain are notified instead.
	initial := s.reg.initialHit[pid]
	if f.hits[0].EventObject != initial {
		s.pointerMissed(in, initial)
		return
	}

	s.deliver(in, f, delta, s.invoke)
	s.emitInteraction(in, f)
}

func (s *Scene) handleWheel(in PointerInput) {
	f := s.resolve(in, true)
	s.deliver(in, f, 0, s.invoke)
	s.emitInteraction(in, f)
}

// handleLostCapture reacts to the input source losing native capture: the
// logical capture entry is dropped (without notifying the source back), the
// captured object's chain is told, and the pointer's hover ends.
func (s *Scene) handleLostCapture(in PointerInput) {
	pid := in.PointerID
	entry, ok := s.reg.captured[pid]
	if !ok {
		return
	}
	delete(s.reg.captured, pid)

	f := s.resolve(in, false)
	f.hits = []Intersection{entry.intersection}
	s.deliver(in, f, 0, s.invoke)

	if prev, hov := s.reg.hovered[pid]; hov {
		f.hits = nil
		s.deliverLeave(in, f, prev)
		delete(s.reg.hovered, pid)
	}
}

// deliverLeave emits pointerout then pointerleave up the previously hovered
// object's chain. Only targets defining either handler receive the call.
func (s *Scene) deliverLeave(in PointerInput, f frame, prev Intersection) {
	f.hits = []Intersection{prev}
	stopped := false
	origin := prev.EventObject
	target := origin
	phase := PhaseAtTarget
	for depth := 0; target != nil && depth < maxTreeDepth; depth++ {
		if target.OnPointerOut != nil || target.OnPointerLeave != nil {
			ev := s.newEvent(in, f, target, 0)
			ev.Phase = phase
			ev.Target = origin
			ev.stopped = &stopped
			ev.Type = EventPointerOut
			s.invoke(ev)
			ev.Type = EventPointerLeave
			s.invoke(ev)
			if stopped {
				return
			}
		}
		target = target.Parent
		phase = PhaseBubbling
	}
}

// pointerMissed notifies the scene-level hook and every registered object
// defining a miss handler that is not initial or one of its ancestors.
func (s *Scene) pointerMissed(in PointerInput, initial *Object) {
	if s.onPointerMissed != nil {
		s.onPointerMissed(in)
	}
	for _, o := range s.reg.interaction {
		if o.OnPointerMissed == nil {
			continue
		}
		if initial != nil && isAncestor(o, initial) {
			continue
		}
		o.OnPointerMissed(in)
	}
}
