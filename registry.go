package alder

import "errors"

// ErrCaptureUnsupported is returned by event sources whose platform has no
// native pointer capture. Logical capture bookkeeping still applies; only
// OS-level capture forwarding is unavailable.
var ErrCaptureUnsupported = errors.New("alder: native pointer capture not supported by event source")

// captureEntry records a pointer capture: the intersection at capture time
// and the object that requested it.
type captureEntry struct {
	intersection Intersection
	target       *Object
}

// registry is the per-scene mutable interaction state: which objects are
// interactive, which pointers hover which object, which pointers captured
// which object, and the press gesture markers. All access is single-threaded.
type registry struct {
	interaction []*Object
	hovered     map[int]Intersection
	captured    map[int]captureEntry
	pressPos    map[int]Vec2
	initialHit  map[int]*Object
}

func newRegistry() *registry {
	return &registry{
		hovered:    make(map[int]Intersection),
		captured:   make(map[int]captureEntry),
		pressPos:   make(map[int]Vec2),
		initialHit: make(map[int]*Object),
	}
}

// register appends o to the interaction set. Registering twice is a no-op.
func (r *registry) register(o *Object) {
	for _, existing := range r.interaction {
		if existing == o {
			return
		}
	}
	r.interaction = append(r.interaction, o)
}

// unregister removes o from the interaction set.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (r *registry) unregister(o *Object) {
	for i, existing := range r.interaction {
		if existing == o {
			copy(r.interaction[i:], r.interaction[i+1:])
			r.interaction[len(r.interaction)-1] = nil
			r.interaction = r.interaction[:len(r.interaction)-1]
			return
		}
	}
}

// candidates appends the registered objects that define at least one
// dispatched handler to buf and returns it.
func (r *registry) candidates(buf []*Object) []*Object {
	for _, o := range r.interaction {
		if o.hasPointerHandler() {
			buf = append(buf, o)
		}
	}
	return buf
}

// --- Scene registration API ---

// Register adds an object to the scene's interaction set so raycasts can
// reach it. Call it when the object gains its first handler.
func (s *Scene) Register(o *Object) {
	if o == nil {
		return
	}
	s.reg.register(o)
}

// Unregister removes an object from the interaction set and synchronously
// purges every hover and capture entry referencing it. Native capture is
// released once per pointer that had captured the object. Call it when the
// external graph unmounts the object.
func (s *Scene) Unregister(o *Object) {
	if o == nil {
		return
	}
	s.reg.unregister(o)
	s.purgeObject(o)
}

// purgeObject removes all registry bookkeeping that references o.
func (s *Scene) purgeObject(o *Object) {
	for id, entry := range s.reg.captured {
		if entry.target == o {
			s.releasePointerCapture(id, entry.target)
		}
	}
	for id, hit := range s.reg.hovered {
		if hit.Object == o || hit.EventObject == o {
			delete(s.reg.hovered, id)
		}
	}
	for id, initial := range s.reg.initialHit {
		if initial == o {
			delete(s.reg.initialHit, id)
		}
	}
}

// --- Capture state ---

// setPointerCapture captures a pointer to target, unconditionally replacing
// any previous capture for that pointer. The capturing event's intersection
// also becomes the pointer's hover entry.
func (s *Scene) setPointerCapture(pointerID int, hit Intersection, target *Object) {
	hit.EventObject = target
	s.reg.captured[pointerID] = captureEntry{intersection: hit, target: target}
	s.reg.hovered[pointerID] = hit

	if s.source != nil {
		if err := s.source.SetPointerCapture(pointerID); err != nil {
			s.debugNote("set native capture for pointer %d: %v", pointerID, err)
		}
	}
}

// releasePointerCapture releases a pointer capture. No-op if nothing is
// captured, or if requesting is non-nil and is not the captured target.
func (s *Scene) releasePointerCapture(pointerID int, requesting *Object) {
	entry, ok := s.reg.captured[pointerID]
	if !ok {
		return
	}
	if requesting != nil && entry.target != requesting {
		return
	}
	delete(s.reg.captured, pointerID)

	if s.source != nil {
		if err := s.source.ReleasePointerCapture(pointerID); err != nil {
			s.debugNote("release native capture for pointer %d: %v", pointerID, err)
		}
	}
}

// hasPointerCapture reports whether pointerID is captured by o.
func (s *Scene) hasPointerCapture(pointerID int, o *Object) bool {
	entry, ok := s.reg.captured[pointerID]
	return ok && entry.target == o
}

// CaptureTarget returns the object currently capturing pointerID, or nil.
func (s *Scene) CaptureTarget(pointerID int) *Object {
	if entry, ok := s.reg.captured[pointerID]; ok {
		return entry.target
	}
	return nil
}

// HoverTarget returns the object currently hovered by pointerID, or nil.
func (s *Scene) HoverTarget(pointerID int) *Object {
	if hit, ok := s.reg.hovered[pointerID]; ok {
		return hit.EventObject
	}
	return nil
}
