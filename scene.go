package alder

// EventSink is the interface for optional ECS or application-bus integration.
// When set on a Scene, a summary of every dispatched interaction is forwarded
// to the sink in addition to the per-object handlers.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the sink bridge.
type InteractionEvent struct {
	Type       EventType
	ObjectID   uint32
	PointerID  int
	Button     MouseButton
	Modifiers  KeyModifiers
	OffsetX    float64
	OffsetY    float64
	Point      Vec3
	Distance   float64
	FaceIndex  int
	InstanceID int
}

// Scene is the top-level object that owns the registry, camera, hooks, and
// input-source binding for one rendering surface. Scenes are independent:
// interaction state never crosses between them. All methods must be called
// from a single goroutine.
type Scene struct {
	root   *Object
	camera *Camera
	reg    *registry
	debug  bool

	width, height float64

	raycaster      Raycaster
	raycastEnabled bool
	recursive      bool

	filter          func([]Intersection, *Scene) []Intersection
	computeOffsets  func(PointerInput, *Scene) (float64, float64)
	onPointerMissed func(PointerInput)

	sink   EventSink
	source EventSource

	candBuf     []*Object
	injectQueue []PointerInput
	runner      *ScriptRunner

	updateFunc func() error
}

// NewScene creates a scene for a surface of the given pixel size, with a
// pre-created root group and a default camera and raycaster.
func NewScene(width, height float64) *Scene {
	return &Scene{
		root:           NewGroup("root"),
		camera:         NewCamera(),
		reg:            newRegistry(),
		width:          width,
		height:         height,
		raycaster:      VolumeRaycaster{},
		raycastEnabled: true,
	}
}

// Root returns the scene's root group object.
func (s *Scene) Root() *Object {
	return s.root
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetCamera replaces the scene's camera. Nil is ignored.
func (s *Scene) SetCamera(cam *Camera) {
	if cam != nil {
		s.camera = cam
	}
}

// SetSize updates the surface size used for normalized device coordinates
// and ray unprojection.
func (s *Scene) SetSize(width, height float64) {
	s.width = width
	s.height = height
}

// Size returns the surface size in pixels.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// SetRaycaster replaces the hit-test primitive. Nil restores the default
// volume raycaster.
func (s *Scene) SetRaycaster(r Raycaster) {
	if r == nil {
		r = VolumeRaycaster{}
	}
	s.raycaster = r
}

// SetPointerEventsEnabled turns raycasting on or off. While disabled, every
// dispatch sees an empty hit list (captured pointers still resolve).
func (s *Scene) SetPointerEventsEnabled(enabled bool) {
	s.raycastEnabled = enabled
}

// SetRecursiveRaycast controls whether the raycaster descends into the
// children of registered objects.
func (s *Scene) SetRecursiveRaycast(recursive bool) {
	s.recursive = recursive
}

// SetFilter installs a hook that may reorder or replace the raw intersection
// list before deduplication; whatever order it returns is dispatched as-is.
// Nil removes the hook.
func (s *Scene) SetFilter(fn func([]Intersection, *Scene) []Intersection) {
	s.filter = fn
}

// SetComputeOffsets installs a hook that maps a raw input to surface
// coordinates, replacing the default use of PointerInput.OffsetX/OffsetY.
// Nil removes the hook.
func (s *Scene) SetComputeOffsets(fn func(PointerInput, *Scene) (float64, float64)) {
	s.computeOffsets = fn
}

// OnPointerMissed sets the scene-level callback fired with the raw input
// whenever a click-family event misses, alongside per-object miss handlers.
func (s *Scene) OnPointerMissed(fn func(PointerInput)) {
	s.onPointerMissed = fn
}

// SetEventSink sets the optional interaction-event bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetUpdateFunc sets a callback invoked once per Update, after input
// processing. Returning an error from it aborts [Run].
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-object
// access panics, tree depth warnings are printed, and per-dispatch stats are
// logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// --- Input source binding ---

// Connect binds an event source to this scene. Any previously connected
// source is disconnected first.
func (s *Scene) Connect(src EventSource) {
	if s.source != nil {
		s.source.Disconnect()
	}
	s.source = src
	if src != nil {
		src.Connect(s)
	}
}

// Disconnect unbinds the current event source, if any.
func (s *Scene) Disconnect() {
	if s.source == nil {
		return
	}
	s.source.Disconnect()
	s.source = nil
}

// Update advances camera animation by dt seconds, drains injected inputs,
// and polls the connected event source.
func (s *Scene) Update(dt float64) error {
	s.camera.update(float32(dt))
	if s.runner != nil {
		s.runner.step(s)
	}
	if !s.drainInjected() && s.source != nil {
		s.source.Poll()
	}
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Dispose tears the scene down: the source is disconnected and all registry
// state is dropped. The object tree is left to its owner.
func (s *Scene) Dispose() {
	s.Disconnect()
	s.reg = newRegistry()
	s.candBuf = nil
	s.injectQueue = nil
}

// emitInteraction forwards a dispatch summary to the sink, if one is set.
func (s *Scene) emitInteraction(in PointerInput, f frame) {
	if s.sink == nil || len(f.hits) == 0 {
		return
	}
	top := f.hits[0]
	s.sink.EmitEvent(InteractionEvent{
		Type:       in.Type,
		ObjectID:   top.EventObject.ID,
		PointerID:  in.PointerID,
		Button:     in.Button,
		Modifiers:  in.Modifiers,
		OffsetX:    f.x,
		OffsetY:    f.y,
		Point:      top.Point,
		Distance:   top.Distance,
		FaceIndex:  top.FaceIndex,
		InstanceID: top.InstanceID,
	})
}
