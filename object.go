package alder

// --- ID counter ---

// objectIDCounter is a plain counter; no atomic, alder is single-threaded.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// maxTreeDepth bounds every ancestor walk. Parent links come from an external
// scene graph, so a misconfigured cycle must terminate the walk rather than
// hang the dispatcher.
const maxTreeDepth = 64

// --- Object ---

// Object is a node in the scene graph the dispatcher raycasts against.
// A single flat struct is used for all object kinds to avoid interface
// dispatch on the hot path.
//
// The dispatcher reads Parent and the handler set; it never mutates the tree.
// Tree manipulation methods exist for the code that owns the graph.
type Object struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Object
	children []*Object

	// Spatial. Position is a local offset added to the parent chain's
	// positions; Volume is tested in that translated space. Instances adds
	// one volume copy per offset, each reporting its index as InstanceID.
	Position  Vec3
	Volume    HitVolume
	Instances []Vec3

	// Visibility. Invisible objects (and their subtrees) are skipped by the
	// default raycaster.
	Visible bool

	// Metadata
	UserData any

	// Per-object callbacks (nil by default; zero cost when unused).
	OnPointerDown  func(*PointerEvent)
	OnPointerUp    func(*PointerEvent)
	OnPointerMove  func(*PointerEvent)
	OnPointerOver  func(*PointerEvent)
	OnPointerOut   func(*PointerEvent)
	OnPointerEnter func(*PointerEvent)
	OnPointerLeave func(*PointerEvent)
	OnClick        func(*PointerEvent)
	OnDoubleClick  func(*PointerEvent)
	OnContextMenu  func(*PointerEvent)
	OnWheel        func(*PointerEvent)

	// OnLostPointerCapture fires on the object that held a pointer capture
	// when the capture is lost at the input source.
	OnLostPointerCapture func(*PointerEvent)

	// OnPointerMissed fires with the raw input when a click-family event
	// resolves to nothing, or to an object this one is not an ancestor of.
	OnPointerMissed func(PointerInput)

	// Internal
	disposed bool
}

// objectDefaults sets the common default field values shared by all constructors.
func objectDefaults(o *Object) {
	o.ID = nextObjectID()
	o.Visible = true
}

// NewGroup creates a container object with no hit volume of its own.
// Groups receive events only by bubbling from descendants.
func NewGroup(name string) *Object {
	o := &Object{Name: name}
	objectDefaults(o)
	return o
}

// NewObject creates an object with the given hit volume.
func NewObject(name string, volume HitVolume) *Object {
	o := &Object{Name: name, Volume: volume}
	objectDefaults(o)
	return o
}

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this object (cycle).
func (o *Object) AddChild(child *Object) {
	if child == nil {
		panic("alder: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(o, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, o) {
		panic("alder: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = o
	o.children = append(o.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this object.
// Panics if child.Parent != o.
func (o *Object) RemoveChild(child *Object) {
	if globalDebug {
		debugCheckDisposed(o, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != o {
		panic("alder: child's parent is not this object")
	}
	o.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this object from its parent.
// No-op if this object has no parent.
func (o *Object) RemoveFromParent() {
	if o.Parent == nil {
		return
	}
	o.Parent.RemoveChild(o)
}

// RemoveChildren detaches all children from this object.
// Children are NOT disposed.
func (o *Object) RemoveChildren() {
	for _, child := range o.children {
		child.Parent = nil
	}
	o.children = o.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (o *Object) Children() []*Object {
	return o.children
}

// NumChildren returns the number of children.
func (o *Object) NumChildren() int {
	return len(o.children)
}

// --- Disposal ---

// Dispose removes this object from its parent, marks it as disposed, clears
// its handler set, and recursively disposes all descendants. Disposing does
// not touch any [Scene] registry; call [Scene.Unregister] first when the
// object was registered.
func (o *Object) Dispose() {
	if o.disposed {
		return
	}
	o.RemoveFromParent()
	o.dispose()
}

func (o *Object) dispose() {
	o.disposed = true
	o.ID = 0
	for _, child := range o.children {
		child.Parent = nil
		child.dispose()
	}
	o.children = nil
	o.Parent = nil
	o.Volume = nil
	o.Instances = nil
	o.UserData = nil
	o.OnPointerDown = nil
	o.OnPointerUp = nil
	o.OnPointerMove = nil
	o.OnPointerOver = nil
	o.OnPointerOut = nil
	o.OnPointerEnter = nil
	o.OnPointerLeave = nil
	o.OnClick = nil
	o.OnDoubleClick = nil
	o.OnContextMenu = nil
	o.OnWheel = nil
	o.OnLostPointerCapture = nil
	o.OnPointerMissed = nil
}

// IsDisposed returns true if this object has been disposed.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

// --- Handler set ---

// handlerFor returns the callback registered for the given event kind, or nil.
func (o *Object) handlerFor(t EventType) func(*PointerEvent) {
	switch t {
	case EventPointerDown:
		return o.OnPointerDown
	case EventPointerUp:
		return o.OnPointerUp
	case EventPointerMove:
		return o.OnPointerMove
	case EventPointerOver:
		return o.OnPointerOver
	case EventPointerOut:
		return o.OnPointerOut
	case EventPointerEnter:
		return o.OnPointerEnter
	case EventPointerLeave:
		return o.OnPointerLeave
	case EventClick:
		return o.OnClick
	case EventDoubleClick:
		return o.OnDoubleClick
	case EventContextMenu:
		return o.OnContextMenu
	case EventWheel:
		return o.OnWheel
	case EventLostCapture:
		return o.OnLostPointerCapture
	default:
		return nil
	}
}

// handlerCount returns the number of dispatched handlers set on this object.
// OnPointerMissed is a notification, not a dispatched handler, and is not counted.
func (o *Object) handlerCount() int {
	n := 0
	for _, fn := range []func(*PointerEvent){
		o.OnPointerDown, o.OnPointerUp, o.OnPointerMove,
		o.OnPointerOver, o.OnPointerOut, o.OnPointerEnter, o.OnPointerLeave,
		o.OnClick, o.OnDoubleClick, o.OnContextMenu, o.OnWheel,
		o.OnLostPointerCapture,
	} {
		if fn != nil {
			n++
		}
	}
	return n
}

// hasPointerHandler reports whether this object defines any dispatched handler.
// Objects without one are skipped as raycast candidates.
func (o *Object) hasPointerHandler() bool {
	return o.handlerCount() > 0
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
// The walk is bounded by maxTreeDepth so a cyclic graph cannot hang it.
func isAncestor(candidate, node *Object) bool {
	depth := 0
	for p := node; p != nil && depth < maxTreeDepth; p = p.Parent {
		if p == candidate {
			return true
		}
		depth++
	}
	return false
}

// worldPosition returns the object's position accumulated up the parent chain.
func (o *Object) worldPosition() Vec3 {
	pos := Vec3{}
	depth := 0
	for p := o; p != nil && depth < maxTreeDepth; p = p.Parent {
		pos = pos.Add(p.Position)
		depth++
	}
	return pos
}

// removeChildByPtr removes child from o.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (o *Object) removeChildByPtr(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}
