package alder

import "testing"

// --- Constructor defaults ---

func TestNewGroupDefaults(t *testing.T) {
	o := NewGroup("grp")
	assertObjectDefaults(t, o, "grp")
	if o.Volume != nil {
		t.Error("group should have no volume")
	}
}

func TestNewObjectDefaults(t *testing.T) {
	vol := HitSphere{Radius: 1}
	o := NewObject("ball", vol)
	assertObjectDefaults(t, o, "ball")
	if o.Volume != vol {
		t.Errorf("Volume = %v, want %v", o.Volume, vol)
	}
}

func assertObjectDefaults(t *testing.T, o *Object, name string) {
	t.Helper()
	if o.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if o.Name != name {
		t.Errorf("Name = %q, want %q", o.Name, name)
	}
	if !o.Visible {
		t.Error("Visible should be true")
	}
	if o.Parent != nil {
		t.Error("Parent should be nil")
	}
	if o.IsDisposed() {
		t.Error("should not be disposed")
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewObject("c", HitSphere{Radius: 1})
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs not unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("child not in parent's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	child := NewGroup("child")
	a.AddChild(child)
	b.AddChild(child)

	if child.Parent != b {
		t.Error("child.Parent should be b")
	}
	if a.NumChildren() != 0 {
		t.Error("child should have left a")
	}
	if b.NumChildren() != 1 {
		t.Error("child should be in b")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer expectPanic(t, "AddChild(nil)")
	NewGroup("parent").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)

	defer expectPanic(t, "cyclic AddChild")
	child.AddChild(parent)
}

func TestAddChildSelfPanics(t *testing.T) {
	o := NewGroup("o")
	defer expectPanic(t, "AddChild(self)")
	o.AddChild(o)
}

func TestRemoveChild(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
	if parent.NumChildren() != 0 {
		t.Error("parent should have no children")
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	parent := NewGroup("parent")
	stranger := NewGroup("stranger")

	defer expectPanic(t, "RemoveChild with wrong parent")
	parent.RemoveChild(stranger)
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)
	child.RemoveFromParent()

	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child should be detached")
	}

	// No-op without a parent.
	child.RemoveFromParent()
}

func TestRemoveChildren(t *testing.T) {
	parent := NewGroup("parent")
	a := NewGroup("a")
	b := NewGroup("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChildren()

	if parent.NumChildren() != 0 {
		t.Error("parent should have no children")
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("children should be detached")
	}
	if a.IsDisposed() || b.IsDisposed() {
		t.Error("RemoveChildren must not dispose")
	}
}

func expectPanic(t *testing.T, what string) {
	t.Helper()
	if recover() == nil {
		t.Errorf("%s should panic", what)
	}
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	parent := NewGroup("parent")
	child := NewObject("child", HitSphere{Radius: 1})
	grandchild := NewGroup("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)
	child.OnClick = func(*PointerEvent) {}

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed child should leave its parent")
	}
	if child.ID != 0 {
		t.Error("disposed ID should be zeroed")
	}
	if child.Volume != nil || child.OnClick != nil {
		t.Error("disposed object should drop volume and handlers")
	}

	// Double dispose is a no-op.
	child.Dispose()
}

// --- Handler set ---

func TestHandlerFor(t *testing.T) {
	o := NewGroup("o")
	called := ""
	o.OnPointerDown = func(*PointerEvent) { called = "down" }
	o.OnWheel = func(*PointerEvent) { called = "wheel" }

	if fn := o.handlerFor(EventPointerDown); fn == nil {
		t.Fatal("handlerFor(down) should be set")
	} else {
		fn(nil)
	}
	if called != "down" {
		t.Errorf("called = %q, want down", called)
	}
	if o.handlerFor(EventClick) != nil {
		t.Error("handlerFor(click) should be nil")
	}
	if o.handlerFor(EventPointerMissed) != nil {
		t.Error("pointer-missed is not a dispatched handler")
	}
}

func TestHandlerCount(t *testing.T) {
	o := NewGroup("o")
	if o.handlerCount() != 0 || o.hasPointerHandler() {
		t.Error("fresh object should have no handlers")
	}

	o.OnClick = func(*PointerEvent) {}
	o.OnPointerMove = func(*PointerEvent) {}
	o.OnPointerMissed = func(PointerInput) {}

	if got := o.handlerCount(); got != 2 {
		t.Errorf("handlerCount = %d, want 2 (missed is not dispatched)", got)
	}
	if !o.hasPointerHandler() {
		t.Error("hasPointerHandler should be true")
	}
}

// --- Helpers ---

func TestIsAncestor(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	a.AddChild(b)
	b.AddChild(c)

	if !isAncestor(a, c) || !isAncestor(b, c) {
		t.Error("a and b are ancestors of c")
	}
	if !isAncestor(c, c) {
		t.Error("an object is its own ancestor")
	}
	if isAncestor(c, a) {
		t.Error("c is not an ancestor of a")
	}
}

func TestIsAncestorBoundedOnCycle(t *testing.T) {
	// Build a cycle directly, bypassing AddChild's guard.
	a := NewGroup("a")
	b := NewGroup("b")
	a.Parent = b
	b.Parent = a

	// Must terminate.
	if isAncestor(NewGroup("other"), a) {
		t.Error("unrelated object reported as ancestor")
	}
}

func TestWorldPosition(t *testing.T) {
	parent := NewGroup("parent")
	parent.Position = Vec3{X: 1, Y: 2, Z: 3}
	child := NewGroup("child")
	child.Position = Vec3{X: 10, Y: 20, Z: 30}
	parent.AddChild(child)

	want := Vec3{X: 11, Y: 22, Z: 33}
	if got := child.worldPosition(); got != want {
		t.Errorf("worldPosition = %v, want %v", got, want)
	}
}
