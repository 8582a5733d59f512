package alder

import "math"

// Vec2 is a 2D vector used for screen offsets and press positions.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for positions, directions, and hit points.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Ray is a half-line in world space. Dir is expected to be unit length.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// EventType identifies a kind of pointer interaction event. The same values
// are used for raw inputs fed to [Scene.Dispatch] and for the synthetic
// events delivered to object handlers.
type EventType uint8

const (
	EventPointerDown   EventType = iota // fires when a pointer button is pressed over the surface
	EventPointerUp                      // fires when a pointer button is released
	EventPointerMove                    // fires when the pointer moves
	EventPointerOver                    // fires on the object the pointer moved onto
	EventPointerOut                     // fires on the object the pointer moved off of
	EventPointerEnter                   // fires after over, paired with leave
	EventPointerLeave                   // fires after out; as an input, means the pointer left the surface
	EventPointerCancel                  // input only: the pointer was cancelled by the platform
	EventClick                          // fires on press then release resolving to the same object
	EventDoubleClick                    // fires on a second click within the source's double-click window
	EventContextMenu                    // fires on a secondary-button click
	EventWheel                          // fires on scroll wheel movement
	EventLostCapture                    // fires on the captured object when native capture is lost
	EventPointerMissed                  // notification only: a click-family event resolved elsewhere
)

// String returns the DOM-style event name.
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventPointerMove:
		return "pointermove"
	case EventPointerOver:
		return "pointerover"
	case EventPointerOut:
		return "pointerout"
	case EventPointerEnter:
		return "pointerenter"
	case EventPointerLeave:
		return "pointerleave"
	case EventPointerCancel:
		return "pointercancel"
	case EventClick:
		return "click"
	case EventDoubleClick:
		return "dblclick"
	case EventContextMenu:
		return "contextmenu"
	case EventWheel:
		return "wheel"
	case EventLostCapture:
		return "lostpointercapture"
	case EventPointerMissed:
		return "pointermissed"
	}
	return "unknown"
}

// EventPhase reports where in the bubble chain a synthetic event currently is.
type EventPhase uint8

const (
	PhaseNone     EventPhase = iota // not being dispatched
	PhaseAtTarget                   // delivered to the object the ray actually hit
	PhaseBubbling                   // delivered to an ancestor of the hit object
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// PointerType identifies the class of input device behind a pointer.
type PointerType uint8

const (
	PointerMouse PointerType = iota
	PointerTouch
	PointerPen
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
