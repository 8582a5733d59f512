package alder

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideAnim holds active glide tweens for camera X, Y, and Z.
type glideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenZ *gween.Tween
	doneX  bool
	doneY  bool
	doneZ  bool
}

// Camera defines the view rays are cast from: a perspective pinhole at
// Position looking at Target.
type Camera struct {
	// Position is the camera's world-space location.
	Position Vec3
	// Target is the world-space point the camera looks at.
	Target Vec3
	// Up is the world-space up reference used to build the view basis.
	Up Vec3
	// FOV is the vertical field of view in radians.
	FOV float64
	// Near and Far bound the view frustum along the look direction.
	Near, Far float64

	followTarget *Object
	followOffset Vec3
	followLerp   float64

	glideTween *glideAnim
}

// NewCamera creates a camera with default values: positioned at (0, 0, 5)
// looking at the origin with a 60 degree vertical field of view.
func NewCamera() *Camera {
	return &Camera{
		Position: Vec3{Z: 5},
		Up:       Vec3{Y: 1},
		FOV:      math.Pi / 3,
		Near:     0.1,
		Far:      1000,
	}
}

// Follow makes the camera track an object with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(o *Object, offset Vec3, lerp float64) {
	c.followTarget = o
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target object.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// GlideTo animates the camera position to the given world point over
// duration seconds.
func (c *Camera) GlideTo(to Vec3, duration float32, easeFn ease.TweenFunc) {
	c.glideTween = &glideAnim{
		tweenX: gween.New(float32(c.Position.X), float32(to.X), duration, easeFn),
		tweenY: gween.New(float32(c.Position.Y), float32(to.Y), duration, easeFn),
		tweenZ: gween.New(float32(c.Position.Z), float32(to.Z), duration, easeFn),
	}
}

// update advances follow and glide animation. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		goal := c.followTarget.worldPosition().Add(c.followOffset)
		lerp := c.followLerp
		if lerp <= 0 || lerp > 1 {
			lerp = 1
		}
		c.Position = c.Position.Add(goal.Sub(c.Position).Scale(lerp))
	}

	if c.glideTween != nil {
		g := c.glideTween
		x, doneX := g.tweenX.Update(dt)
		y, doneY := g.tweenY.Update(dt)
		z, doneZ := g.tweenZ.Update(dt)
		c.Position = Vec3{X: float64(x), Y: float64(y), Z: float64(z)}
		g.doneX, g.doneY, g.doneZ = doneX, doneY, doneZ
		if g.doneX && g.doneY && g.doneZ {
			c.glideTween = nil
		}
	}
}

// basis returns the camera's orthonormal view basis: forward, right, and up.
// A degenerate configuration (zero look vector, up parallel to forward)
// falls back to the world axes rather than producing NaNs.
func (c *Camera) basis() (forward, right, up Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	if forward == (Vec3{}) {
		forward = Vec3{Z: -1}
	}
	right = forward.Cross(c.Up).Normalize()
	if right == (Vec3{}) {
		right = Vec3{X: 1}
	}
	up = right.Cross(forward)
	return forward, right, up
}

// ScreenRay converts surface coordinates to a world-space picking ray.
// This is the 3D counterpart of a screen-to-world transform: the point is
// mapped to normalized device coordinates and pushed through the view basis.
func (c *Camera) ScreenRay(x, y, width, height float64) Ray {
	ndcX, ndcY := ndc(x, y, width, height)
	forward, right, up := c.basis()

	halfH := math.Tan(c.FOV / 2)
	halfW := halfH * aspect(width, height)

	dir := forward.
		Add(right.Scale(ndcX * halfW)).
		Add(up.Scale(ndcY * halfH)).
		Normalize()
	return Ray{Origin: c.Position, Dir: dir}
}

// Unproject maps surface coordinates onto the camera's near plane in world space.
func (c *Camera) Unproject(x, y, width, height float64) Vec3 {
	ray := c.ScreenRay(x, y, width, height)
	forward, _, _ := c.basis()
	denom := ray.Dir.Dot(forward)
	if denom == 0 {
		return ray.Origin
	}
	return ray.At(c.Near / denom)
}

// ndc converts surface pixels to normalized device coordinates in [-1, 1],
// with Y increasing upward.
func ndc(x, y, width, height float64) (float64, float64) {
	if width == 0 || height == 0 {
		return 0, 0
	}
	return (x/width)*2 - 1, -((y / height) * 2) + 1
}

// aspect returns width/height, defaulting to 1 for a degenerate surface.
func aspect(width, height float64) float64 {
	if width == 0 || height == 0 {
		return 1
	}
	return width / height
}
