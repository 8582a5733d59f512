// Package alder is a pointer-event dispatcher for 3D scene graphs on
// [Ebitengine].
//
// Alder turns raw pointer input (mouse, touch, or injected) into DOM-style
// events on the objects of a 3D scene: a ray is cast from the camera through
// the cursor, intersections are collected and deduplicated, and events bubble
// from the hit object up its ancestor chain with stopPropagation, pointer
// capture, hover enter/leave tracking, and click/miss resolution.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := alder.NewScene(640, 480)
//	// ... add objects ...
//	alder.Run(scene, alder.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] directly:
//
//	type Game struct{ scene *alder.Scene }
//
//	func (g *Game) Update() error              { return g.scene.Update(1.0 / 60) }
//	func (g *Game) Draw(s *ebiten.Image)       { /* your rendering */ }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Scene graph
//
// Every interactive element is an [Object]. Objects form a tree rooted at
// [Scene.Root]. Events delivered to an object bubble up through its parents.
//
// Objects carry a [HitVolume] ([HitSphere], [HitBox], or [HitTriangles]) and
// handler fields:
//
//	ball := alder.NewObject("ball", alder.HitSphere{Radius: 1})
//	ball.Position = alder.Vec3{X: 0, Y: 1, Z: -3}
//	ball.OnClick = func(ev *alder.PointerEvent) {
//		ev.StopPropagation()
//	}
//	scene.Root().AddChild(ball)
//	scene.Register(ball)
//
// Only registered objects are raycast against; any object in the tree can
// still receive bubbled events.
//
// # Input
//
// Connect an [EventSource] to feed the scene. [EbitenSource] polls
// Ebitengine's mouse, touch, and wheel state each frame:
//
//	scene.Connect(alder.NewEbitenSource())
//
// Synthetic input goes through [Scene.InjectClick], [Scene.InjectDrag], and
// friends, and is indistinguishable from real input downstream.
//
// # Key features
//
// Alder includes per-pointer capture with graceful degradation when the
// source has no native capture, multi-pointer hover state, instanced-object
// hit reporting, face-level hits for triangle meshes, a pluggable [Raycaster],
// camera glide animation (via [gween]), and an [EventSink] bridge for
// forwarding interaction summaries to external systems.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package alder
