package alder

import (
	"math"
	"testing"
)

const volEps = 1e-9

func assertHitAt(t *testing.T, v HitVolume, ray Ray, want float64) {
	t.Helper()
	got, ok := v.IntersectRay(ray)
	if !ok {
		t.Fatalf("IntersectRay(%v) missed, want hit at %v", ray, want)
	}
	if math.Abs(got-want) > volEps {
		t.Errorf("IntersectRay(%v) = %v, want %v", ray, got, want)
	}
}

func assertMiss(t *testing.T, v HitVolume, ray Ray) {
	t.Helper()
	if got, ok := v.IntersectRay(ray); ok {
		t.Errorf("IntersectRay(%v) = %v, want miss", ray, got)
	}
}

// --- HitSphere ---

func TestHitSphere(t *testing.T) {
	s := HitSphere{Radius: 1}

	// Head-on along -Z from z=5: enters at z=1, t=4.
	assertHitAt(t, s, Ray{Origin: Vec3{Z: 5}, Dir: Vec3{Z: -1}}, 4)

	// Grazing tangent at x=1.
	assertHitAt(t, s, Ray{Origin: Vec3{X: 1, Z: 5}, Dir: Vec3{Z: -1}}, 5)

	// Offset center.
	off := HitSphere{Center: Vec3{X: 3}, Radius: 1}
	assertHitAt(t, off, Ray{Origin: Vec3{X: 3, Z: 5}, Dir: Vec3{Z: -1}}, 4)

	// Misses.
	assertMiss(t, s, Ray{Origin: Vec3{X: 2, Z: 5}, Dir: Vec3{Z: -1}})
	// Sphere behind the origin.
	assertMiss(t, s, Ray{Origin: Vec3{Z: 5}, Dir: Vec3{Z: 1}})
	// Zero direction.
	assertMiss(t, s, Ray{Origin: Vec3{Z: 5}})
}

func TestHitSphereFromInside(t *testing.T) {
	s := HitSphere{Radius: 2}
	// Origin inside: the nearest non-negative root is the exit point.
	assertHitAt(t, s, Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}}, 2)
}

// --- HitBox ---

func TestHitBox(t *testing.T) {
	b := HitBox{Min: Vec3{X: -1, Y: -1, Z: -1}, Max: Vec3{X: 1, Y: 1, Z: 1}}

	assertHitAt(t, b, Ray{Origin: Vec3{Z: 5}, Dir: Vec3{Z: -1}}, 4)
	assertHitAt(t, b, Ray{Origin: Vec3{X: -5}, Dir: Vec3{X: 1}}, 4)

	// Diagonal through a corner region.
	d := Vec3{X: -1, Y: -1, Z: -1}.Normalize()
	got, ok := b.IntersectRay(Ray{Origin: Vec3{X: 2, Y: 2, Z: 2}, Dir: d})
	if !ok {
		t.Fatal("diagonal ray should hit")
	}
	if want := math.Sqrt(3); math.Abs(got-want) > volEps {
		t.Errorf("diagonal hit = %v, want %v", got, want)
	}

	assertMiss(t, b, Ray{Origin: Vec3{X: 5, Z: 5}, Dir: Vec3{Z: -1}})
	// Box entirely behind the ray.
	assertMiss(t, b, Ray{Origin: Vec3{Z: 5}, Dir: Vec3{Z: 1}})
}

func TestHitBoxFromInside(t *testing.T) {
	b := HitBox{Min: Vec3{X: -1, Y: -1, Z: -1}, Max: Vec3{X: 1, Y: 1, Z: 1}}
	// Origin inside hits at t=0.
	assertHitAt(t, b, Ray{Origin: Vec3{}, Dir: Vec3{Z: -1}}, 0)
}

func TestHitBoxParallelRay(t *testing.T) {
	b := HitBox{Min: Vec3{X: -1, Y: -1, Z: -1}, Max: Vec3{X: 1, Y: 1, Z: 1}}

	// Parallel to the X slabs, inside them.
	assertHitAt(t, b, Ray{Origin: Vec3{X: 0.5, Z: 5}, Dir: Vec3{Z: -1}}, 4)
	// Parallel to the X slabs, outside them.
	assertMiss(t, b, Ray{Origin: Vec3{X: 2, Z: 5}, Dir: Vec3{Z: -1}})
}

// --- HitTriangles ---

// quadMesh is two triangles forming a unit quad in the XY plane at z=0.
func quadMesh() HitTriangles {
	return HitTriangles{
		Vertices: []Vec3{
			{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}

func TestHitTrianglesFaceIndex(t *testing.T) {
	m := quadMesh()

	// Lower-right region belongs to face 0, upper-left to face 1.
	tests := []struct {
		x, y     float64
		wantFace int
	}{
		{0.5, -0.5, 0},
		{-0.5, 0.5, 1},
	}
	for _, tc := range tests {
		ray := Ray{Origin: Vec3{X: tc.x, Y: tc.y, Z: 5}, Dir: Vec3{Z: -1}}
		dist, face, ok := m.IntersectRayFace(ray)
		if !ok {
			t.Fatalf("ray at (%v, %v) missed", tc.x, tc.y)
		}
		if face != tc.wantFace {
			t.Errorf("face at (%v, %v) = %d, want %d", tc.x, tc.y, face, tc.wantFace)
		}
		if math.Abs(dist-5) > volEps {
			t.Errorf("distance = %v, want 5", dist)
		}
	}
}

func TestHitTrianglesNearestFace(t *testing.T) {
	// Two parallel triangles stacked in Z; the nearer one must win.
	m := HitTriangles{
		Vertices: []Vec3{
			{X: -1, Y: -1, Z: -4}, {X: 1, Y: -1, Z: -4}, {X: 0, Y: 1, Z: -4},
			{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
		Indices: []uint16{0, 1, 2, 3, 4, 5},
	}
	ray := Ray{Origin: Vec3{Z: 5}, Dir: Vec3{Z: -1}}
	dist, face, ok := m.IntersectRayFace(ray)
	if !ok {
		t.Fatal("ray should hit")
	}
	if face != 1 {
		t.Errorf("face = %d, want 1 (nearer)", face)
	}
	if math.Abs(dist-5) > volEps {
		t.Errorf("distance = %v, want 5", dist)
	}
}

func TestHitTrianglesMiss(t *testing.T) {
	m := quadMesh()

	assertMiss(t, m, Ray{Origin: Vec3{X: 5, Z: 5}, Dir: Vec3{Z: -1}})
	// Parallel to the triangle plane.
	assertMiss(t, m, Ray{Origin: Vec3{Z: 5}, Dir: Vec3{X: 1}})
	// Behind.
	assertMiss(t, m, Ray{Origin: Vec3{Z: 5}, Dir: Vec3{Z: 1}})

	empty := HitTriangles{}
	assertMiss(t, empty, Ray{Origin: Vec3{Z: 5}, Dir: Vec3{Z: -1}})
}

// --- intersectTriangle ---

func TestIntersectTriangle(t *testing.T) {
	a := Vec3{X: -1, Y: -1}
	b := Vec3{X: 1, Y: -1}
	c := Vec3{X: 0, Y: 1}

	if dist, ok := intersectTriangle(Ray{Origin: Vec3{Z: 3}, Dir: Vec3{Z: -1}}, a, b, c); !ok || math.Abs(dist-3) > volEps {
		t.Errorf("center hit = (%v, %v), want (3, true)", dist, ok)
	}
	// Outside the triangle but inside its bounding box.
	if _, ok := intersectTriangle(Ray{Origin: Vec3{X: 0.9, Y: 0.9, Z: 3}, Dir: Vec3{Z: -1}}, a, b, c); ok {
		t.Error("corner gap should miss")
	}
}
