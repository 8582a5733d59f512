package alder

import "math"

// --- Built-in HitVolume types ---

// HitVolume is a shape a ray can be tested against, in object-local space.
type HitVolume interface {
	// IntersectRay returns the smallest positive ray parameter at which the
	// ray enters the volume, and whether it hits at all.
	IntersectRay(ray Ray) (float64, bool)
}

// FaceHitVolume is implemented by volumes made of indexed faces. Hits against
// them carry the face index into the synthesized event.
type FaceHitVolume interface {
	HitVolume
	// IntersectRayFace is IntersectRay plus the index of the face hit.
	IntersectRayFace(ray Ray) (float64, int, bool)
}

// HitSphere is a spherical hit volume.
type HitSphere struct {
	Center Vec3
	Radius float64
}

// IntersectRay solves the quadratic for ray/sphere intersection and returns
// the nearest non-negative root.
func (s HitSphere) IntersectRay(ray Ray) (float64, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Dir.Dot(ray.Dir)
	if a == 0 {
		return 0, false
	}
	halfB := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := (-halfB - sq) / a
	if t < 0 {
		t = (-halfB + sq) / a
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// HitBox is an axis-aligned box hit volume.
type HitBox struct {
	Min, Max Vec3
}

// IntersectRay uses the slab method. Rays originating inside the box hit at t = 0.
func (b HitBox) IntersectRay(ray Ray) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	ok := slab(ray.Origin.X, ray.Dir.X, b.Min.X, b.Max.X, &tMin, &tMax) &&
		slab(ray.Origin.Y, ray.Dir.Y, b.Min.Y, b.Max.Y, &tMin, &tMax) &&
		slab(ray.Origin.Z, ray.Dir.Z, b.Min.Z, b.Max.Z, &tMin, &tMax)
	if !ok || tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		tMin = 0
	}
	return tMin, true
}

// slab narrows [tMin, tMax] to one axis-aligned slab, returning false when the
// interval becomes empty.
func slab(origin, dir, lo, hi float64, tMin, tMax *float64) bool {
	if dir == 0 {
		return origin >= lo && origin <= hi
	}
	t0 := (lo - origin) / dir
	t1 := (hi - origin) / dir
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	*tMin = math.Max(*tMin, t0)
	*tMax = math.Min(*tMax, t1)
	return *tMin <= *tMax
}

// HitTriangles is a triangle-soup hit volume. Every three indices form one
// face; face k uses indices [3k, 3k+2]. Hits report k as their face index.
type HitTriangles struct {
	Vertices []Vec3
	Indices  []uint16
}

// IntersectRay returns the nearest triangle hit.
func (m HitTriangles) IntersectRay(ray Ray) (float64, bool) {
	t, _, ok := m.IntersectRayFace(ray)
	return t, ok
}

// IntersectRayFace returns the nearest triangle hit and its face index.
func (m HitTriangles) IntersectRayFace(ray Ray) (float64, int, bool) {
	best := math.Inf(1)
	bestFace := NoIndex
	for f := 0; f+2 < len(m.Indices); f += 3 {
		a := m.Vertices[m.Indices[f]]
		b := m.Vertices[m.Indices[f+1]]
		c := m.Vertices[m.Indices[f+2]]
		if t, ok := intersectTriangle(ray, a, b, c); ok && t < best {
			best = t
			bestFace = f / 3
		}
	}
	if bestFace == NoIndex {
		return 0, NoIndex, false
	}
	return best, bestFace, true
}

const triangleEpsilon = 1e-9

// intersectTriangle is the Möller–Trumbore ray/triangle test.
func intersectTriangle(ray Ray, a, b, c Vec3) (float64, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := ray.Dir.Cross(e2)
	det := e1.Dot(p)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := ray.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := ray.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
