package alder

import "sort"

// NoIndex is the sentinel for an absent face or instance index. It is used on
// both sides of every identity comparison so that hits on non-indexed,
// non-instanced geometry compare equal by object alone.
const NoIndex = -1

// Intersection is the immutable result of a single ray/object test.
type Intersection struct {
	// Object is the object whose volume the ray hit.
	Object *Object
	// EventObject is the object receiving the event. It equals Object when
	// the intersection is produced; bubbling substitutes ancestors.
	EventObject *Object
	// Distance is the ray parameter at the hit point, used as the sort key.
	Distance float64
	// Point is the hit position in world space.
	Point Vec3
	// FaceIndex is the index of the face hit, or NoIndex.
	FaceIndex int
	// InstanceID is the index of the instance hit, or NoIndex.
	InstanceID int
}

// hitKey is the identity triple used for deduplication: two intersections
// with the same key are the same logical hit.
type hitKey struct {
	object   *Object
	face     int
	instance int
}

func (it Intersection) key() hitKey {
	return hitKey{object: it.EventObject, face: it.FaceIndex, instance: it.InstanceID}
}

// sameHit reports whether two intersections are the same logical hit.
func sameHit(a, b Intersection) bool {
	return a.key() == b.key()
}

// Raycaster produces ordered intersections for a ray against a candidate set.
// Implementations must return hits sorted nearest first.
type Raycaster interface {
	Raycast(ray Ray, candidates []*Object, recursive bool) []Intersection
}

// VolumeRaycaster is the default Raycaster. It tests each candidate's
// HitVolume (and instance copies) in the object's translated space, and
// optionally descends into children.
type VolumeRaycaster struct{}

// Raycast implements [Raycaster].
func (VolumeRaycaster) Raycast(ray Ray, candidates []*Object, recursive bool) []Intersection {
	var hits []Intersection
	for _, obj := range candidates {
		hits = raycastObject(obj, ray, hits, recursive, 0)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func raycastObject(o *Object, ray Ray, hits []Intersection, recursive bool, depth int) []Intersection {
	if !o.Visible || o.IsDisposed() || depth >= maxTreeDepth {
		return hits
	}
	if o.Volume != nil {
		base := o.worldPosition()
		if len(o.Instances) == 0 {
			hits = appendVolumeHit(hits, o, ray, base, NoIndex)
		} else {
			for id, offset := range o.Instances {
				hits = appendVolumeHit(hits, o, ray, base.Add(offset), id)
			}
		}
	}
	if recursive {
		for _, child := range o.children {
			hits = raycastObject(child, ray, hits, true, depth+1)
		}
	}
	return hits
}

// appendVolumeHit tests o.Volume translated to pos and appends the hit, if any.
func appendVolumeHit(hits []Intersection, o *Object, ray Ray, pos Vec3, instance int) []Intersection {
	local := Ray{Origin: ray.Origin.Sub(pos), Dir: ray.Dir}

	face := NoIndex
	var t float64
	var ok bool
	if fv, isFace := o.Volume.(FaceHitVolume); isFace {
		t, face, ok = fv.IntersectRayFace(local)
	} else {
		t, ok = o.Volume.IntersectRay(local)
	}
	if !ok {
		return hits
	}
	return append(hits, Intersection{
		Object:      o,
		EventObject: o,
		Distance:    t,
		Point:       ray.At(t),
		FaceIndex:   face,
		InstanceID:  instance,
	})
}

// dedupeHits collapses intersections sharing the same identity triple,
// keeping the first occurrence. The input order is preserved, so whatever
// ordering the raycaster or filter hook produced decides which duplicate
// survives.
func dedupeHits(hits []Intersection) []Intersection {
	if len(hits) < 2 {
		return hits
	}
	seen := make(map[hitKey]struct{}, len(hits))
	out := hits[:0]
	for _, h := range hits {
		k := h.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, h)
	}
	return out
}
