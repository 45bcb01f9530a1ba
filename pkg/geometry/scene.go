package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene is an ordered list of primitives tested linearly
type Scene struct {
	primitives []Primitive
	bbox       core.AABB
}

// NewScene creates a scene holding the given primitives
func NewScene(primitives ...Primitive) *Scene {
	s := &Scene{bbox: core.EmptyAABB}
	for _, p := range primitives {
		s.Add(p)
	}
	return s
}

// Add appends a primitive to the scene
func (s *Scene) Add(p Primitive) {
	s.primitives = append(s.primitives, p)
	s.bbox = s.bbox.Merge(p.BoundingBox())
}

// Len returns the number of primitives
func (s *Scene) Len() int {
	return len(s.primitives)
}

// Primitives returns a copy of the primitive list
func (s *Scene) Primitives() []Primitive {
	out := make([]Primitive, len(s.primitives))
	copy(out, s.primitives)
	return out
}

// Hit returns the closest hit among all primitives
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, p := range s.primitives {
		if hit, ok := p.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the merge of all member boxes, or the empty box
func (s *Scene) BoundingBox() core.AABB {
	return s.bbox
}
