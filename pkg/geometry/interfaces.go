package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can be intersected with
type Hittable interface {
	// Hit returns the closest intersection with t strictly inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}

// Primitive is a bounded hittable that can be placed in a BVH
type Primitive interface {
	Hittable
	BoundingBox() core.AABB
}

// Compound is a primitive assembled from smaller primitives.
// The BVH builder replaces compounds with their components.
type Compound interface {
	Primitive
	Components() []Primitive
}

// Flatten expands compound primitives recursively into their components
func Flatten(primitives []Primitive) []Primitive {
	flat := make([]Primitive, 0, len(primitives))
	for _, p := range primitives {
		if compound, ok := p.(Compound); ok {
			flat = append(flat, Flatten(compound.Components())...)
			continue
		}
		flat = append(flat, p)
	}
	return flat
}
