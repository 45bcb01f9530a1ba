package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned box made up of 6 parallelograms
type Box struct {
	Min      core.Point3 // Componentwise minimum corner
	Max      core.Point3 // Componentwise maximum corner
	Material material.Material
	faces    *Scene
	bbox     core.AABB
}

// NewBox creates a box spanning two opposite corners given in any order.
// Every side must have non-zero length.
func NewBox(a, b core.Point3, mat material.Material) (*Box, error) {
	lo := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	hi := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	// Each face's U × V points out of the box
	sides := []struct {
		q    core.Point3
		u, v core.Vec3
	}{
		{core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy},          // front (+z)
		{core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy}, // right (+x)
		{core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy}, // back (-z)
		{core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy},          // left (-x)
		{core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate()}, // top (+y)
		{core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz},          // bottom (-y)
	}

	faces := NewScene()
	for _, side := range sides {
		face, err := NewParallelogram(side.q, side.u, side.v, mat)
		if err != nil {
			return nil, fmt.Errorf("box from %v to %v is flat: %w", lo, hi, err)
		}
		faces.Add(face)
	}

	return &Box{
		Min:      lo,
		Max:      hi,
		Material: mat,
		faces:    faces,
		bbox:     core.NewAABBFromCorners(lo, hi).PadToMinimum(core.MinAABBExtent),
	}, nil
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, rayT)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}

// Components returns the six faces so a BVH can partition them individually
func (b *Box) Components() []Primitive {
	return b.faces.Primitives()
}
