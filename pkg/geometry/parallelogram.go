package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// parallelEpsilon is the smallest |n̂·D| treated as crossing the plane
const parallelEpsilon = 1e-9

// Parallelogram represents a flat surface defined by a corner and two edge vectors
type Parallelogram struct {
	Q        core.Point3 // One corner
	U        core.Vec3   // First edge vector
	V        core.Vec3   // Second edge vector
	Normal   core.Vec3   // Unit normal, U × V normalized
	Material material.Material
	w        core.Vec3 // n / (n·n), used for planar coordinates
	bbox     core.AABB
}

// NewParallelogram creates a parallelogram from a corner point and two edge vectors.
// The edges must not be parallel.
func NewParallelogram(q core.Point3, u, v core.Vec3, mat material.Material) (*Parallelogram, error) {
	n := u.Cross(v)
	nn := n.Dot(n)
	if nn == 0 {
		return nil, fmt.Errorf("%w: parallelogram edges %v and %v are parallel", core.ErrInvalidGeometry, u, v)
	}

	bbox := core.NewAABBFromPoints(q, q.Add(u), q.Add(v), q.Add(u).Add(v)).PadToMinimum(core.MinAABBExtent)

	return &Parallelogram{
		Q:        q,
		U:        u,
		V:        v,
		Normal:   n.Divide(math.Sqrt(nn)),
		Material: mat,
		w:        n.Divide(nn),
		bbox:     bbox,
	}, nil
}

// Barycentric returns the coordinates (α, β) of p - Q in the basis {U, V}.
// p is assumed to lie in the plane.
func (p *Parallelogram) Barycentric(point core.Point3) (alpha, beta float64) {
	planar := point.Subtract(p.Q)
	alpha = p.w.Dot(planar.Cross(p.V))
	beta = p.w.Dot(p.U.Cross(planar))
	return alpha, beta
}

// Hit tests if a ray intersects with the parallelogram.
// Points on the edges count as hits.
func (p *Parallelogram) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Nearly parallel rays are reported as misses
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := p.Normal.Dot(p.Q.Subtract(ray.Origin)) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	alpha, beta := p.Barycentric(hitPoint)
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}

// BoundingBox returns the padded bounding box of the four corners
func (p *Parallelogram) BoundingBox() core.AABB {
	return p.bbox
}
