package core

// MinAABBExtent is the smallest size any axis of a primitive's bounding box may have
const MinAABBExtent = 1e-4

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB contains no points; merging into it is the identity
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromCorners creates the AABB spanned by two opposite corners, in any order
func NewAABBFromCorners(a, b Point3) AABB {
	return EmptyAABB.MergePoint(a).MergePoint(b)
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point3) AABB {
	box := EmptyAABB
	for _, p := range points {
		box = box.MergePoint(p)
	}
	return box
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// IsEmpty reports whether the box contains no points
func (b AABB) IsEmpty() bool {
	return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty()
}

// Min returns the minimum corner
func (b AABB) Min() Point3 {
	return NewVec3(b.X.Min, b.Y.Min, b.Z.Min)
}

// Max returns the maximum corner
func (b AABB) Max() Point3 {
	return NewVec3(b.X.Max, b.Y.Max, b.Z.Max)
}

// Centroid returns the center point of the box
func (b AABB) Centroid() Point3 {
	return NewVec3(b.X.Midpoint(), b.Y.Midpoint(), b.Z.Midpoint())
}

// Extent returns the size along each axis, zero for empty boxes
func (b AABB) Extent() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return NewVec3(b.X.Size(), b.Y.Size(), b.Z.Size())
}

// SurfaceArea returns the surface area of the box
func (b AABB) SurfaceArea() float64 {
	size := b.Extent()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// Volume returns the volume of the box
func (b AABB) Volume() float64 {
	size := b.Extent()
	return size.X * size.Y * size.Z
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (b AABB) LongestAxis() int {
	size := b.Extent()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Merge returns an AABB that bounds both this AABB and another
func (b AABB) Merge(other AABB) AABB {
	return AABB{
		X: b.X.Merge(other.X),
		Y: b.Y.Merge(other.Y),
		Z: b.Z.Merge(other.Z),
	}
}

// MergePoint returns an AABB that bounds this AABB and the point
func (b AABB) MergePoint(p Point3) AABB {
	return AABB{
		X: b.X.MergeValue(p.X),
		Y: b.Y.MergeValue(p.Y),
		Z: b.Z.MergeValue(p.Z),
	}
}

// PadToMinimum expands every axis narrower than delta to exactly delta,
// keeping it centered. Planar primitives need this to avoid degenerate slabs.
func (b AABB) PadToMinimum(delta float64) AABB {
	pad := func(i Interval) Interval {
		if !i.IsEmpty() && i.Size() < delta {
			return i.Expand(delta - i.Size())
		}
		return i
	}
	return AABB{X: pad(b.X), Y: pad(b.Y), Z: pad(b.Z)}
}

// ContainsPoint reports whether p lies inside the closed box
func (b AABB) ContainsPoint(p Point3) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// ContainsBox reports whether other lies entirely inside the box
func (b AABB) ContainsBox(other AABB) bool {
	if other.IsEmpty() {
		return true
	}
	return b.X.ContainsInterval(other.X) &&
		b.Y.ContainsInterval(other.Y) &&
		b.Z.ContainsInterval(other.Z)
}

// HitBy tests if the ray intersects the box within rayT using the slab method.
// Axes are tested in x, y, z order and the test exits on the first empty overlap.
// Zero direction components divide to ±Inf, which the comparisons handle; the
// NaN produced by an origin exactly on a slab face is ignored.
func (b AABB) HitBy(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max
	for axis := 0; axis < 3; axis++ {
		slab := b.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		t0 := (slab.Min - origin) / direction
		t1 := (slab.Max - origin) / direction
		if direction < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}
