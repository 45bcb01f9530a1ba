package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	forward      = core.NewInterval(1e-5, math.Inf(1))
)

func mustSphere(t *testing.T, center core.Point3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, testMaterial)
	if err != nil {
		t.Fatalf("NewSphere(%v, %f): %v", center, radius, err)
	}
	return s
}

func mustParallelogram(t *testing.T, q core.Point3, u, v core.Vec3) *Parallelogram {
	t.Helper()
	p, err := NewParallelogram(q, u, v, testMaterial)
	if err != nil {
		t.Fatalf("NewParallelogram(%v, %v, %v): %v", q, u, v, err)
	}
	return p
}

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
