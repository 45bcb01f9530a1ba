package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestScene_Empty(t *testing.T) {
	scene := NewScene()

	if scene.Len() != 0 {
		t.Errorf("Expected empty scene, got %d primitives", scene.Len())
	}
	if !scene.BoundingBox().IsEmpty() {
		t.Errorf("Expected empty bounding box, got %v", scene.BoundingBox())
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := scene.Hit(ray, forward); isHit {
		t.Error("Expected empty scene to miss every ray")
	}
}

func TestScene_ClosestHitWins(t *testing.T) {
	near := mustSphere(t, core.NewVec3(0, 0, -3), 1)
	far := mustSphere(t, core.NewVec3(0, 0, -10), 1)
	wall := mustParallelogram(t, core.NewVec3(-5, -5, -6), core.NewVec3(10, 0, 0), core.NewVec3(0, 10, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := [][]Primitive{
		{near, far, wall},
		{far, wall, near},
		{wall, near, far},
	}
	for _, order := range orders {
		scene := NewScene(order...)
		hit, isHit := scene.Hit(ray, forward)
		if !isHit {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-2) > 1e-9 {
			t.Errorf("Expected closest hit at t=2, got %f", hit.T)
		}
	}

	// Limiting the interval past the near sphere exposes the wall
	scene := NewScene(orders[0]...)
	hit, isHit := scene.Hit(ray, core.NewInterval(5, math.Inf(1)))
	if !isHit || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected wall hit at t=6, got hit=%v", isHit)
	}
}

func TestScene_BoundingBoxAndCopy(t *testing.T) {
	a := mustSphere(t, core.NewVec3(-2, 0, 0), 1)
	b := mustSphere(t, core.NewVec3(3, 1, 0), 0.5)

	scene := NewScene(a)
	scene.Add(b)

	expected := a.BoundingBox().Merge(b.BoundingBox())
	if scene.BoundingBox() != expected {
		t.Errorf("Expected bounding box %v, got %v", expected, scene.BoundingBox())
	}

	prims := scene.Primitives()
	prims[0] = b
	if scene.Primitives()[0] != a {
		t.Error("Primitives must return a copy")
	}
}
