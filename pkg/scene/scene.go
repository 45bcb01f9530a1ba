package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera *renderer.Camera
	World  *geometry.Scene // Objects in the scene
	BVH    *geometry.BVH   // Acceleration structure, built by Preprocess
	Logger core.Logger
}

// newScene creates a named scene with an empty world and a glog logger
func newScene(name string, camera *renderer.Camera) *Scene {
	return &Scene{
		Name:   name,
		Camera: camera,
		World:  geometry.NewScene(),
		Logger: core.NewGlogLogger(),
	}
}

// Preprocess prepares the scene for rendering by building the BVH.
// An empty world has nothing to accelerate and is left as is.
func (s *Scene) Preprocess() error {
	if s.World.Len() == 0 {
		s.BVH = nil
		return nil
	}

	bvh, err := geometry.NewBVH(s.World.Primitives(), geometry.DefaultBVHOptions())
	if err != nil {
		return fmt.Errorf("while building BVH for scene %q: %w", s.Name, err)
	}
	s.BVH = bvh

	stats := bvh.Stats()
	s.Logger.Printf("Built BVH for %q: %d primitives, %d nodes, %d leaves, max depth %d, avg depth %.1f\n",
		s.Name, stats.Primitives, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)
	return nil
}

// Hittable returns what the renderer should trace against
func (s *Scene) Hittable() geometry.Hittable {
	if s.BVH != nil {
		return s.BVH
	}
	return s.World
}

// GetPrimitiveCount returns the number of primitives the BVH is built over,
// counting each face of a compound separately
func (s *Scene) GetPrimitiveCount() int {
	return len(geometry.Flatten(s.World.Primitives()))
}

// builder adds primitives to a world, keeping the first construction error
type builder struct {
	world *geometry.Scene
	err   error
}

func (b *builder) add(p geometry.Primitive, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.world.Add(p)
}

func (b *builder) sphere(center core.Point3, radius float64, mat material.Material) {
	s, err := geometry.NewSphere(center, radius, mat)
	b.add(s, err)
}

func (b *builder) parallelogram(q core.Point3, u, v core.Vec3, mat material.Material) {
	p, err := geometry.NewParallelogram(q, u, v, mat)
	b.add(p, err)
}

func (b *builder) box(a, c core.Point3, mat material.Material) {
	box, err := geometry.NewBox(a, c, mat)
	b.add(box, err)
}

// groundQuad adds a large horizontal parallelogram centered at the given point
// with its normal pointing up
func (b *builder) groundQuad(center core.Point3, size float64, mat material.Material) {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) points along +Y
	b.parallelogram(corner, core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), mat)
}
