package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box scene with parallelogram walls and area lighting
func NewCornellScene() (*Scene, error) {
	camera := renderer.NewCamera()
	camera.SetImageWidth(400)
	camera.SetImageHeight(400)
	camera.SetCenter(core.NewVec3(278, 278, -800)) // Position camera outside the box looking in
	camera.SetLookAt(core.NewVec3(278, 278, 0))    // Look at the center of the box
	camera.SetVerticalFOV(40)
	camera.SetSamplesPerPixel(200)
	camera.SetMaxDepth(50)
	camera.SetBackground(integrator.ConstantBackground(core.Vec3{}))

	s := newScene("cornell", camera)
	b := builder{world: s.World}

	// Create materials
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0
	x := core.NewVec3(boxSize, 0, 0)
	y := core.NewVec3(0, boxSize, 0)
	z := core.NewVec3(0, 0, boxSize)

	b.parallelogram(core.NewVec3(0, 0, 0), x, z, white)       // Floor
	b.parallelogram(core.NewVec3(0, boxSize, 0), x, z, white) // Ceiling
	b.parallelogram(core.NewVec3(0, 0, boxSize), x, y, white) // Back wall
	b.parallelogram(core.NewVec3(0, 0, 0), z, y, red)         // Left wall
	b.parallelogram(core.NewVec3(boxSize, 0, 0), y, z, green) // Right wall

	// Ceiling light, slightly below the ceiling
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	b.parallelogram(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		material.NewDiffuseLight(core.NewVec3(1, 1, 1), 15),
	)

	// Tall block at the back left, glass ball at the front right
	b.box(core.NewVec3(130, 0, 295), core.NewVec3(295, 330, 460), white)
	b.sphere(core.NewVec3(370, 90, 190), 90, material.NewDielectric(1.5))
	b.sphere(core.NewVec3(160, 60, 140), 60, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0))

	if b.err != nil {
		return nil, b.err
	}
	return s, nil
}
