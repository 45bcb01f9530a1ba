package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() (*Scene, error) {
	camera := renderer.NewCamera()
	camera.SetImageWidth(400)
	camera.SetImageHeight(225)
	camera.SetCenter(core.NewVec3(0, 0.75, 2)) // Position camera higher and farther back
	camera.SetLookAt(core.NewVec3(0, 0.5, -1))  // Look at the sphere center
	camera.SetVerticalFOV(40)
	camera.SetDefocusAngle(0.6)
	camera.SetSamplesPerPixel(100)
	camera.SetMaxDepth(50)

	s := newScene("default", camera)
	b := builder{world: s.World}

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	b.sphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	b.sphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	b.sphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	b.sphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass)

	// Blue ball inside a glass ball
	b.sphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass)
	b.sphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	// Large but finite ground so the BVH has proper bounds
	b.groundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen)

	// Warm sun high to the side
	b.sphere(core.NewVec3(30, 30.5, 15), 10, material.NewDiffuseLight(core.NewVec3(1.0, 0.93, 0.87), 15))

	if b.err != nil {
		return nil, b.err
	}
	return s, nil
}

// NewEmptyScene creates a scene with nothing but the sky gradient
func NewEmptyScene() (*Scene, error) {
	camera := renderer.NewCamera()
	camera.SetDirection(core.NewVec3(0, 0, -1))
	camera.SetVerticalFOV(90)
	camera.SetSamplesPerPixel(1)
	camera.SetMaxDepth(1)
	return newScene("empty", camera), nil
}
