package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewRandomSpheresScene creates a field of small random spheres around three
// large ones. The layout is fixed by seed.
func NewRandomSpheresScene(seed uint64) (*Scene, error) {
	camera := renderer.NewCamera()
	camera.SetImageWidth(1200)
	camera.SetImageHeight(675)
	camera.SetCenter(core.NewVec3(13, 2, 3))
	camera.SetLookAt(core.NewVec3(0, 0, 0))
	camera.SetVerticalFOV(20)
	camera.SetDefocusAngle(0.6)
	camera.SetFocusDistance(10)
	camera.SetSamplesPerPixel(500)
	camera.SetMaxDepth(50)

	s := newScene("random-spheres", camera)
	b := builder{world: s.World}
	random := core.NewRandFromSeed(seed)

	b.sphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for c := -11; c < 11; c++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch choice := random.Float64(); {
			case choice < 0.8:
				albedo := random.Get3D().MultiplyVec(random.Get3D())
				mat = material.NewLambertian(albedo)
			case choice < 0.95:
				albedo := random.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				mat = material.NewMetal(albedo, random.Float64()*0.5)
			default:
				mat = material.NewDielectric(1.5)
			}
			b.sphere(center, 0.2, mat)
		}
	}

	b.sphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	b.sphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	b.sphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	if b.err != nil {
		return nil, b.err
	}
	return s, nil
}
