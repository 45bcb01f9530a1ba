package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	rgb := core.NewVec3(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a grid of metal spheres on a ground quad
func NewSphereGridScene() (*Scene, error) {
	camera := renderer.NewCamera()
	camera.SetImageWidth(800)
	camera.SetImageHeight(450)
	camera.SetCenter(core.NewVec3(4.5, 6, 18))   // Farther back and slightly above
	camera.SetLookAt(core.NewVec3(4.5, 0.8, 4.5)) // Center of the grid
	camera.SetVerticalFOV(40)
	camera.SetDefocusAngle(0.3)
	camera.SetSamplesPerPixel(100)
	camera.SetMaxDepth(40)

	s := newScene("spheregrid", camera)
	b := builder{world: s.World}

	// Warm sun-like light high and to the side
	b.sphere(core.NewVec3(20, 25, 20), 8, material.NewDiffuseLight(core.NewVec3(1.0, 0.96, 0.83), 12))

	b.groundQuad(core.NewVec3(4.5, 0, 4.5), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	// Fit the grid into roughly 9x9 units
	gridSize := 20
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			// Hue across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			mat := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			b.sphere(core.NewVec3(x, sphereRadius, z), sphereRadius, mat)
		}
	}

	if b.err != nil {
		return nil, b.err
	}
	return s, nil
}
