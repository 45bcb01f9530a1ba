package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// Background returns the radiance for rays that escape the scene
type Background func(ray core.Ray) core.Vec3

// NewGradientBackground blends from bottom to top over the ray's unit y component
func NewGradientBackground(bottom, top core.Vec3) Background {
	return func(ray core.Ray) core.Vec3 {
		a := 0.5 * (ray.Direction.Normalize().Y + 1.0)
		return bottom.Multiply(1.0 - a).Add(top.Multiply(a))
	}
}

// GradientBackground is the default white to sky blue gradient
func GradientBackground() Background {
	return NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// ConstantBackground returns the same color in every direction
func ConstantBackground(color core.Vec3) Background {
	return func(core.Ray) core.Vec3 {
		return color
	}
}
