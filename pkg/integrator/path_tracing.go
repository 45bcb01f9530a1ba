package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Config holds path tracing parameters
type Config struct {
	MaxDepth   int        // Maximum number of bounces
	TMin       float64    // Shadow acne offset
	Background Background // Radiance for escaping rays
}

// DefaultConfig returns the standard path tracing settings
func DefaultConfig() Config {
	return Config{
		MaxDepth:   10,
		TMin:       DefaultTMin,
		Background: GradientBackground(),
	}
}

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A nil background falls back to the default gradient.
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	if config.Background == nil {
		config.Background = GradientBackground()
	}
	return &PathTracingIntegrator{config: config}
}

// RayColor computes the color for a camera ray with the configured depth
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, pt.config.MaxDepth, world, sampler)
}

// Trace computes the color for a ray with the given remaining bounce budget
func (pt *PathTracingIntegrator) Trace(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(pt.config.TMin, math.Inf(1)))
	if !isHit {
		return pt.config.Background(ray)
	}

	return pt.shade(ray, hit, depth, world, sampler)
}

func (pt *PathTracingIntegrator) shade(ray core.Ray, hit *material.HitRecord, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	if hit.Material == nil {
		return core.Vec3{}
	}

	colorEmitted := material.Emitted(hit.Material)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.Trace(scatter.Scattered, depth-1, world, sampler))
	return colorEmitted.Add(colorScattered)
}
