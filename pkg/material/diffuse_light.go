package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Color     core.Vec3 // Emitted light color
	Intensity float64   // Scale applied to Color
}

// NewDiffuseLight creates a new emissive material. Negative intensities are clamped to zero.
func NewDiffuseLight(color core.Vec3, intensity float64) *DiffuseLight {
	return &DiffuseLight{Color: color, Intensity: max(intensity, 0)}
}

// Scatter implements the Material interface.
// Lights don't scatter - they absorb all incoming rays.
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the emitted light for this material
func (l *DiffuseLight) Emitted() core.Vec3 {
	return l.Color.Multiply(l.Intensity)
}
