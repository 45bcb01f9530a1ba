package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false if the
	// incoming ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted() core.Vec3
}

// Emitted returns the light emitted by a material, black for non-emitters
func Emitted(m Material) core.Vec3 {
	if emitter, ok := m.(Emitter); ok {
		return emitter.Emitted()
	}
	return core.Vec3{}
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, always facing against the incident ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the outside of the surface
	Material  Material    // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length. A ray travelling along the outward
// normal started inside the surface, so the normal is flipped.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) <= 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
