package raster

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

var intensity = core.NewInterval(0, 0.999)

// ToByte applies gamma 2 (square root) to a linear channel value and
// quantizes it to [0, 255]. Negative and NaN values map to 0.
func ToByte(linear float64) uint8 {
	if !(linear > 0) {
		return 0
	}
	return uint8(math.Floor(intensity.Clamp(math.Sqrt(linear)) * 256))
}

// ToBytes quantizes all three channels of a linear color
func ToBytes(c core.Vec3) [3]uint8 {
	return [3]uint8{ToByte(c.X), ToByte(c.Y), ToByte(c.Z)}
}
