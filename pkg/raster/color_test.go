package raster

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected uint8
	}{
		{"black", 0, 0},
		{"quarter is half after gamma", 0.25, 128},
		{"white", 1, 255},
		{"overexposed", 4, 255},
		{"negative", -0.5, 0},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 255},
		{"just below first step", 1.0 / (256 * 256) * 0.99, 0},
		{"first step", 1.0 / (256 * 256) * 1.01, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToByte(tt.linear); got != tt.expected {
				t.Errorf("ToByte(%g) = %d, want %d", tt.linear, got, tt.expected)
			}
		})
	}
}

func TestToByte_Monotonic(t *testing.T) {
	prev := ToByte(0)
	for i := 1; i <= 10000; i++ {
		b := ToByte(float64(i) / 10000)
		if b < prev {
			t.Fatalf("ToByte decreased from %d to %d at %f", prev, b, float64(i)/10000)
		}
		prev = b
	}
}

func TestToBytes(t *testing.T) {
	got := ToBytes(core.NewVec3(1, 0.25, 0))
	if got != [3]uint8{255, 128, 0} {
		t.Errorf("Expected [255 128 0], got %v", got)
	}
}
