package raster

import (
	"image/color"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestImage_RowMajor(t *testing.T) {
	img := NewImage(3, 2)
	img.Set(1, 2, core.NewVec3(1, 2, 3))

	if img.Pixels[5] != core.NewVec3(1, 2, 3) {
		t.Errorf("Expected pixel (1,2) at index 5, got %v", img.Pixels)
	}
	if img.At(1, 2) != core.NewVec3(1, 2, 3) {
		t.Errorf("At returned %v", img.At(1, 2))
	}

	row := img.Row(1)
	if len(row) != 3 || row[2] != img.At(1, 2) {
		t.Errorf("Row(1) = %v", row)
	}
	row[0] = core.NewVec3(9, 9, 9)
	if img.At(1, 0) != core.NewVec3(9, 9, 9) {
		t.Error("Row must alias the image")
	}
}

func TestImage_ToRGBA(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, core.NewVec3(1, 0.25, 0))
	img.Set(0, 1, core.NewVec3(0, 0, 1))

	rgba := img.ToRGBA()
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Errorf("Pixel (0,0) = %v", got)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{R: 0, G: 0, B: 255, A: 255}) {
		t.Errorf("Pixel (1,0) = %v", got)
	}
}

func TestImage_AverageLuminance(t *testing.T) {
	// Red, green, blue and black average to a quarter of white
	img := NewImage(2, 2)
	img.Set(0, 0, core.NewVec3(1, 0, 0))
	img.Set(0, 1, core.NewVec3(0, 1, 0))
	img.Set(1, 0, core.NewVec3(0, 0, 1))

	if got := img.AverageLuminance(); got < 0.25-1e-4 || got > 0.25+1e-4 {
		t.Errorf("Expected average luminance 0.25, got %f", got)
	}
	if got := NewImage(0, 0).AverageLuminance(); got != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", got)
	}
}
