package raster

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image is a row-major grid of linear RGB colors
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at row, col
func (img *Image) At(row, col int) core.Vec3 {
	return img.Pixels[row*img.Width+col]
}

// Set stores the color at row, col
func (img *Image) Set(row, col int, c core.Vec3) {
	img.Pixels[row*img.Width+col] = c
}

// Row returns the pixels of one row. The slice aliases the image.
func (img *Image) Row(row int) []core.Vec3 {
	return img.Pixels[row*img.Width : (row+1)*img.Width]
}

// ToRGBA converts the image to gamma corrected 8-bit RGBA
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			b := ToBytes(img.At(row, col))
			out.SetRGBA(col, row, color.RGBA{R: b[0], G: b[1], B: b[2], A: 255})
		}
	}
	return out
}

// AverageLuminance returns the mean perceptual luminance of the linear colors
func (img *Image) AverageLuminance() float64 {
	if len(img.Pixels) == 0 {
		return 0
	}
	var total float64
	for _, p := range img.Pixels {
		total += p.Luminance()
	}
	return total / float64(len(img.Pixels))
}
