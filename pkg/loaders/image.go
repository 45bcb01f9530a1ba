package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/raster"
)

// LoadImage loads a PPM, PNG or JPEG image as linear colors
func LoadImage(filename string) (*raster.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image file: %w", core.ErrIO, err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		img, err := ReadPPM(file)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", filename, err)
		}
		return img, nil
	}

	// Decode image (auto-detects PNG/JPEG from file header)
	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image %s: %w", core.ErrIO, filename, err)
	}

	bounds := decoded.Bounds()
	img := raster.NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, _ := decoded.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]; square to undo gamma 2
			img.Set(y, x, core.NewVec3(
				linearize(r),
				linearize(g),
				linearize(b),
			))
		}
	}

	return img, nil
}

func linearize(v uint32) float64 {
	c := float64(v) / 65535.0
	return c * c
}
