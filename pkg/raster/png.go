package raster

import (
	"fmt"
	"image/png"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// WritePNG encodes the image as an 8-bit PNG using the same quantization as PPM output
func WritePNG(w io.Writer, img *Image) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("%w: encoding PNG: %w", core.ErrIO, err)
	}
	return nil
}
