package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/raster"
)

// maxPPMValue is the largest channel maximum allowed by the PPM format
const maxPPMValue = 65535

// maxPPMPixels bounds the image size accepted from a header
const maxPPMPixels = 1 << 26

// ReadPPM decodes a plain text (P3) PPM image.
// Channel values are returned as linear colors, undoing the square root gamma
// applied on output, so that writing the image again reproduces the input.
func ReadPPM(r io.Reader) (*raster.Image, error) {
	tr := &tokenReader{r: bufio.NewReader(r)}

	magic, err := tr.next()
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: unsupported PPM magic %q", core.ErrIO, magic)
	}

	width, err := tr.nextInt("width")
	if err != nil {
		return nil, err
	}
	height, err := tr.nextInt("height")
	if err != nil {
		return nil, err
	}
	maxValue, err := tr.nextInt("max value")
	if err != nil {
		return nil, err
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: PPM size %dx%d", core.ErrIO, width, height)
	}
	if width > maxPPMPixels/height {
		return nil, fmt.Errorf("%w: PPM size %dx%d exceeds %d pixels", core.ErrIO, width, height, maxPPMPixels)
	}
	if maxValue == 0 || maxValue > maxPPMValue {
		return nil, fmt.Errorf("%w: PPM max value %d out of range", core.ErrIO, maxValue)
	}

	img := raster.NewImage(width, height)
	scale := 1.0 / float64(maxValue+1)
	for i := range img.Pixels {
		var c [3]float64
		for ch := range c {
			v, err := tr.nextInt("pixel value")
			if err != nil {
				return nil, fmt.Errorf("pixel %d: %w", i, err)
			}
			if v > maxValue {
				return nil, fmt.Errorf("%w: pixel %d value %d exceeds max %d", core.ErrIO, i, v, maxValue)
			}
			// Center of the quantization step, squared back to linear
			g := (float64(v) + 0.5) * scale
			c[ch] = g * g
		}
		img.Pixels[i] = core.NewVec3(c[0], c[1], c[2])
	}

	return img, nil
}

// tokenReader splits PPM input on whitespace, skipping # comments
type tokenReader struct {
	r   *bufio.Reader
	buf []byte
}

func (t *tokenReader) next() (string, error) {
	t.buf = t.buf[:0]
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(t.buf) > 0 {
				return string(t.buf), nil
			}
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: unexpected end of PPM data", core.ErrIO)
			}
			return "", fmt.Errorf("%w: reading PPM: %w", core.ErrIO, err)
		}

		switch {
		case b == '#':
			if _, err := t.r.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: reading PPM: %w", core.ErrIO, err)
			}
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		default:
			t.buf = append(t.buf, b)
		}
	}
}

// nextInt reads a non-negative decimal integer
func (t *tokenReader) nextInt(what string) (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", core.ErrIO, what, tok)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative %s %d", core.ErrIO, what, v)
	}
	return v, nil
}
