package raster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PPMEncoder streams pixels to a plain text (P3) PPM file
type PPMEncoder struct {
	w       *bufio.Writer
	width   int
	height  int
	written int
	buf     []byte
}

// NewPPMEncoder writes the PPM header and returns an encoder expecting width*height pixels
func NewPPMEncoder(w io.Writer, width, height int) (*PPMEncoder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", core.ErrInvalidConfiguration, width, height)
	}

	enc := &PPMEncoder{w: bufio.NewWriter(w), width: width, height: height}
	if _, err := fmt.Fprintf(enc.w, "P3\n%d %d\n255\n", width, height); err != nil {
		return nil, fmt.Errorf("%w: writing PPM header: %w", core.ErrIO, err)
	}
	return enc, nil
}

// WritePixel writes the next pixel in row-major order
func (e *PPMEncoder) WritePixel(c core.Vec3) error {
	if e.written >= e.width*e.height {
		return fmt.Errorf("%w: more than %d pixels written to PPM", core.ErrIO, e.width*e.height)
	}

	b := ToBytes(c)
	e.buf = e.buf[:0]
	e.buf = strconv.AppendUint(e.buf, uint64(b[0]), 10)
	e.buf = append(e.buf, ' ')
	e.buf = strconv.AppendUint(e.buf, uint64(b[1]), 10)
	e.buf = append(e.buf, ' ')
	e.buf = strconv.AppendUint(e.buf, uint64(b[2]), 10)
	e.buf = append(e.buf, '\n')

	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("%w: writing PPM pixel %d: %w", core.ErrIO, e.written, err)
	}
	e.written++
	return nil
}

// Close flushes buffered output and checks that every pixel was written
func (e *PPMEncoder) Close() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("%w: flushing PPM: %w", core.ErrIO, err)
	}
	if e.written != e.width*e.height {
		return fmt.Errorf("%w: PPM has %d of %d pixels", core.ErrIO, e.written, e.width*e.height)
	}
	return nil
}

// WritePPM encodes a whole image as P3 PPM
func WritePPM(w io.Writer, img *Image) error {
	enc, err := NewPPMEncoder(w, img.Width, img.Height)
	if err != nil {
		return err
	}
	for _, p := range img.Pixels {
		if err := enc.WritePixel(p); err != nil {
			return err
		}
	}
	return enc.Close()
}
