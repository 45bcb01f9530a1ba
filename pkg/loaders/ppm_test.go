package loaders

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/raster"
	"github.com/google/go-cmp/cmp"
)

func TestReadPPM(t *testing.T) {
	input := `P3
# a comment line
2 1 # trailing comment
255
0 128 255
255 255 255
`
	img, err := ReadPPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("Expected 2x1 image, got %dx%d", img.Width, img.Height)
	}

	got := [][3]uint8{raster.ToBytes(img.At(0, 0)), raster.ToBytes(img.At(0, 1))}
	want := [][3]uint8{{0, 128, 255}, {255, 255, 255}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPPM_FreeFormWhitespace(t *testing.T) {
	img, err := ReadPPM(strings.NewReader("P3 1 2 15\t15 0 0\r\n0 0 15"))
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	if img.At(0, 0).X <= img.At(0, 0).Y || img.At(1, 0).Z <= img.At(1, 0).X {
		t.Errorf("Unexpected pixels %v", img.Pixels)
	}
}

func TestReadPPM_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"binary magic", "P6\n1 1\n255\n"},
		{"negative value", "P3\n1 1\n255\n0 -1 0\n"},
		{"negative width", "P3\n-1 1\n255\n"},
		{"non-numeric value", "P3\n1 1\n255\n0 x 0\n"},
		{"value above max", "P3\n1 1\n15\n0 16 0\n"},
		{"premature EOF", "P3\n2 1\n255\n0 0 0\n1 1"},
		{"zero width", "P3\n0 1\n255\n"},
		{"zero max", "P3\n1 1\n0\n0 0 0\n"},
		{"max too large", "P3\n1 1\n70000\n0 0 0\n"},
		{"size overflows int", "P3\n4294967296 4294967296\n255\n"},
		{"size too large to allocate", "P3\n3037000500 3037000500\n255\n"},
		{"pixel count above limit", "P3\n8193 8193\n255\n0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPPM(strings.NewReader(tt.input)); !errors.Is(err, core.ErrIO) {
				t.Errorf("Expected ErrIO, got %v", err)
			}
		})
	}
}

func TestReadPPM_RoundTrip(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	original := raster.NewImage(16, 9)
	for i := range original.Pixels {
		original.Pixels[i] = core.NewVec3(random.Float64(), random.Float64()*random.Float64(), random.Float64()*1.5)
	}

	var first bytes.Buffer
	if err := raster.WritePPM(&first, original); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	decoded, err := ReadPPM(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("ReadPPM: %v", err)
	}
	var second bytes.Buffer
	if err := raster.WritePPM(&second, decoded); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	if diff := cmp.Diff(first.String(), second.String()); diff != "" {
		t.Errorf("Re-encoded PPM differs (-first +second):\n%s", diff)
	}
}
