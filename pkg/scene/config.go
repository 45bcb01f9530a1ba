package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// RenderConfig overrides a scene's camera settings. Unset fields keep the
// scene's values.
type RenderConfig struct {
	Width           *int     `json:"width,omitempty"`
	Height          *int     `json:"height,omitempty"`
	SamplesPerPixel *int     `json:"samplesPerPixel,omitempty"`
	MaxDepth        *int     `json:"maxDepth,omitempty"`
	Seed            *uint64  `json:"seed,omitempty"`
	VFov            *float64 `json:"vfov,omitempty"` // Degrees
	DefocusAngle    *float64 `json:"defocusAngle,omitempty"`
	FocusDistance   *float64 `json:"focusDistance,omitempty"`
	Workers         *int     `json:"workers,omitempty"`
	Deterministic   *bool    `json:"deterministic,omitempty"`
}

// LoadRenderConfig reads a JSON render config. Unknown keys are rejected.
func LoadRenderConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading render config: %v", core.ErrIO, err)
	}
	return ParseRenderConfig(data)
}

// ParseRenderConfig decodes a JSON render config
func ParseRenderConfig(data []byte) (*RenderConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg RenderConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing render config: %v", core.ErrInvalidConfiguration, err)
	}
	return &cfg, nil
}

// Apply sets every configured value on the camera. Values are checked when
// the camera is initialized.
func (cfg *RenderConfig) Apply(camera *renderer.Camera) {
	if cfg.Width != nil {
		camera.SetImageWidth(*cfg.Width)
	}
	if cfg.Height != nil {
		camera.SetImageHeight(*cfg.Height)
	}
	if cfg.SamplesPerPixel != nil {
		camera.SetSamplesPerPixel(*cfg.SamplesPerPixel)
	}
	if cfg.MaxDepth != nil {
		camera.SetMaxDepth(*cfg.MaxDepth)
	}
	if cfg.Seed != nil {
		camera.SetSeed(*cfg.Seed)
	}
	if cfg.VFov != nil {
		camera.SetVerticalFOV(*cfg.VFov)
	}
	if cfg.DefocusAngle != nil {
		camera.SetDefocusAngle(*cfg.DefocusAngle)
	}
	if cfg.FocusDistance != nil {
		camera.SetFocusDistance(*cfg.FocusDistance)
	}
	if cfg.Workers != nil {
		camera.SetWorkers(*cfg.Workers)
	}
	if cfg.Deterministic != nil {
		camera.SetDeterministic(*cfg.Deterministic)
	}
}
