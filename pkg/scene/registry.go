package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Info describes a built-in scene
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type entry struct {
	info  Info
	build func(seed uint64) (*Scene, error)
}

var registry = map[string]entry{
	"default": {
		Info{"default", "Spheres of several materials on a ground quad under a sphere light"},
		func(uint64) (*Scene, error) { return NewDefaultScene() },
	},
	"cornell": {
		Info{"cornell", "Cornell box with an area light, a block, and glass and metal spheres"},
		func(uint64) (*Scene, error) { return NewCornellScene() },
	},
	"spheregrid": {
		Info{"spheregrid", "20x20 grid of colored metal spheres"},
		func(uint64) (*Scene, error) { return NewSphereGridScene() },
	},
	"random-spheres": {
		Info{"random-spheres", "Field of random small spheres around three large ones, laid out by seed"},
		NewRandomSpheresScene,
	},
	"empty": {
		Info{"empty", "No geometry, only the sky gradient"},
		func(uint64) (*Scene, error) { return NewEmptyScene() },
	},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the built-in scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, name := range Names() {
		infos = append(infos, registry[name].info)
	}
	return infos
}

// Create builds the named scene. The seed only affects scenes with a random layout.
func Create(name string, seed uint64) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown scene %q (available: %v)", core.ErrInvalidConfiguration, name, Names())
	}
	s, err := e.build(seed)
	if err != nil {
		return nil, fmt.Errorf("while building scene %q: %w", name, err)
	}
	return s, nil
}
