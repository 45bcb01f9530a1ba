package renderer

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// constantSampler returns the same value for every dimension
type constantSampler struct {
	value float64
}

func (s constantSampler) Get1D() float64 { return s.value }
func (s constantSampler) Get2D() core.Vec2 { return core.NewVec2(s.value, s.value) }
func (s constantSampler) Get3D() core.Vec3 { return core.NewVec3(s.value, s.value, s.value) }

// nopLogger discards render logging
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// newTestCamera returns a camera at the origin looking down -z
func newTestCamera(width, height int) *Camera {
	camera := NewCamera()
	camera.SetImageWidth(width)
	camera.SetImageHeight(height)
	camera.SetDirection(core.NewVec3(0, 0, -1))
	camera.SetVerticalFOV(90)
	camera.SetSeed(42)
	camera.SetLogger(nopLogger{})
	return camera
}

func mustInitialize(t *testing.T, camera *Camera) {
	t.Helper()
	if err := camera.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
}
