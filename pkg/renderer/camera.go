package renderer

import (
	"fmt"
	"io"
	"math"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Camera generates rays for rendering and drives the render.
// Configure it with the setters, then call Initialize (or Render, which
// initializes on demand). Any setter invalidates a previous Initialize.
type Camera struct {
	imageWidth  int
	imageHeight int

	center       core.Point3
	direction    core.Vec3
	hasDirection bool
	lookAt       core.Point3
	hasLookAt    bool
	viewUp       core.Vec3

	vfov    float64
	hasVFOV bool
	hfov    float64
	hasHFOV bool

	focusDistance    float64
	hasFocusDistance bool
	defocusAngle     float64

	samplesPerPixel int
	maxDepth        int
	background      integrator.Background
	tMin            float64

	workers       int
	deterministic bool
	seeds         *core.SeedSequence
	logger        core.Logger
	progressOut   io.Writer

	// Derived by Initialize
	initialized    bool
	focalLength    float64
	viewportWidth  float64
	viewportHeight float64
	basisX         core.Vec3 // Camera right
	basisY         core.Vec3 // Camera up
	basisZ         core.Vec3 // Opposite the view direction
	pixel00        core.Point3
	pixelDeltaX    core.Vec3
	pixelDeltaY    core.Vec3
	defocusDiskX   core.Vec3
	defocusDiskY   core.Vec3
}

// NewCamera creates a camera with default settings. A field of view and
// either a direction or a look-at point must still be set.
func NewCamera() *Camera {
	return &Camera{
		imageWidth:      400,
		imageHeight:     225,
		viewUp:          core.NewVec3(0, 1, 0),
		samplesPerPixel: 10,
		maxDepth:        10,
		background:      integrator.GradientBackground(),
		tMin:            integrator.DefaultTMin,
		seeds:           core.NewSeedSequence(),
		logger:          core.NewGlogLogger(),
	}
}

// SetImageWidth sets the output width in pixels
func (c *Camera) SetImageWidth(width int) {
	c.imageWidth = width
	c.initialized = false
}

// SetImageHeight sets the output height in pixels
func (c *Camera) SetImageHeight(height int) {
	c.imageHeight = height
	c.initialized = false
}

// SetCenter sets the camera position
func (c *Camera) SetCenter(center core.Point3) {
	c.center = center
	c.initialized = false
}

// SetDirection sets the view direction. Its length is the default focus distance.
func (c *Camera) SetDirection(direction core.Vec3) {
	c.direction = direction
	c.hasDirection = true
	c.initialized = false
}

// SetLookAt sets the point the camera looks at
func (c *Camera) SetLookAt(lookAt core.Point3) {
	c.lookAt = lookAt
	c.hasLookAt = true
	c.initialized = false
}

// SetViewUp sets the vector used to orient the camera's up direction
func (c *Camera) SetViewUp(viewUp core.Vec3) {
	c.viewUp = viewUp
	c.initialized = false
}

// SetVerticalFOV sets the vertical field of view in degrees
func (c *Camera) SetVerticalFOV(degrees float64) {
	c.vfov = degrees
	c.hasVFOV = true
	c.initialized = false
}

// SetHorizontalFOV sets the horizontal field of view in degrees
func (c *Camera) SetHorizontalFOV(degrees float64) {
	c.hfov = degrees
	c.hasHFOV = true
	c.initialized = false
}

// SetFocusDistance sets the distance to the plane of perfect focus
func (c *Camera) SetFocusDistance(distance float64) {
	c.focusDistance = distance
	c.hasFocusDistance = true
	c.initialized = false
}

// SetDefocusAngle sets the aperture cone angle in degrees; 0 disables depth of field
func (c *Camera) SetDefocusAngle(degrees float64) {
	c.defocusAngle = degrees
	c.initialized = false
}

// SetSamplesPerPixel sets the number of rays averaged for each pixel
func (c *Camera) SetSamplesPerPixel(samples int) {
	c.samplesPerPixel = samples
	c.initialized = false
}

// SetMaxDepth sets the maximum number of bounces per path
func (c *Camera) SetMaxDepth(depth int) {
	c.maxDepth = depth
	c.initialized = false
}

// SetBackground sets the color of rays that escape the scene
func (c *Camera) SetBackground(background integrator.Background) {
	c.background = background
	c.initialized = false
}

// SetTMin sets the minimum hit distance used to avoid shadow acne
func (c *Camera) SetTMin(tMin float64) {
	c.tMin = tMin
	c.initialized = false
}

// SetWorkers sets the number of render goroutines; 0 uses one per CPU
func (c *Camera) SetWorkers(workers int) {
	c.workers = workers
	c.initialized = false
}

// SetSeed makes the render reproducible from a fixed seed
func (c *Camera) SetSeed(seed uint64) {
	c.seeds = core.NewSeededSequence(seed)
}

// SetSeedSequence shares a seed sequence between renders
func (c *Camera) SetSeedSequence(seeds *core.SeedSequence) {
	c.seeds = seeds
}

// SetDeterministic assigns a seed to every row chunk before rendering, so the
// output for a fixed seed does not depend on the number of workers
func (c *Camera) SetDeterministic(deterministic bool) {
	c.deterministic = deterministic
}

// SetLogger replaces the render logger
func (c *Camera) SetLogger(logger core.Logger) {
	c.logger = logger
}

// SetProgressOutput sets where render progress is printed; nil disables it
func (c *Camera) SetProgressOutput(w io.Writer) {
	c.progressOut = w
}

// ImageWidth returns the configured width in pixels
func (c *Camera) ImageWidth() int {
	return c.imageWidth
}

// ImageHeight returns the configured height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// SamplesPerPixel returns the configured samples per pixel
func (c *Camera) SamplesPerPixel() int {
	return c.samplesPerPixel
}

// MaxDepth returns the configured bounce limit
func (c *Camera) MaxDepth() int {
	return c.maxDepth
}

// Seed returns the seed of the camera's seed sequence
func (c *Camera) Seed() uint64 {
	return c.seeds.Seed()
}

// Initialize validates the configuration and precomputes the view geometry
func (c *Camera) Initialize() error {
	if err := c.validate(); err != nil {
		return err
	}

	direction := c.direction
	if c.hasLookAt {
		direction = c.lookAt.Subtract(c.center)
	}

	c.focalLength = direction.Length()
	if c.hasFocusDistance {
		c.focalLength = c.focusDistance
	}

	c.basisZ = direction.Normalize().Negate()
	right := c.viewUp.Cross(c.basisZ)
	if right.NearZero() {
		return fmt.Errorf("%w: view up %v is parallel to the view direction %v", core.ErrInvalidConfiguration, c.viewUp, direction)
	}
	c.basisX = right.Normalize()
	c.basisY = c.basisZ.Cross(c.basisX)

	aspect := float64(c.imageWidth) / float64(c.imageHeight)
	if c.hasVFOV {
		c.viewportHeight = 2 * c.focalLength * math.Tan(degreesToRadians(c.vfov)/2)
		c.viewportWidth = c.viewportHeight * aspect
	} else {
		c.viewportWidth = 2 * c.focalLength * math.Tan(degreesToRadians(c.hfov)/2)
		c.viewportHeight = c.viewportWidth / aspect
	}

	viewportX := c.basisX.Multiply(c.viewportWidth)
	viewportY := c.basisY.Multiply(-c.viewportHeight)
	c.pixelDeltaX = viewportX.Divide(float64(c.imageWidth))
	c.pixelDeltaY = viewportY.Divide(float64(c.imageHeight))

	c.pixel00 = c.center.
		Subtract(c.basisZ.Multiply(c.focalLength)).
		Subtract(viewportX.Divide(2)).
		Subtract(viewportY.Divide(2)).
		Add(c.pixelDeltaX.Add(c.pixelDeltaY).Multiply(0.5))

	defocusRadius := c.focalLength * math.Tan(degreesToRadians(c.defocusAngle)/2)
	c.defocusDiskX = c.basisX.Multiply(defocusRadius)
	c.defocusDiskY = c.basisY.Multiply(defocusRadius)

	c.initialized = true
	return nil
}

func (c *Camera) validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", core.ErrInvalidConfiguration, fmt.Sprintf(format, args...))
	}

	switch {
	case c.imageWidth <= 0 || c.imageHeight <= 0:
		return invalid("image size %dx%d", c.imageWidth, c.imageHeight)
	case c.hasVFOV == c.hasHFOV:
		return invalid("exactly one of vertical and horizontal field of view must be set")
	case c.hasDirection == c.hasLookAt:
		return invalid("exactly one of direction and look-at must be set")
	case c.hasVFOV && !(c.vfov > 0 && c.vfov < 180):
		return invalid("vertical field of view %g must be in (0, 180)", c.vfov)
	case c.hasHFOV && !(c.hfov > 0 && c.hfov < 180):
		return invalid("horizontal field of view %g must be in (0, 180)", c.hfov)
	case c.hasDirection && c.direction.NearZero():
		return invalid("direction must be non-zero")
	case c.hasLookAt && c.lookAt.Subtract(c.center).NearZero():
		return invalid("look-at point %v coincides with the camera center", c.lookAt)
	case c.hasFocusDistance && !(c.focusDistance > 0):
		return invalid("focus distance %g must be positive", c.focusDistance)
	case !(c.defocusAngle >= 0 && c.defocusAngle < 180):
		return invalid("defocus angle %g must be in [0, 180)", c.defocusAngle)
	case c.samplesPerPixel <= 0:
		return invalid("samples per pixel %d must be positive", c.samplesPerPixel)
	case c.maxDepth <= 0:
		return invalid("max depth %d must be positive", c.maxDepth)
	case !(c.tMin >= 0):
		return invalid("t min %g must not be negative", c.tMin)
	case c.workers < 0:
		return invalid("worker count %d must not be negative", c.workers)
	case c.seeds == nil:
		return invalid("seed sequence is nil")
	}
	return nil
}

// GetRay returns a ray through a random point in pixel (row, col). With depth
// of field enabled the origin is sampled from the defocus disk.
func (c *Camera) GetRay(row, col int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	target := c.pixel00.
		Add(c.pixelDeltaY.Multiply(float64(row) + jitter.Y - 0.5)).
		Add(c.pixelDeltaX.Multiply(float64(col) + jitter.X - 0.5))

	origin := c.center
	if c.defocusAngle > 0 {
		p := core.RandomInUnitDisk(sampler)
		origin = c.center.Add(c.defocusDiskX.Multiply(p.X)).Add(c.defocusDiskY.Multiply(p.Y))
	}

	return core.NewRay(origin, target.Subtract(origin))
}

// workerCount resolves the configured number of workers
func (c *Camera) workerCount() int {
	if c.workers > 0 {
		return c.workers
	}
	return runtime.NumCPU()
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
