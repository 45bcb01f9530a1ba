package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/raster"
)

// RowRenderer renders bands of rows into a shared image.
// Tasks cover disjoint rows, so concurrent calls never write the same pixel.
type RowRenderer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	image      *raster.Image
	progress   *Progress
}

// NewRowRenderer creates a row renderer writing into img
func NewRowRenderer(camera *Camera, world geometry.Hittable, integratorInst integrator.Integrator, img *raster.Image, progress *Progress) *RowRenderer {
	return &RowRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
		image:      img,
		progress:   progress,
	}
}

// RenderRows renders every pixel of the task's rows
func (rr *RowRenderer) RenderRows(task RowTask, sampler core.Sampler) {
	for row := task.StartRow; row < task.EndRow; row++ {
		pixels := rr.image.Row(row)
		for col := range pixels {
			pixels[col] = rr.samplePixel(row, col, sampler)
		}
		rr.progress.CompleteIteration()
	}
}

// samplePixel averages samplesPerPixel camera rays through the pixel
func (rr *RowRenderer) samplePixel(row, col int, sampler core.Sampler) core.Vec3 {
	var ps PixelStats
	for ps.SampleCount < rr.camera.samplesPerPixel {
		ray := rr.camera.GetRay(row, col, sampler)
		ps.AddSample(rr.integrator.RayColor(ray, rr.world, sampler))
	}
	return ps.GetColor()
}
