package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/raster"
)

// Render traces the world and returns the averaged linear colors.
// The camera is initialized first if needed. The world must not be modified
// while rendering.
func (c *Camera) Render(world geometry.Hittable) (*raster.Image, RenderStats, error) {
	if world == nil {
		return nil, RenderStats{}, fmt.Errorf("%w: no world to render", core.ErrInvalidConfiguration)
	}
	if !c.initialized {
		if err := c.Initialize(); err != nil {
			return nil, RenderStats{}, err
		}
	}

	start := time.Now()
	tasks := splitRows(c.imageHeight)
	if c.deterministic {
		// Fixed per-chunk seeds, drawn in row order
		for i := range tasks {
			tasks[i].Seed = c.seeds.Next()
			tasks[i].Seeded = true
		}
	}

	pool := NewWorkerPool(c.workerCount(), c.seeds)
	c.logger.Printf("Rendering %dx%d at %d samples per pixel, max depth %d, %d row chunks on %d workers\n",
		c.imageWidth, c.imageHeight, c.samplesPerPixel, c.maxDepth, len(tasks), pool.GetNumWorkers())

	img := raster.NewImage(c.imageWidth, c.imageHeight)
	pt := integrator.NewPathTracingIntegrator(integrator.Config{
		MaxDepth:   c.maxDepth,
		TMin:       c.tMin,
		Background: c.background,
	})
	progress := NewProgress("Rendering", c.imageHeight, c.progressOut)
	rows := NewRowRenderer(c, world, pt, img, progress)

	chunksPerWorker, err := pool.Run(tasks, rows.RenderRows)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels:     c.imageWidth * c.imageHeight,
		TotalSamples:    c.imageWidth * c.imageHeight * c.samplesPerPixel,
		SamplesPerPixel: c.samplesPerPixel,
		Chunks:          len(tasks),
		Workers:         pool.GetNumWorkers(),
		ChunksPerWorker: chunksPerWorker,
		Seed:            c.seeds.Seed(),
		Duration:        time.Since(start),
	}
	c.logger.Printf("Render completed in %v (%.0f samples/s)\n", stats.Duration, stats.SamplesPerSecond())

	return img, stats, nil
}
