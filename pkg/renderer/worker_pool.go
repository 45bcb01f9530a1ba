package renderer

import (
	"fmt"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/core"
	"golang.org/x/sync/errgroup"
)

// RowTask is a band of image rows rendered by one worker
type RowTask struct {
	TaskID   int
	StartRow int // First row, inclusive
	EndRow   int // Last row, exclusive
	Seed     uint64
	Seeded   bool // Use Seed instead of the worker's own generator
}

// RowFunc renders one task with the given sampler
type RowFunc func(task RowTask, sampler core.Sampler)

// WorkerPool manages parallel row rendering.
// Tasks are pulled from a shared queue, so faster workers take more of them.
type WorkerPool struct {
	numWorkers int
	seeds      *core.SeedSequence
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Workers that need a generator draw their seed from seeds.
func NewWorkerPool(numWorkers int, seeds *core.SeedSequence) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers, seeds: seeds}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every task and returns how many tasks each worker completed
func (wp *WorkerPool) Run(tasks []RowTask, render RowFunc) ([]int, error) {
	// Buffer for all tasks so a failed worker never blocks the queue
	taskQueue := make(chan RowTask, len(tasks))
	for _, task := range tasks {
		taskQueue <- task
	}
	close(taskQueue)

	completed := make([]int, wp.numWorkers)
	var g errgroup.Group
	for id := 0; id < wp.numWorkers; id++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("render worker %d panicked: %v", id, r)
				}
			}()

			// Pulled lazily so idle workers do not consume seeds
			var random *core.Rand
			for task := range taskQueue {
				var sampler core.Sampler
				if task.Seeded {
					sampler = core.NewRandFromSeed(task.Seed)
				} else {
					if random == nil {
						random = core.NewRand(wp.seeds)
					}
					sampler = random
				}

				render(task, sampler)
				completed[id]++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return completed, fmt.Errorf("while rendering rows: %w", err)
	}
	return completed, nil
}

// rowChunkSize returns the number of rows per task for an image height
func rowChunkSize(height int) int {
	return max(height/1024, 1)
}

// splitRows partitions the image rows into tasks of rowChunkSize rows
func splitRows(height int) []RowTask {
	chunk := rowChunkSize(height)
	tasks := make([]RowTask, 0, (height+chunk-1)/chunk)
	for start := 0; start < height; start += chunk {
		tasks = append(tasks, RowTask{
			TaskID:   len(tasks),
			StartRow: start,
			EndRow:   min(start+chunk, height),
		})
	}
	return tasks
}
