package renderer

import (
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestRowChunkSize(t *testing.T) {
	tests := []struct {
		height   int
		expected int
	}{
		{1, 1},
		{225, 1},
		{1023, 1},
		{1024, 1},
		{2048, 2},
		{4100, 4},
	}

	for _, tt := range tests {
		if got := rowChunkSize(tt.height); got != tt.expected {
			t.Errorf("rowChunkSize(%d) = %d, want %d", tt.height, got, tt.expected)
		}
	}
}

func TestSplitRows_CoversEveryRowOnce(t *testing.T) {
	for _, height := range []int{1, 7, 1024, 2049, 5000} {
		tasks := splitRows(height)
		next := 0
		for i, task := range tasks {
			if task.TaskID != i || task.StartRow != next || task.EndRow <= task.StartRow {
				t.Fatalf("height %d: bad task %+v after row %d", height, task, next)
			}
			next = task.EndRow
		}
		if next != height {
			t.Errorf("height %d: tasks end at row %d", height, next)
		}
	}

	if got := len(splitRows(2049)); got != 1025 {
		t.Errorf("Expected 1025 tasks for 2049 rows, got %d", got)
	}
}

func TestWorkerPool_RunsEveryTaskOnce(t *testing.T) {
	pool := NewWorkerPool(4, core.NewSeededSequence(1))
	tasks := splitRows(500)

	var mu sync.Mutex
	runs := make(map[int]int)
	completed, err := pool.Run(tasks, func(task RowTask, sampler core.Sampler) {
		sampler.Get1D()
		mu.Lock()
		defer mu.Unlock()
		runs[task.TaskID]++
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, task := range tasks {
		if runs[task.TaskID] != 1 {
			t.Errorf("Task %d ran %d times", task.TaskID, runs[task.TaskID])
		}
	}
	total := 0
	for _, n := range completed {
		total += n
	}
	if len(completed) != 4 || total != len(tasks) {
		t.Errorf("Expected 4 workers completing %d tasks, got %v", len(tasks), completed)
	}
}

func TestWorkerPool_SeededTasksUseTaskSeed(t *testing.T) {
	pool := NewWorkerPool(3, core.NewSeededSequence(1))
	tasks := []RowTask{
		{TaskID: 0, StartRow: 0, EndRow: 1, Seed: 100, Seeded: true},
		{TaskID: 1, StartRow: 1, EndRow: 2, Seed: 200, Seeded: true},
	}

	var mu sync.Mutex
	draws := make(map[int]float64)
	if _, err := pool.Run(tasks, func(task RowTask, sampler core.Sampler) {
		mu.Lock()
		defer mu.Unlock()
		draws[task.TaskID] = sampler.Get1D()
	}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, task := range tasks {
		if want := core.NewRandFromSeed(task.Seed).Get1D(); draws[task.TaskID] != want {
			t.Errorf("Task %d drew %v, want %v", task.TaskID, draws[task.TaskID], want)
		}
	}
}

func TestWorkerPool_PanicBecomesError(t *testing.T) {
	pool := NewWorkerPool(2, core.NewSeededSequence(1))

	_, err := pool.Run(splitRows(10), func(task RowTask, sampler core.Sampler) {
		if task.TaskID == 3 {
			panic("bad row")
		}
	})
	if err == nil || !strings.Contains(err.Error(), "bad row") {
		t.Errorf("Expected panic to surface as an error, got %v", err)
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	if NewWorkerPool(0, core.NewSeedSequence()).GetNumWorkers() < 1 {
		t.Error("Expected at least one worker by default")
	}
}
