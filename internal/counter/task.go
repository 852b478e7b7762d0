package counter

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	// WorkerCount is the number of workers started by Run.
	WorkerCount = 2

	// Iterations is the number of increments each worker performs in Run.
	Iterations = 100000
)

// Task starts a fixed set of workers against one SharedCounter and joins
// them.
//
// Lifecycle: NewTask builds the counter and all workers in StateCreated.
// Run starts them, waits for every worker to reach StateTerminated, and then
// reads the final value. A Task runs at most once.
type Task struct {
	counter *SharedCounter
	workers []*Worker
	started atomic.Bool
}

// NewTask creates a Task of workers goroutines, each incrementing a counter
// guarded by mu iterations times. Options are applied to the counter.
func NewTask(workers, iterations int, mu sync.Locker, opts ...Option) (*Task, error) {
	if workers < 1 {
		return nil, fmt.Errorf("new task: %w (got %d)", ErrInvalidWorkers, workers)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("new task: %w (got %d)", ErrInvalidIterations, iterations)
	}
	if mu == nil {
		return nil, fmt.Errorf("new task: %w", ErrNilLocker)
	}

	c := New(mu, opts...)
	t := &Task{
		counter: c,
		workers: make([]*Worker, workers),
	}
	for i := range t.workers {
		t.workers[i] = newWorker(i, iterations, c)
	}
	return t, nil
}

// Workers returns the task's workers in index order.
func (t *Task) Workers() []*Worker {
	return t.workers
}

// Run starts every worker, blocks until all have terminated, and returns the
// final counter value.
//
// If any worker failed, Run returns the joined *WorkerError values and a zero
// value; the counter is not read since it may be short of W×N.
func (t *Task) Run() (int, error) {
	if !t.started.CompareAndSwap(false, true) {
		return 0, ErrTaskStarted
	}

	var wg sync.WaitGroup
	for _, w := range t.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.run()
		}(w)
	}
	wg.Wait()

	var errs []error
	for _, w := range t.workers {
		if w.err != nil {
			errs = append(errs, w.err)
		}
	}
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}

	return t.counter.Value(), nil
}

// Run executes the shared counter task: WorkerCount workers each performing
// Iterations increments under a sync.Mutex. It returns 200000 on success.
func Run() (int, error) {
	t, err := NewTask(WorkerCount, Iterations, &sync.Mutex{})
	if err != nil {
		return 0, err
	}
	return t.Run()
}
