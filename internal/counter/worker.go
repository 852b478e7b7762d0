package counter

import "sync/atomic"

// State is the lifecycle state of a worker.
type State int32

const (
	// StateCreated is a worker that has not been started.
	StateCreated State = iota
	// StateRunning is a worker executing its increment loop.
	StateRunning
	// StateTerminated is a worker that finished, successfully or not.
	StateTerminated
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Worker is one execution unit of a Task. It runs IncrementLoop on the shared
// counter exactly once.
type Worker struct {
	id         int
	iterations int
	counter    *SharedCounter
	state      atomic.Int32
	err        *WorkerError
}

func newWorker(id, iterations int, c *SharedCounter) *Worker {
	return &Worker{id: id, iterations: iterations, counter: c}
}

// ID returns the worker index within its Task.
func (w *Worker) ID() int { return w.id }

// State returns the current lifecycle state.
func (w *Worker) State() State {
	return State(w.state.Load())
}

// run executes the increment loop. Panics are recovered into w.err; the
// worker always ends in StateTerminated.
//
// w.err is written before the state changes and read by the orchestrator
// only after the join, so it needs no extra locking.
func (w *Worker) run() {
	w.state.Store(int32(StateRunning))
	defer func() {
		if r := recover(); r != nil {
			w.err = newWorkerError(w.id, r)
		}
		w.state.Store(int32(StateTerminated))
	}()

	w.counter.IncrementLoop(w.iterations)
}
