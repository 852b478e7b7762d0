package counter

import (
	"errors"
	"fmt"
)

// Errors returned by NewTask and Task.Run.
var (
	ErrInvalidWorkers    = errors.New("worker count must be at least 1")
	ErrInvalidIterations = errors.New("iteration count must not be negative")
	ErrNilLocker         = errors.New("locker must not be nil")
	ErrTaskStarted       = errors.New("task already started")
)

// WorkerError reports a failure raised inside a worker goroutine.
//
// Workers recover panics (for example from a lock that cannot be acquired)
// and hand them to the orchestrator as a WorkerError instead of letting the
// process crash or the failure vanish.
//
// Example:
//
//	_, err := task.Run()
//	var werr *WorkerError
//	if errors.As(err, &werr) {
//		fmt.Println(werr.Worker) // index of the failed worker
//	}
type WorkerError struct {
	Worker int   // Worker index (0-based)
	Cause  error // Recovered failure
}

// Error implements the error interface.
//
// Format: worker N: cause
func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.Worker, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *WorkerError) Unwrap() error {
	return e.Cause
}

// newWorkerError converts a recovered panic value into a WorkerError.
// Error values are kept as the cause so callers can match them.
func newWorkerError(worker int, recovered any) *WorkerError {
	cause, ok := recovered.(error)
	if !ok {
		cause = fmt.Errorf("panic: %v", recovered)
	}
	return &WorkerError{Worker: worker, Cause: cause}
}
