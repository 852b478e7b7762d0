package counter

import internal "github.com/kolkov/sharedcounter/internal/counter"

const (
	// WorkerCount is the number of concurrent workers.
	WorkerCount = internal.WorkerCount

	// Iterations is the number of increments each worker performs.
	Iterations = internal.Iterations
)

// WorkerError reports a failure recovered from a worker goroutine.
type WorkerError = internal.WorkerError

// Run executes the task and returns the final counter value.
//
// On success the value is WorkerCount × Iterations. If any worker failed the
// error joins every *WorkerError and the value is zero.
func Run() (int, error) {
	return internal.Run()
}
