// Package counter is the public API of the shared counter task.
//
// Two goroutines each increment one shared integer Iterations times. Every
// increment is made under a sync.Mutex, so no update is lost and the final
// value is always WorkerCount × Iterations:
//
//	n, err := counter.Run()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(n) // 200000
//
// # Failure Handling
//
// A panic inside a worker (for example a lock that cannot be acquired) is
// recovered and returned from Run as a *WorkerError. Run never returns a
// value from a run in which a worker failed.
//
// # Version Information
//
// [Version] holds the release in semantic version form; [GetInfo] breaks it
// down and reports the task parameters.
package counter
