// Package detector implements a happens-before race checker.
//
// It follows the FastTrack algorithm (PLDI 2009) with epoch-only read
// tracking:
//
//   - Each goroutine carries a vector clock (goroutine.RaceContext).
//   - Each observed address keeps the epoch of its last write and read
//     (shadowmem.VarState).
//   - Lock operations move clocks through the lock's release clock
//     (syncshadow.SyncVar), which orders critical sections.
//
// An access whose conflicting predecessor is not ordered before it is
// reported as a data race, independent of how the scheduler happened to
// interleave the goroutines. That makes the check deterministic: a counter
// whose lock does not synchronize is flagged even if the run itself was
// sequential.
//
// The detector satisfies counter.Observer for address events. Lock events
// come from lockcheck.Mutex.
package detector
