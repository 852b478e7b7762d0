// Package goroutine holds per-goroutine happens-before state.
//
// Each goroutine observed by the detector gets a RaceContext with:
//   - TID: dense thread ID assigned in first-seen order
//   - C: vector clock tracking every thread's logical time
//   - Epoch: cached C[TID]
//
// CurrentID identifies the calling goroutine so instrumented locks and the
// counter observer can find their context without being passed one.
package goroutine
