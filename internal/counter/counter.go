// Package counter implements a shared counter incremented by concurrent
// workers under mutual exclusion.
//
// A SharedCounter pairs a single integer with the sync.Locker guarding it.
// Every mutation goes through the lock, so W workers performing N increments
// each always leave the counter at exactly W×N:
//
//	c := counter.New(&sync.Mutex{})
//	c.IncrementLoop(100000)
//	fmt.Println(c.Value()) // 100000
//
// Task runs several workers against one SharedCounter and joins them.
package counter

import (
	"sync"
	"unsafe"
)

// Observer receives the accesses a SharedCounter makes to its value.
//
// Calls are made while the lock is held, with the address of the guarded
// integer. The race detector in internal/race/detector satisfies this
// interface.
type Observer interface {
	OnRead(addr uintptr)
	OnWrite(addr uintptr)
}

// Option configures a SharedCounter.
type Option func(*SharedCounter)

// WithObserver attaches an access observer to the counter.
func WithObserver(o Observer) Option {
	return func(c *SharedCounter) {
		c.observer = o
	}
}

// SharedCounter is an integer guarded by a lock.
//
// The value is only read or written between mu.Lock and mu.Unlock.
// A SharedCounter must not be copied after first use.
type SharedCounter struct {
	mu       sync.Locker
	value    int
	observer Observer
}

// New creates a counter at zero guarded by mu.
func New(mu sync.Locker, opts ...Option) *SharedCounter {
	c := &SharedCounter{mu: mu}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IncrementLoop adds one to the counter iterations times, acquiring the lock
// for each increment. Non-positive counts do nothing.
//
// A failing lock (one that panics in Lock or Unlock) aborts the loop and the
// panic propagates to the caller. The increment in progress is never
// silently skipped.
func (c *SharedCounter) IncrementLoop(iterations int) {
	for i := 0; i < iterations; i++ {
		c.increment()
	}
}

// increment is the critical section. Unlock is deferred so the lock is
// released on every exit path.
func (c *SharedCounter) increment() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.observer != nil {
		c.observer.OnWrite(c.addr())
	}
	c.value++
}

// Value returns the current count.
func (c *SharedCounter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.observer != nil {
		c.observer.OnRead(c.addr())
	}
	return c.value
}

func (c *SharedCounter) addr() uintptr {
	return uintptr(unsafe.Pointer(&c.value))
}
