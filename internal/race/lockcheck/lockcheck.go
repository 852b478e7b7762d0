// Package lockcheck provides an instrumented sync.Locker for verifying mutual
// exclusion.
//
// Mutex wraps another Locker and counts how many goroutines believe they
// hold it at once. With a correct inner lock the count never exceeds one;
// a broken lock shows up as overlapping acquisitions. When a Detector is
// attached, every Lock and Unlock is also reported as an acquire/release
// event so counter accesses can be checked for happens-before ordering.
//
//	det := detector.NewDetector(nil)
//	mu := lockcheck.New(&sync.Mutex{}, det)
//	c := counter.New(mu, counter.WithObserver(det))
package lockcheck

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/kolkov/sharedcounter/internal/race/detector"
)

// Stats summarizes the acquisitions a Mutex has seen.
type Stats struct {
	Acquisitions int64 // Completed Lock calls.
	Overlaps     int64 // Lock calls that found another holder inside.
	MaxHolders   int32 // Highest simultaneous holder count observed.
}

// Mutex is an instrumented sync.Locker.
type Mutex struct {
	inner sync.Locker
	det   *detector.Detector

	holders      atomic.Int32
	maxHolders   atomic.Int32
	overlaps     atomic.Int64
	acquisitions atomic.Int64
}

// New wraps inner. det may be nil.
func New(inner sync.Locker, det *detector.Detector) *Mutex {
	return &Mutex{inner: inner, det: det}
}

// Lock acquires the inner lock and records the acquisition.
func (m *Mutex) Lock() {
	m.inner.Lock()

	n := m.holders.Add(1)
	if n > 1 {
		m.overlaps.Add(1)
	}
	for {
		prev := m.maxHolders.Load()
		if n <= prev || m.maxHolders.CompareAndSwap(prev, n) {
			break
		}
	}
	m.acquisitions.Add(1)

	if m.det != nil {
		m.det.OnAcquire(m.addr())
	}
}

// Unlock records the release and unlocks the inner lock.
func (m *Mutex) Unlock() {
	if m.det != nil {
		m.det.OnRelease(m.addr())
	}
	m.holders.Add(-1)
	m.inner.Unlock()
}

// Stats returns a snapshot of the acquisition counters.
func (m *Mutex) Stats() Stats {
	return Stats{
		Acquisitions: m.acquisitions.Load(),
		Overlaps:     m.overlaps.Load(),
		MaxHolders:   m.maxHolders.Load(),
	}
}

func (m *Mutex) addr() uintptr {
	return uintptr(unsafe.Pointer(m))
}

// NopLocker is a Locker that provides no exclusion. It exists to show what
// Mutex and the detector report when a lock is broken.
type NopLocker struct{}

// Lock does nothing.
func (NopLocker) Lock() {}

// Unlock does nothing.
func (NopLocker) Unlock() {}
