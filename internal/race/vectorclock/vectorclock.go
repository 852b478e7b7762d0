// Package vectorclock implements vector clocks for tracking happens-before
// relations between workers.
//
// Key operations:
//   - Join: point-wise maximum, used on lock acquire
//   - LessOrEqual: partial order, used to check read-shared variables
//     against a writer
//
// Clocks grow on demand. A missing entry reads as zero, so clocks of
// different lengths compare correctly.
package vectorclock

import (
	"strconv"
	"strings"
)

// VectorClock stores one logical clock per thread ID.
//
// Example: {0:50, 1:30} means thread 0 is at 50 and thread 1 at 30.
type VectorClock struct {
	clocks []uint64
}

// New creates an empty vector clock (all threads at time 0).
func New() *VectorClock {
	return &VectorClock{}
}

// Clone returns a deep copy.
func (vc *VectorClock) Clone() *VectorClock {
	clone := &VectorClock{clocks: make([]uint64, len(vc.clocks))}
	copy(clone.clocks, vc.clocks)
	return clone
}

// Join performs point-wise maximum: vc = vc ⊔ other.
//
// Used when a thread acquires a lock: Ct := Ct ⊔ Lm.
func (vc *VectorClock) Join(other *VectorClock) {
	if other == nil {
		return
	}
	vc.grow(len(other.clocks))
	for i, c := range other.clocks {
		if c > vc.clocks[i] {
			vc.clocks[i] = c
		}
	}
}

// LessOrEqual reports whether vc ⊑ other, i.e. vc[i] <= other[i] for all i.
func (vc *VectorClock) LessOrEqual(other *VectorClock) bool {
	for i, c := range vc.clocks {
		if c > other.Get(uint16(i)) { //nolint:gosec // G115: len bounded by uint16 TIDs.
			return false
		}
	}
	return true
}

// Increment advances the clock for thread tid.
func (vc *VectorClock) Increment(tid uint16) {
	vc.grow(int(tid) + 1)
	vc.clocks[tid]++
}

// Get returns the clock value for thread tid.
func (vc *VectorClock) Get(tid uint16) uint64 {
	if int(tid) >= len(vc.clocks) {
		return 0
	}
	return vc.clocks[tid]
}

// Set sets the clock value for thread tid.
func (vc *VectorClock) Set(tid uint16, clock uint64) {
	vc.grow(int(tid) + 1)
	vc.clocks[tid] = clock
}

// FirstAfter returns the lowest thread whose entry in vc exceeds the
// entry in other. ok is false when vc ⊑ other.
func (vc *VectorClock) FirstAfter(other *VectorClock) (tid uint16, clock uint64, ok bool) {
	for i, c := range vc.clocks {
		t := uint16(i) //nolint:gosec // G115: len bounded by uint16 TIDs.
		if c > other.Get(t) {
			return t, c, true
		}
	}
	return 0, 0, false
}

func (vc *VectorClock) grow(n int) {
	if n > len(vc.clocks) {
		vc.clocks = append(vc.clocks, make([]uint64, n-len(vc.clocks))...)
	}
}

// String returns "{tid:clock, ...}" listing non-zero entries only.
func (vc *VectorClock) String() string {
	var parts []string
	for i, c := range vc.clocks {
		if c != 0 {
			parts = append(parts, strconv.Itoa(i)+":"+strconv.FormatUint(c, 10))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
