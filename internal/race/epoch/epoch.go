// Package epoch implements logical timestamps for the happens-before checker.
//
// An Epoch packs a worker's thread ID and its clock value into one uint64:
//   - Top 16 bits: Thread ID (0-65535)
//   - Bottom 48 bits: Clock value
//
// Comparing an epoch against a vector clock is O(1), which keeps the check
// on every counter write cheap.
package epoch

import (
	"strconv"

	"github.com/kolkov/sharedcounter/internal/race/vectorclock"
)

// Epoch is a 64-bit logical timestamp. Layout: [TID:16][Clock:48]
//
// Example: 0x0005000000001234 represents TID=5, Clock=0x1234.
type Epoch uint64

const (
	// TIDBits is the number of bits allocated for the thread ID.
	TIDBits = 16

	// ClockBits is the number of bits allocated for the clock value.
	ClockBits = 48

	// ClockMask extracts the clock value (0x0000FFFFFFFFFFFF).
	ClockMask = (1 << ClockBits) - 1
)

// NewEpoch creates an epoch from a thread ID and clock value.
// Clock values beyond 48 bits are truncated.
func NewEpoch(tid uint16, clock uint64) Epoch {
	return Epoch(uint64(tid)<<ClockBits | (clock & ClockMask))
}

// Decode extracts the thread ID and clock value.
func (e Epoch) Decode() (tid uint16, clock uint64) {
	//nolint:gosec // G115: top 16 bits always fit in uint16.
	tid = uint16(e >> ClockBits)
	clock = uint64(e) & ClockMask
	return
}

// TID returns the thread ID.
func (e Epoch) TID() uint16 {
	tid, _ := e.Decode()
	return tid
}

// HappensBefore reports whether the access stamped e is ordered before the
// thread whose clock is vc: e.clock <= vc[e.tid].
//
// The zero epoch happens before everything.
func (e Epoch) HappensBefore(vc *vectorclock.VectorClock) bool {
	tid, clock := e.Decode()
	return clock <= vc.Get(tid)
}

// String returns "clock@tid" (e.g. "42@5").
func (e Epoch) String() string {
	tid, clock := e.Decode()
	return strconv.FormatUint(clock, 10) + "@" + strconv.FormatUint(uint64(tid), 10)
}
