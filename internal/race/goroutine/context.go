package goroutine

import (
	"github.com/kolkov/sharedcounter/internal/race/epoch"
	"github.com/kolkov/sharedcounter/internal/race/vectorclock"
)

// RaceContext is the happens-before state of one goroutine.
//
// Invariant: Epoch == epoch.NewEpoch(TID, C.Get(TID)). IncrementClock
// maintains it; Join only touches other threads' entries plus a following
// IncrementClock, so the cache never goes stale.
type RaceContext struct {
	// TID is the dense thread ID assigned by the detector.
	TID uint16

	// C is the goroutine's vector clock.
	C *vectorclock.VectorClock

	// Epoch caches C[TID].
	Epoch epoch.Epoch
}

// Alloc creates a context for tid at the beginning of logical time.
//
// The own clock starts at 1 so that this goroutine's first access is not
// ordered before threads that have never synchronized with it (their view
// of tid is 0).
func Alloc(tid uint16) *RaceContext {
	ctx := &RaceContext{
		TID: tid,
		C:   vectorclock.New(),
	}
	ctx.IncrementClock()
	return ctx
}

// IncrementClock advances this goroutine's logical time.
func (rc *RaceContext) IncrementClock() {
	rc.C.Increment(rc.TID)
	rc.Epoch = epoch.NewEpoch(rc.TID, rc.C.Get(rc.TID))
}

// GetEpoch returns the cached epoch.
func (rc *RaceContext) GetEpoch() epoch.Epoch {
	return rc.Epoch
}
