package shadowmem

import (
	"sync"

	"github.com/kolkov/sharedcounter/internal/race/epoch"
	"github.com/kolkov/sharedcounter/internal/race/vectorclock"
)

// VarState is the shadow cell for one variable.
//
// Reads use an adaptive representation:
//   - readClock == nil: R holds the single last read (common case)
//   - readClock != nil: reads from several unordered threads, one entry each
//
// A zero VarState represents a variable that was never accessed; its zero
// epochs happen before every clock. Callers serialize access to a VarState.
type VarState struct {
	W epoch.Epoch // Last write.
	R epoch.Epoch // Last read, valid while readClock is nil.

	readClock *vectorclock.VectorClock
}

// RecordRead stores the read cur made by a thread whose clock is vc.
//
// If the previous read is ordered before vc it is simply replaced. Otherwise
// the two reads are concurrent and both must be kept, so the cell is
// promoted to a read vector clock.
func (vs *VarState) RecordRead(cur epoch.Epoch, vc *vectorclock.VectorClock) {
	tid, clock := cur.Decode()
	if vs.readClock != nil {
		vs.readClock.Set(tid, clock)
		return
	}
	if vs.R.HappensBefore(vc) {
		vs.R = cur
		return
	}

	prevTID, prevClock := vs.R.Decode()
	vs.readClock = vectorclock.New()
	vs.readClock.Set(prevTID, prevClock)
	vs.readClock.Set(tid, clock)
	vs.R = 0
}

// UnorderedRead returns a recorded read that is not ordered before vc, if
// any. A writer with clock vc races with that read.
func (vs *VarState) UnorderedRead(vc *vectorclock.VectorClock) (epoch.Epoch, bool) {
	if vs.readClock == nil {
		if vs.R.HappensBefore(vc) {
			return 0, false
		}
		return vs.R, true
	}
	if vs.readClock.LessOrEqual(vc) {
		return 0, false
	}
	tid, clock, _ := vs.readClock.FirstAfter(vc)
	return epoch.NewEpoch(tid, clock), true
}

// Promoted reports whether reads are tracked with a vector clock.
func (vs *VarState) Promoted() bool {
	return vs.readClock != nil
}

// ClearReads drops all read history and demotes the cell. A write
// dominates every earlier read.
func (vs *VarState) ClearReads() {
	vs.R = 0
	vs.readClock = nil
}

// ShadowMemory maps addresses to VarState cells.
//
// GetOrCreate is safe for concurrent use. Reads and writes of the returned
// VarState must be serialized by the caller.
type ShadowMemory struct {
	cells sync.Map // map[uintptr]*VarState
}

// NewShadowMemory creates an empty shadow memory.
func NewShadowMemory() *ShadowMemory {
	return &ShadowMemory{}
}

// GetOrCreate returns the cell for addr, allocating it on first access.
func (sm *ShadowMemory) GetOrCreate(addr uintptr) *VarState {
	if val, ok := sm.cells.Load(addr); ok {
		return val.(*VarState)
	}
	actual, _ := sm.cells.LoadOrStore(addr, &VarState{})
	return actual.(*VarState)
}
