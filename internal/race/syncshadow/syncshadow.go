package syncshadow

import (
	"sync"

	"github.com/kolkov/sharedcounter/internal/race/vectorclock"
)

// SyncShadow maps synchronization primitive addresses to their SyncVar.
//
// Entries are created on first access and never freed. Safe for concurrent
// use.
type SyncShadow struct {
	vars sync.Map // map[uintptr]*SyncVar
}

// NewSyncShadow creates an empty SyncShadow.
func NewSyncShadow() *SyncShadow {
	return &SyncShadow{}
}

// GetOrCreate returns the SyncVar for addr, creating it if needed.
// Concurrent callers for the same address receive the same SyncVar.
func (s *SyncShadow) GetOrCreate(addr uintptr) *SyncVar {
	if val, ok := s.vars.Load(addr); ok {
		return val.(*SyncVar)
	}
	val, _ := s.vars.LoadOrStore(addr, &SyncVar{})
	return val.(*SyncVar)
}

// SyncVar holds the release clock of one lock.
//
// The clock is a private copy; later changes to the releasing goroutine's
// clock do not leak into it.
type SyncVar struct {
	mu           sync.Mutex
	releaseClock *vectorclock.VectorClock
}

// GetReleaseClock returns the clock captured at the last release, or nil if
// the lock was never released.
func (sv *SyncVar) GetReleaseClock() *vectorclock.VectorClock {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return sv.releaseClock
}

// SetReleaseClock stores a copy of vc as the release clock.
func (sv *SyncVar) SetReleaseClock(vc *vectorclock.VectorClock) {
	clone := vc.Clone()
	sv.mu.Lock()
	sv.releaseClock = clone
	sv.mu.Unlock()
}
