package syncshadow

import (
	"sync"
	"testing"

	"github.com/kolkov/sharedcounter/internal/race/vectorclock"
)

// TestGetOrCreate_FirstAccess verifies a new SyncVar has no release clock.
func TestGetOrCreate_FirstAccess(t *testing.T) {
	sv := NewSyncShadow().GetOrCreate(0x1234)
	if sv == nil {
		t.Fatal("GetOrCreate returned nil")
	}
	if sv.GetReleaseClock() != nil {
		t.Error("expected nil release clock before first release")
	}
}

// TestGetOrCreate_Cached verifies the same SyncVar is returned per address.
func TestGetOrCreate_Cached(t *testing.T) {
	shadow := NewSyncShadow()
	if shadow.GetOrCreate(0x1234) != shadow.GetOrCreate(0x1234) {
		t.Error("different SyncVar for same address")
	}
	if shadow.GetOrCreate(0x1234) == shadow.GetOrCreate(0x5678) {
		t.Error("same SyncVar for different addresses")
	}
}

// TestGetOrCreate_Concurrent verifies racing creators agree on one SyncVar.
func TestGetOrCreate_Concurrent(t *testing.T) {
	shadow := NewSyncShadow()
	results := make([]*SyncVar, 16)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = shadow.GetOrCreate(0xABCD)
		}(i)
	}
	wg.Wait()

	for i, sv := range results {
		if sv != results[0] {
			t.Fatalf("goroutine %d got a different SyncVar", i)
		}
	}
}

// TestSyncVar_SetReleaseClock verifies the stored clock is a private copy.
func TestSyncVar_SetReleaseClock(t *testing.T) {
	sv := &SyncVar{}
	vc := vectorclock.New()
	vc.Set(0, 10)

	sv.SetReleaseClock(vc)
	vc.Set(0, 99)

	got := sv.GetReleaseClock()
	if got == nil {
		t.Fatal("release clock is nil after SetReleaseClock")
	}
	if got.Get(0) != 10 {
		t.Errorf("release clock[0] = %d, want 10 (must not alias caller clock)", got.Get(0))
	}
}
