package goroutine

import (
	"sync"
	"testing"

	"github.com/kolkov/sharedcounter/internal/race/epoch"
)

// TestAlloc verifies a new context starts at clock 1.
func TestAlloc(t *testing.T) {
	ctx := Alloc(3)

	if ctx.TID != 3 {
		t.Errorf("TID = %d, want 3", ctx.TID)
	}
	if got := ctx.C.Get(3); got != 1 {
		t.Errorf("C[3] = %d, want 1", got)
	}
	if ctx.GetEpoch() != epoch.NewEpoch(3, 1) {
		t.Errorf("Epoch = %s, want 1@3", ctx.GetEpoch())
	}
}

// TestAlloc_FirstAccessUnordered verifies a fresh thread's first epoch is
// not ordered before a thread that never synchronized with it.
func TestAlloc_FirstAccessUnordered(t *testing.T) {
	a, b := Alloc(0), Alloc(1)
	if a.GetEpoch().HappensBefore(b.C) {
		t.Error("fresh thread epoch happens-before unrelated thread")
	}
}

// TestIncrementClock verifies the epoch cache follows C[TID].
func TestIncrementClock(t *testing.T) {
	ctx := Alloc(7)
	for i := 0; i < 10; i++ {
		ctx.IncrementClock()
	}

	if got := ctx.C.Get(7); got != 11 {
		t.Errorf("C[7] = %d, want 11", got)
	}
	if want := epoch.NewEpoch(7, 11); ctx.GetEpoch() != want {
		t.Errorf("Epoch = %s, want %s", ctx.GetEpoch(), want)
	}
	if ctx.C.Get(0) != 0 {
		t.Errorf("C[0] = %d, other threads must be untouched", ctx.C.Get(0))
	}
}

// TestParseGID tests parsing of runtime.Stack headers.
func TestParseGID(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want int64
	}{
		{"typical", "goroutine 123 [running]:\nmain.main()", 123},
		{"single digit", "goroutine 1 [running]:", 1},
		{"empty", "", 0},
		{"wrong prefix", "thread 5 [running]:", 0},
		{"no digits", "goroutine  [running]:", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseGID([]byte(tt.buf)); got != tt.want {
				t.Errorf("parseGID(%q) = %d, want %d", tt.buf, got, tt.want)
			}
		})
	}
}

// TestCurrentID verifies IDs are positive, stable, and distinct per goroutine.
func TestCurrentID(t *testing.T) {
	id := CurrentID()
	if id <= 0 {
		t.Fatalf("CurrentID() = %d, want > 0", id)
	}
	if again := CurrentID(); again != id {
		t.Errorf("CurrentID() changed within goroutine: %d then %d", id, again)
	}

	var other int64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		other = CurrentID()
	}()
	wg.Wait()

	if other == id {
		t.Errorf("two goroutines share ID %d", id)
	}
}
