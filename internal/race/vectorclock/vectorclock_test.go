package vectorclock

import "testing"

// TestVectorClockNew verifies a new clock reads zero everywhere.
func TestVectorClockNew(t *testing.T) {
	vc := New()
	for _, tid := range []uint16{0, 1, 100, 65535} {
		if got := vc.Get(tid); got != 0 {
			t.Errorf("Get(%d) = %d, want 0", tid, got)
		}
	}
	if got := vc.String(); got != "{}" {
		t.Errorf("String() = %q, want %q", got, "{}")
	}
}

// TestVectorClockSetGrows verifies Set and Increment allocate on demand.
func TestVectorClockSetGrows(t *testing.T) {
	vc := New()
	vc.Set(3, 7)
	vc.Increment(5)

	if vc.Get(3) != 7 || vc.Get(5) != 1 || vc.Get(4) != 0 {
		t.Errorf("clock = %s, want {3:7, 5:1}", vc)
	}
}

// TestVectorClockClone verifies clones are independent.
func TestVectorClockClone(t *testing.T) {
	vc := New()
	vc.Set(0, 10)
	vc.Set(1, 20)

	clone := vc.Clone()
	clone.Increment(0)
	vc.Set(1, 99)

	if clone.Get(0) != 11 || clone.Get(1) != 20 {
		t.Errorf("clone = %s, want {0:11, 1:20}", clone)
	}
	if vc.Get(0) != 10 {
		t.Errorf("original Get(0) = %d, want 10", vc.Get(0))
	}
}

// TestVectorClockJoin tests point-wise maximum across lengths.
func TestVectorClockJoin(t *testing.T) {
	a := New()
	a.Set(0, 5)
	a.Set(1, 1)

	b := New()
	b.Set(1, 3)
	b.Set(2, 4)

	a.Join(b)

	want := map[uint16]uint64{0: 5, 1: 3, 2: 4}
	for tid, clock := range want {
		if got := a.Get(tid); got != clock {
			t.Errorf("after Join Get(%d) = %d, want %d", tid, got, clock)
		}
	}

	// Join(nil) is a no-op (lock never released).
	a.Join(nil)
	if a.Get(2) != 4 {
		t.Error("Join(nil) modified the clock")
	}
}

// TestVectorClockJoinCommutative verifies a ⊔ b == b ⊔ a.
func TestVectorClockJoinCommutative(t *testing.T) {
	a := New()
	a.Set(0, 2)
	a.Set(3, 9)
	b := New()
	b.Set(0, 7)
	b.Set(1, 1)

	ab := a.Clone()
	ab.Join(b)
	ba := b.Clone()
	ba.Join(a)

	if !ab.LessOrEqual(ba) || !ba.LessOrEqual(ab) {
		t.Errorf("a⊔b = %s, b⊔a = %s", ab, ba)
	}
}

// TestVectorClockLessOrEqual tests the partial order.
func TestVectorClockLessOrEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b map[uint16]uint64
		want bool
	}{
		{"both empty", nil, nil, true},
		{"equal", map[uint16]uint64{0: 1, 1: 2}, map[uint16]uint64{0: 1, 1: 2}, true},
		{"strictly less", map[uint16]uint64{0: 1}, map[uint16]uint64{0: 2, 1: 1}, true},
		{"greater in one", map[uint16]uint64{0: 3}, map[uint16]uint64{0: 2, 1: 5}, false},
		{"concurrent", map[uint16]uint64{0: 1, 1: 0}, map[uint16]uint64{0: 0, 1: 1}, false},
		{"longer but zero tail", map[uint16]uint64{0: 1, 4: 0}, map[uint16]uint64{0: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := New(), New()
			for tid, c := range tt.a {
				a.Set(tid, c)
			}
			for tid, c := range tt.b {
				b.Set(tid, c)
			}
			if got := a.LessOrEqual(b); got != tt.want {
				t.Errorf("%s ⊑ %s = %v, want %v", a, b, got, tt.want)
			}
		})
	}
}

// TestVectorClockFirstAfter tests locating the entry that breaks vc ⊑ other.
func TestVectorClockFirstAfter(t *testing.T) {
	vc := New()
	vc.Set(0, 1)
	vc.Set(2, 5)
	vc.Set(3, 9)

	other := New()
	other.Set(0, 4)
	other.Set(2, 4)

	tid, clock, ok := vc.FirstAfter(other)
	if !ok || tid != 2 || clock != 5 {
		t.Errorf("FirstAfter() = (%d, %d, %v), want (2, 5, true)", tid, clock, ok)
	}

	other.Set(2, 5)
	other.Set(3, 9)
	if _, _, ok := vc.FirstAfter(other); ok {
		t.Errorf("FirstAfter() found an entry although %s ⊑ %s", vc, other)
	}
}

// TestVectorClockString tests the debug format.
func TestVectorClockString(t *testing.T) {
	vc := New()
	if got := vc.String(); got != "{}" {
		t.Errorf("empty String() = %q, want %q", got, "{}")
	}

	vc.Set(0, 50)
	vc.Set(2, 30)
	if got, want := vc.String(), "{0:50, 2:30}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// BenchmarkVectorClockJoin benchmarks joining two-worker clocks.
func BenchmarkVectorClockJoin(b *testing.B) {
	a, other := New(), New()
	a.Set(0, 10)
	other.Set(1, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Join(other)
	}
}
