// Package syncshadow tracks release clocks for synchronization primitives.
//
// Each lock address maps to a SyncVar holding the vector clock captured at
// its last Unlock. The next Lock joins that clock, which creates the
// happens-before edge Unlock(m) → Lock(m):
//
//	Acquire(m):  Ct := Ct ⊔ Lm
//	             Ct[t]++
//
//	Release(m):  Lm := Ct
//	             Ct[t]++
package syncshadow
