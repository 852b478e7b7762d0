package detector

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/kolkov/sharedcounter/internal/race/epoch"
	"github.com/kolkov/sharedcounter/internal/race/goroutine"
	"github.com/kolkov/sharedcounter/internal/race/shadowmem"
	"github.com/kolkov/sharedcounter/internal/race/syncshadow"
)

// MaxThreads is the number of distinct goroutines a Detector can track.
// Thread IDs are 16 bits wide in an epoch; handing out more would alias
// two goroutines onto one ID.
const MaxThreads = 1 << epoch.TIDBits

// Detector checks that every access it observes is ordered by
// happens-before with the previous conflicting access.
//
// Goroutines are identified with goroutine.CurrentID and receive a
// RaceContext on first sight. All event handlers run under d.mu, so events
// are processed in a single global order consistent with the real lock
// operations that triggered them.
type Detector struct {
	mu sync.Mutex

	shadowMemory *shadowmem.ShadowMemory
	syncShadow   *syncshadow.SyncShadow

	// contexts maps runtime goroutine IDs to their race context.
	contexts map[int64]*goroutine.RaceContext

	// overflowed is set once MaxThreads goroutines have been seen; events
	// from goroutines beyond the limit are ignored.
	overflowed bool

	reports       []*RaceReport
	reportedRaces map[string]struct{}

	out io.Writer
}

// NewDetector creates a detector that prints race reports to out.
// A nil out selects os.Stderr.
//
// Contexts are kept for every goroutine that ever reported an event and are
// never pruned, so memory grows with the number of goroutines observed. Use
// one Detector per bounded run (such as one counter task), not for
// long-lived processes.
func NewDetector(out io.Writer) *Detector {
	if out == nil {
		out = os.Stderr
	}
	return &Detector{
		shadowMemory:  shadowmem.NewShadowMemory(),
		syncShadow:    syncshadow.NewSyncShadow(),
		contexts:      make(map[int64]*goroutine.RaceContext),
		reportedRaces: make(map[string]struct{}),
		out:           out,
	}
}

// currentContext returns the calling goroutine's context, or nil if the
// thread ID space is exhausted. d.mu must be held.
func (d *Detector) currentContext() *goroutine.RaceContext {
	gid := goroutine.CurrentID()
	if ctx, ok := d.contexts[gid]; ok {
		return ctx
	}
	if len(d.contexts) >= MaxThreads {
		if !d.overflowed {
			d.overflowed = true
			//nolint:errcheck // Best-effort diagnostic output.
			fmt.Fprintf(d.out, "detector: more than %d goroutines observed, ignoring new goroutines\n", MaxThreads)
		}
		return nil
	}

	//nolint:gosec // G115: len(d.contexts) < MaxThreads fits in uint16.
	ctx := goroutine.Alloc(uint16(len(d.contexts)))
	d.contexts[gid] = ctx
	return ctx
}

// OnWrite handles a write to addr.
//
//  1. [SAME EPOCH] If this thread already wrote at this epoch, return.
//  2. Check write-write: previous write must happen before ctx.C.
//  3. Check read-write: every recorded read must happen before ctx.C.
//  4. Record the write, clear the reads, advance the clock.
func (d *Detector) OnWrite(addr uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx := d.currentContext()
	if ctx == nil {
		return
	}
	vs := d.shadowMemory.GetOrCreate(addr)
	cur := ctx.GetEpoch()

	if vs.W == cur {
		return
	}
	if !vs.W.HappensBefore(ctx.C) {
		d.report(RaceTypeWriteWrite, addr, vs.W, cur)
	}
	if read, ok := vs.UnorderedRead(ctx.C); ok {
		d.report(RaceTypeReadWrite, addr, read, cur)
	}

	vs.W = cur
	vs.ClearReads()
	ctx.IncrementClock()
}

// OnRead handles a read of addr. The previous write must happen before the
// reader's clock. Reads concurrent with earlier reads are all kept so the
// next write is checked against each of them.
func (d *Detector) OnRead(addr uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx := d.currentContext()
	if ctx == nil {
		return
	}
	vs := d.shadowMemory.GetOrCreate(addr)
	cur := ctx.GetEpoch()

	if !vs.W.HappensBefore(ctx.C) {
		d.report(RaceTypeWriteRead, addr, vs.W, cur)
	}
	vs.RecordRead(cur, ctx.C)
}

// OnAcquire handles a lock of the primitive at addr: Ct := Ct ⊔ Lm, then
// Ct[t]++.
//
// Call it after the real lock has been acquired.
func (d *Detector) OnAcquire(addr uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx := d.currentContext()
	if ctx == nil {
		return
	}
	ctx.C.Join(d.syncShadow.GetOrCreate(addr).GetReleaseClock())
	ctx.IncrementClock()
}

// OnRelease handles an unlock of the primitive at addr: Lm := Ct, then
// Ct[t]++.
//
// Call it before the real lock is released.
func (d *Detector) OnRelease(addr uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx := d.currentContext()
	if ctx == nil {
		return
	}
	d.syncShadow.GetOrCreate(addr).SetReleaseClock(ctx.C)
	ctx.IncrementClock()
}

// report records a race unless the same location was already reported.
// d.mu must be held.
func (d *Detector) report(kind string, addr uintptr, prev, cur epoch.Epoch) {
	r := NewRaceReport(kind, addr, prev, cur)
	if _, seen := d.reportedRaces[r.DeduplicationKey]; seen {
		return
	}
	d.reportedRaces[r.DeduplicationKey] = struct{}{}
	d.reports = append(d.reports, r)
	r.Format(d.out)
}

// RacesDetected returns the number of unique races found.
func (d *Detector) RacesDetected() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.reports)
}

// Reports returns a copy of the unique race reports in detection order.
func (d *Detector) Reports() []*RaceReport {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*RaceReport, len(d.reports))
	copy(out, d.reports)
	return out
}

// Overflowed reports whether goroutines beyond MaxThreads were ignored.
func (d *Detector) Overflowed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.overflowed
}

// Threads returns the number of goroutines observed so far.
func (d *Detector) Threads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.contexts)
}
