package detector

import (
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/sharedcounter/internal/race/epoch"
)

// AccessType represents the type of memory access (Read or Write).
type AccessType int

const (
	// AccessRead indicates a read memory access.
	AccessRead AccessType = iota
	// AccessWrite indicates a write memory access.
	AccessWrite
)

// String returns the string representation of an AccessType.
func (a AccessType) String() string {
	switch a {
	case AccessRead:
		return "Read"
	case AccessWrite:
		return "Write"
	default:
		return "Unknown"
	}
}

// Race type constants for deduplication and reporting.
const (
	// RaceTypeWriteWrite indicates a write-write data race.
	RaceTypeWriteWrite = "write-write"
	// RaceTypeReadWrite indicates a read followed by an unordered write.
	RaceTypeReadWrite = "read-write"
	// RaceTypeWriteRead indicates a write followed by an unordered read.
	RaceTypeWriteRead = "write-read"
)

// AccessInfo describes one side of a race.
type AccessInfo struct {
	Type  AccessType
	Addr  uintptr
	TID   uint16      // Detector thread ID (not the runtime goroutine ID).
	Epoch epoch.Epoch // Logical time of the access.
}

// RaceReport is a detected race between two accesses to the same address.
type RaceReport struct {
	// Kind is one of RaceTypeWriteWrite, RaceTypeReadWrite, RaceTypeWriteRead.
	Kind string

	// Current is the access that triggered detection.
	Current AccessInfo

	// Previous is the earlier conflicting access.
	Previous AccessInfo

	// DeduplicationKey identifies the race location.
	// Format: "{kind}:{addr}:{tid1}:{tid2}" with tid1 <= tid2.
	DeduplicationKey string
}

// NewRaceReport builds a report from the epochs of the two accesses.
// Unknown kinds are reported as write-write.
func NewRaceReport(kind string, addr uintptr, prevEpoch, currEpoch epoch.Epoch) *RaceReport {
	r := &RaceReport{
		Kind:     kind,
		Current:  AccessInfo{Addr: addr, TID: currEpoch.TID(), Epoch: currEpoch},
		Previous: AccessInfo{Addr: addr, TID: prevEpoch.TID(), Epoch: prevEpoch},
	}

	switch kind {
	case RaceTypeReadWrite:
		r.Current.Type = AccessWrite
		r.Previous.Type = AccessRead
	case RaceTypeWriteRead:
		r.Current.Type = AccessRead
		r.Previous.Type = AccessWrite
	default:
		r.Kind = RaceTypeWriteWrite
		r.Current.Type = AccessWrite
		r.Previous.Type = AccessWrite
	}

	r.DeduplicationKey = generateDeduplicationKey(r.Kind, addr, r.Previous.TID, r.Current.TID)
	return r
}

// generateDeduplicationKey sorts the thread IDs so a race between A and B
// produces the same key whichever side detected it.
func generateDeduplicationKey(kind string, addr uintptr, tid1, tid2 uint16) string {
	return fmt.Sprintf("%s:0x%x:%d:%d", kind, addr, min(tid1, tid2), max(tid1, tid2))
}

// Format writes the report in the style of Go's race detector:
//
//	==================
//	WARNING: DATA RACE
//	Write at 0x000000c0000180a0 by thread 2:
//	  [epoch: 1@2]
//
//	Previous write at 0x000000c0000180a0 by thread 1:
//	  [epoch: 100000@1]
//	==================
//
//nolint:errcheck // Best-effort diagnostic output.
func (r *RaceReport) Format(w io.Writer) {
	fmt.Fprintf(w, "==================\n")
	fmt.Fprintf(w, "WARNING: DATA RACE\n")
	fmt.Fprintf(w, "%s at 0x%016x by thread %d:\n", r.Current.Type, r.Current.Addr, r.Current.TID)
	fmt.Fprintf(w, "  [epoch: %s]\n", r.Current.Epoch)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Previous %s at 0x%016x by thread %d:\n",
		strings.ToLower(r.Previous.Type.String()), r.Previous.Addr, r.Previous.TID)
	fmt.Fprintf(w, "  [epoch: %s]\n", r.Previous.Epoch)
	fmt.Fprintf(w, "==================\n")
}

// String returns the formatted report.
func (r *RaceReport) String() string {
	var buf strings.Builder
	r.Format(&buf)
	return buf.String()
}
