// Package shadowmem stores the access history of observed variables.
//
// Each address gets a VarState recording the epoch of its last write and
// last read. The detector compares those epochs with the current goroutine's
// vector clock: an access that is not ordered after a conflicting previous
// access is a race.
//
// Reads are tracked with a single epoch while they are ordered with each
// other. When two threads read without synchronizing, the cell is promoted
// to a read vector clock holding one entry per reader, so a later write is
// checked against every unordered read. The next write demotes it again.
package shadowmem
