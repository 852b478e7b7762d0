package counter

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the current release of sharedcounter.
const Version = "v0.1.0"

// Info describes the build and the task it runs.
type Info struct {
	// Version is the full semantic version, e.g. "v0.1.0".
	Version string

	// Major is the major version prefix, e.g. "v0".
	Major string

	// MajorMinor is the major.minor prefix, e.g. "v0.1".
	MajorMinor string

	// Prerelease is the pre-release suffix, e.g. "-rc.1", or empty.
	Prerelease string

	// Workers and Iterations are the fixed task parameters.
	Workers    int
	Iterations int
}

// GetInfo returns version and task information.
//
// Example:
//
//	info := counter.GetInfo()
//	fmt.Printf("sharedcounter %s (%d×%d)\n", info.Version, info.Workers, info.Iterations)
func GetInfo() Info {
	return newInfo(Version)
}

func newInfo(v string) Info {
	return Info{
		Version:    v,
		Major:      semver.Major(v),
		MajorMinor: semver.MajorMinor(v),
		Prerelease: semver.Prerelease(v),
		Workers:    WorkerCount,
		Iterations: Iterations,
	}
}

// ValidateVersion reports whether v is a valid semantic version with the
// leading "v" the Go toolchain expects.
func ValidateVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version %q: want semantic version like v1.2.3", v)
	}
	if semver.Canonical(v) != v {
		return fmt.Errorf("version %q is not canonical (want %q)", v, semver.Canonical(v))
	}
	return nil
}
