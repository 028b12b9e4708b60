// pkg/core/interface.go
package core

import "context"

// Verdict is the final presence classification for one package name.
type Verdict int

const (
	// VerdictMissing means the package could not be confirmed present.
	// This covers both an authoritative "not installed" from a backend and
	// the conservative default when no backend could be queried at all.
	VerdictMissing Verdict = iota

	// VerdictPresent means a backend confirmed the package is installed.
	VerdictPresent
)

// String returns the string representation of the verdict
func (v Verdict) String() string {
	if v == VerdictPresent {
		return "present"
	}
	return "missing"
}

// PackageChecker is the common capability of all presence checkers.
// Implementations never return an error: any failure to verify presence
// degrades to VerdictMissing.
type PackageChecker interface {
	// Check reports whether the named package is present on this host.
	// It is only ever called with an already-validated name.
	Check(ctx context.Context, name string) Verdict
}
