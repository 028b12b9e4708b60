// pkg/backend/types.go
package backend

// Kind identifies a package-manager query backend
type Kind string

const (
	// KindDpkg queries the Debian/Ubuntu package database
	KindDpkg Kind = "dpkg"
	// KindRpm queries the RPM package database (RedHat/CentOS/Fedora)
	KindRpm Kind = "rpm"
	// KindApk queries the Alpine package database
	KindApk Kind = "apk"
	// KindYum queries via yum on older RedHat systems
	KindYum Kind = "yum"
)

// PriorityOrder is the fixed order in which backends are tried for a
// single package. A backend that is unavailable on the host is skipped;
// the first one that answers is authoritative.
var PriorityOrder = []Kind{KindDpkg, KindRpm, KindApk, KindYum}

// queryCommand is one backend's fixed "is this package installed" invocation.
// The package name is appended as a single literal argument, never passed
// through a shell.
type queryCommand struct {
	executable string
	args       []string
}

// queryCommands is the flat table behind all four backends. Exit status 0
// means installed; any nonzero status means not installed.
var queryCommands = map[Kind]queryCommand{
	KindDpkg: {executable: "dpkg", args: []string{"-s"}},
	KindRpm:  {executable: "rpm", args: []string{"-q"}},
	KindApk:  {executable: "apk", args: []string{"info", "-e"}},
	KindYum:  {executable: "yum", args: []string{"list", "installed"}},
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the kind is one of the known backends
func (k Kind) IsValid() bool {
	_, ok := queryCommands[k]
	return ok
}

// Executable returns the query tool this backend invokes
func (k Kind) Executable() string {
	return queryCommands[k].executable
}

// Outcome is the tri-state result of one backend probe.
type Outcome int

const (
	// OutcomeUnavailable means the backend itself could not answer: its
	// executable is not on the host, the probe timed out, or spawning
	// failed. The caller should try the next backend.
	OutcomeUnavailable Outcome = iota

	// OutcomeInstalled means the backend confirmed the package is installed.
	OutcomeInstalled

	// OutcomeNotInstalled means the backend answered and the package is
	// not installed. This is authoritative; lower-priority backends are
	// not consulted.
	OutcomeNotInstalled
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeInstalled:
		return "installed"
	case OutcomeNotInstalled:
		return "not-installed"
	default:
		return "unavailable"
	}
}

// ProbeResult records the outcome of probing one backend for one package.
// SystemPackagePresence folds these into a single verdict but keeps the
// raw sequence so callers can distinguish "definitely absent" from
// "could not check".
type ProbeResult struct {
	Backend Kind
	Outcome Outcome
}
