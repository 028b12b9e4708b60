// pkg/platform/detect.go
package platform

import (
	"os"
	"runtime"
	"strings"

	"github.com/arc-language/preflight/pkg/backend"
)

// Platform describes the host as seen by the checker: which query tools
// are actually on PATH and which package manager the OS claims as native.
// It is diagnostic only; probing always walks the fixed priority order.
type Platform struct {
	OS        string         // linux, darwin, windows
	Arch      string         // amd64, arm64, ...
	Available []backend.Kind // backends whose query tool is on PATH
	Native    backend.Kind   // what the OS metadata suggests, "" if unknown
}

// Detect inspects the current host. It never fails: a host with no
// package managers simply reports an empty Available list.
func Detect() *Platform {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []backend.Kind{},
	}

	for _, kind := range backend.PriorityOrder {
		if commandExists(kind.Executable()) {
			p.Available = append(p.Available, kind)
		}
	}

	if data, err := os.ReadFile("/etc/os-release"); err == nil {
		p.Native = nativeFromOSRelease(string(data))
	}

	return p
}

// nativeFromOSRelease maps distribution identifiers onto the backend that
// distribution ships with.
func nativeFromOSRelease(content string) backend.Kind {
	content = strings.ToLower(content)

	switch {
	case strings.Contains(content, "alpine"):
		return backend.KindApk
	case strings.Contains(content, "fedora"),
		strings.Contains(content, "rhel"),
		strings.Contains(content, "centos"):
		return backend.KindRpm
	case strings.Contains(content, "debian"),
		strings.Contains(content, "ubuntu"):
		return backend.KindDpkg
	default:
		return ""
	}
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	kinds := make([]string, 0, len(p.Available))
	for _, k := range p.Available {
		kinds = append(kinds, k.String())
	}
	s := p.OS + "/" + p.Arch + " (available: " + strings.Join(kinds, ", ") + ")"
	if p.Native != "" {
		s += " native: " + p.Native.String()
	}
	return s
}
