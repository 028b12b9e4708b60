// pkg/report/report.go
package report

import (
	"fmt"
	"io"
	"strings"
)

// ProbeRecord is one backend's answer while checking a single package.
type ProbeRecord struct {
	Backend string `json:"backend" yaml:"backend"`
	Outcome string `json:"outcome" yaml:"outcome"`
}

// Entry is the full result for one checked name, including the raw
// per-backend outcomes so callers can tell "definitely absent" apart
// from "no backend could answer".
type Entry struct {
	Name    string        `json:"name" yaml:"name"`
	Verdict string        `json:"verdict" yaml:"verdict"`
	Probes  []ProbeRecord `json:"probes,omitempty" yaml:"probes,omitempty"`
}

// Report is the outcome of one batch dependency check. It is constructed
// fresh per verification and not mutated afterwards. List order mirrors
// input order, including duplicates.
type Report struct {
	MissingSystem []string `json:"missing_system" yaml:"missing_system"`
	MissingPython []string `json:"missing_python" yaml:"missing_python"`
	PresentSystem []string `json:"present_system" yaml:"present_system"`
	PresentPython []string `json:"present_python" yaml:"present_python"`
	InvalidSystem []string `json:"invalid_system" yaml:"invalid_system"`
	InvalidPython []string `json:"invalid_python" yaml:"invalid_python"`

	// System and Python carry the per-name detail behind the flat lists.
	System []Entry `json:"system" yaml:"system"`
	Python []Entry `json:"python" yaml:"python"`
}

// New returns an empty report with all lists allocated, so a rendered
// empty report shows empty lists rather than nulls.
func New() *Report {
	return &Report{
		MissingSystem: []string{},
		MissingPython: []string{},
		PresentSystem: []string{},
		PresentPython: []string{},
		InvalidSystem: []string{},
		InvalidPython: []string{},
		System:        []Entry{},
		Python:        []Entry{},
	}
}

// OK reports whether every requested package was valid and present.
func (r *Report) OK() bool {
	return len(r.MissingSystem) == 0 && len(r.MissingPython) == 0 &&
		len(r.InvalidSystem) == 0 && len(r.InvalidPython) == 0
}

// Invalid returns how many names were rejected by validation.
func (r *Report) Invalid() int {
	return len(r.InvalidSystem) + len(r.InvalidPython)
}

// Summary renders the report as human-readable status lines: what is
// missing per category, a confirmation line for clean categories, and a
// count of names skipped by validation.
func (r *Report) Summary() []string {
	lines := []string{}

	if len(r.MissingSystem) > 0 {
		lines = append(lines, fmt.Sprintf("Missing system packages: %s", strings.Join(r.MissingSystem, ", ")))
	} else {
		lines = append(lines, "All system packages installed")
	}

	if len(r.MissingPython) > 0 {
		lines = append(lines, fmt.Sprintf("Missing Python packages: %s", strings.Join(r.MissingPython, ", ")))
	} else {
		lines = append(lines, "All Python packages installed")
	}

	if len(r.MissingSystem) > 0 || len(r.MissingPython) > 0 {
		lines = append(lines, "Skipping already installed packages; install the missing ones before proceeding")
	}

	if n := r.Invalid(); n > 0 {
		lines = append(lines, fmt.Sprintf("Skipped %d invalid package name(s)", n))
	}

	return lines
}

// Render writes the summary lines to w
func (r *Report) Render(w io.Writer) error {
	for _, line := range r.Summary() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}
