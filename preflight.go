// preflight.go
package preflight

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/semaphore"
	"github.com/arc-language/preflight/pkg/backend"
	"github.com/arc-language/preflight/pkg/core"
	"github.com/arc-language/preflight/pkg/pkgname"
	"github.com/arc-language/preflight/pkg/python"
	"github.com/arc-language/preflight/pkg/report"
)

// Re-export the types callers need for a batch check
type (
	Config  = core.Config
	Verdict = core.Verdict
	Report  = report.Report
	Entry   = report.Entry
)

// Re-export verdict constants
const (
	VerdictPresent = core.VerdictPresent
	VerdictMissing = core.VerdictMissing
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// SystemChecker is the capability Verify needs for system packages. The
// trace form is required so reports can expose per-backend outcomes.
type SystemChecker interface {
	Trace(ctx context.Context, name string) (core.Verdict, []backend.ProbeResult)
}

// PythonChecker is the capability Verify needs for Python modules.
type PythonChecker interface {
	Check(ctx context.Context, name string) core.Verdict
}

// Checker runs batch dependency checks. Every Verify call is independent:
// no state is shared across calls and nothing on the host is modified.
type Checker struct {
	system SystemChecker
	python PythonChecker
	sem    *semaphore.Weighted
	logger *log.Logger
}

// New creates a checker with the production probes configured from cfg.
func New(cfg *core.Config) *Checker {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	cfg.Normalize()
	return NewWithCheckers(cfg, backend.NewChecker(cfg), python.NewChecker(cfg))
}

// NewWithCheckers creates a checker around explicit presence checkers.
// Tests use this to substitute fakes.
func NewWithCheckers(cfg *core.Config, system SystemChecker, py PythonChecker) *Checker {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	cfg.Normalize()
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Checker{
		system: system,
		python: py,
		sem:    semaphore.NewWeighted(int64(cfg.MaxProbes)),
		logger: logger,
	}
}

// Verify checks the presence of the given system packages and Python
// modules and returns a fresh report. It never returns an error:
//
//   - nil or empty inputs yield a report with empty lists
//   - names failing validation land in the invalid lists and are never
//     passed anywhere near a process boundary
//   - valid names are checked concurrently, bounded by the configured
//     probe limit, and no single failure or hang aborts the batch
//
// Report order mirrors input order, duplicates included.
func (c *Checker) Verify(ctx context.Context, systemPkgs, pythonPkgs []string) *report.Report {
	if ctx == nil {
		ctx = context.Background()
	}

	validSys, invalidSys := pkgname.Partition(systemPkgs)
	validPy, invalidPy := pkgname.Partition(pythonPkgs)

	// Results are written into position-indexed slots so the report
	// reflects input order, not completion order.
	sysEntries := make([]report.Entry, len(validSys))
	pyEntries := make([]report.Entry, len(validPy))

	var wg sync.WaitGroup
	for i, name := range validSys {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sysEntries[i] = c.checkSystem(ctx, name)
		}(i, name)
	}
	for i, name := range validPy {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			pyEntries[i] = c.checkPython(ctx, name)
		}(i, name)
	}
	wg.Wait()

	rep := report.New()
	rep.InvalidSystem = invalidSys
	rep.InvalidPython = invalidPy
	rep.System = sysEntries
	rep.Python = pyEntries

	for _, e := range sysEntries {
		if e.Verdict == core.VerdictPresent.String() {
			rep.PresentSystem = append(rep.PresentSystem, e.Name)
		} else {
			rep.MissingSystem = append(rep.MissingSystem, e.Name)
		}
	}
	for _, e := range pyEntries {
		if e.Verdict == core.VerdictPresent.String() {
			rep.PresentPython = append(rep.PresentPython, e.Name)
		} else {
			rep.MissingPython = append(rep.MissingPython, e.Name)
		}
	}

	return rep
}

// checkSystem runs one bounded system-package check. A cancelled batch or
// a panicking checker degrades to a missing verdict for this name only.
func (c *Checker) checkSystem(ctx context.Context, name string) (entry report.Entry) {
	entry = report.Entry{Name: name, Verdict: core.VerdictMissing.String()}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("system check panicked", "package", name, "panic", r)
			entry = report.Entry{Name: name, Verdict: core.VerdictMissing.String()}
		}
	}()

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return entry
	}
	defer c.sem.Release(1)

	verdict, probes := c.system.Trace(ctx, name)
	records := make([]report.ProbeRecord, 0, len(probes))
	for _, p := range probes {
		records = append(records, report.ProbeRecord{
			Backend: p.Backend.String(),
			Outcome: p.Outcome.String(),
		})
	}
	return report.Entry{Name: name, Verdict: verdict.String(), Probes: records}
}

// checkPython runs one bounded Python-module check with the same failure
// containment as checkSystem.
func (c *Checker) checkPython(ctx context.Context, name string) (entry report.Entry) {
	entry = report.Entry{Name: name, Verdict: core.VerdictMissing.String()}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("python check panicked", "module", name, "panic", r)
			entry = report.Entry{Name: name, Verdict: core.VerdictMissing.String()}
		}
	}()

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return entry
	}
	defer c.sem.Release(1)

	verdict := c.python.Check(ctx, name)
	return report.Entry{Name: name, Verdict: verdict.String()}
}

// VerifyDependencies is a one-shot batch check with default configuration.
func VerifyDependencies(ctx context.Context, systemPkgs, pythonPkgs []string) *report.Report {
	return New(nil).Verify(ctx, systemPkgs, pythonPkgs)
}
