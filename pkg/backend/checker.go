// pkg/backend/checker.go
package backend

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/arc-language/preflight/pkg/core"
)

// Checker decides whether a system package is present by consulting the
// known backends in priority order. It implements core.PackageChecker.
type Checker struct {
	prober Prober
	order  []Kind
	logger *log.Logger
}

// NewChecker creates a checker backed by an ExecProber configured from cfg.
func NewChecker(cfg *core.Config) *Checker {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	cfg.Normalize()
	return NewCheckerWithProber(NewExecProber(time.Duration(cfg.Timeout), cfg.Logger), cfg.Logger)
}

// NewCheckerWithProber creates a checker around an explicit prober.
// Tests use this to substitute scripted probers.
func NewCheckerWithProber(prober Prober, logger *log.Logger) *Checker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Checker{prober: prober, order: PriorityOrder, logger: logger}
}

// Check reports whether name is installed, folding backend outcomes into
// a single verdict. It never returns an error; see Trace for the rules.
func (c *Checker) Check(ctx context.Context, name string) core.Verdict {
	verdict, _ := c.Trace(ctx, name)
	return verdict
}

// Trace probes backends in priority order and returns the verdict along
// with the raw per-backend outcomes:
//
//   - installed: the package is present, stop immediately
//   - not-installed: the host's own manager says the package is absent;
//     that answer is trusted, no other backend is tried
//   - unavailable: the backend cannot answer here, move to the next one
//
// If every backend is unavailable the package is reported missing:
// a presence that cannot be verified is never reported as present.
func (c *Checker) Trace(ctx context.Context, name string) (core.Verdict, []ProbeResult) {
	results := make([]ProbeResult, 0, len(c.order))

	for _, kind := range c.order {
		outcome := c.probe(ctx, kind, name)
		results = append(results, ProbeResult{Backend: kind, Outcome: outcome})

		switch outcome {
		case OutcomeInstalled:
			return core.VerdictPresent, results
		case OutcomeNotInstalled:
			return core.VerdictMissing, results
		}
	}

	c.logger.Debug("no backend could answer", "package", name)
	return core.VerdictMissing, results
}

// probe shields the fold from a misbehaving Prober: a panic inside one
// probe counts as that backend being unavailable.
func (c *Checker) probe(ctx context.Context, kind Kind, name string) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("probe panicked", "backend", kind, "package", name, "panic", r)
			outcome = OutcomeUnavailable
		}
	}()
	return c.prober.Probe(ctx, kind, name)
}
