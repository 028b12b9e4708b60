// pkg/backend/probe.go
package backend

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
)

// Prober asks one backend whether a named package is installed.
type Prober interface {
	// Probe runs the backend's query command for name with a bounded
	// execution time. It spawns at most one child process and never
	// returns an error; failures map to OutcomeUnavailable.
	Probe(ctx context.Context, kind Kind, name string) Outcome
}

// ExecProber is the production Prober. It executes the backend's query
// command directly (no shell), discards the child's output, and kills
// the child if it outlives the timeout.
type ExecProber struct {
	timeout time.Duration
	logger  *log.Logger
}

// NewExecProber creates a prober with the given per-probe timeout.
// A nil logger silences probe-level debug output.
func NewExecProber(timeout time.Duration, logger *log.Logger) *ExecProber {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ExecProber{timeout: timeout, logger: logger}
}

// Probe implements Prober for a known backend kind. An unknown kind is
// reported as unavailable rather than an error.
func (p *ExecProber) Probe(ctx context.Context, kind Kind, name string) Outcome {
	cmd, ok := queryCommands[kind]
	if !ok {
		return OutcomeUnavailable
	}

	args := append(append([]string{}, cmd.args...), name)
	outcome := p.run(ctx, cmd.executable, args)
	p.logger.Debug("probe finished", "backend", kind, "package", name, "outcome", outcome)
	return outcome
}

// run executes one query command and maps its result onto an Outcome.
// The child is always reaped before run returns: CommandContext kills it
// on deadline and Run waits for it regardless.
func (p *ExecProber) run(ctx context.Context, executable string, args []string) Outcome {
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, executable, args...)
	// Only the exit status matters; the query output is never parsed.
	cmd.Stdout = nil
	cmd.Stderr = nil

	err := cmd.Run()
	switch {
	case err == nil:
		return OutcomeInstalled
	case errors.Is(err, exec.ErrNotFound):
		return OutcomeUnavailable
	case cctx.Err() != nil:
		// Timed out or the batch was cancelled; the child has been killed.
		return OutcomeUnavailable
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return OutcomeNotInstalled
		}
		// Spawn failures (permissions, resource limits) count the same
		// as a missing executable.
		return OutcomeUnavailable
	}
}
