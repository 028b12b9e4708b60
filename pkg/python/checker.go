// pkg/python/checker.go
package python

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
	"github.com/arc-language/preflight/pkg/core"
)

// ErrInterpreterNotFound indicates no usable Python interpreter is on PATH
var ErrInterpreterNotFound = errors.New("python interpreter not found")

// findSpecScript asks the interpreter whether a module specification exists
// for the given name. find_spec resolves the module through the import
// machinery's metadata without executing it, so probing a module has no
// import side effects. Resolution errors for malformed or reserved names
// count as "no spec".
const findSpecScript = `import importlib.util, sys
try:
    spec = importlib.util.find_spec(sys.argv[1])
except (ImportError, ValueError, ModuleNotFoundError):
    spec = None
sys.exit(0 if spec is not None else 1)`

// Checker decides whether a Python module is importable on this host.
// It implements core.PackageChecker.
type Checker struct {
	interpreters []string
	timeout      time.Duration
	logger       *log.Logger
}

// NewChecker creates a checker configured from cfg. The interpreter chain
// defaults to python3 then python.
func NewChecker(cfg *core.Config) *Checker {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	cfg.Normalize()
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Checker{
		interpreters: cfg.Interpreters,
		timeout:      time.Duration(cfg.Timeout),
		logger:       logger,
	}
}

// Check reports whether a module specification exists for name. The first
// interpreter on PATH answers authoritatively: exit 0 means a spec was
// found, exit 1 means none. An interpreter that is absent or times out is
// skipped; if none can answer, the module is reported missing.
func (c *Checker) Check(ctx context.Context, name string) core.Verdict {
	for _, interpreter := range c.interpreters {
		if _, err := exec.LookPath(interpreter); err != nil {
			continue
		}

		verdict, ok := c.resolve(ctx, interpreter, name)
		if ok {
			return verdict
		}
	}

	c.logger.Debug("no interpreter could answer", "module", name)
	return core.VerdictMissing
}

// resolve runs one interpreter's find_spec query. ok is false when the
// interpreter could not answer (timeout, spawn failure) and the next one
// in the chain should be tried.
func (c *Checker) resolve(ctx context.Context, interpreter, name string) (verdict core.Verdict, ok bool) {
	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, interpreter, "-c", findSpecScript, name)
	cmd.Stdout = nil
	cmd.Stderr = nil

	err := cmd.Run()
	switch {
	case err == nil:
		return core.VerdictPresent, true
	case cctx.Err() != nil:
		c.logger.Debug("interpreter timed out", "interpreter", interpreter, "module", name)
		return core.VerdictMissing, false
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return core.VerdictMissing, true
		}
		return core.VerdictMissing, false
	}
}

// Interpreter returns the first configured interpreter found on PATH.
// It backs the backends diagnostic command; Check does its own lookup.
func (c *Checker) Interpreter() (string, error) {
	for _, interpreter := range c.interpreters {
		if path, err := exec.LookPath(interpreter); err == nil {
			return path, nil
		}
	}
	return "", ErrInterpreterNotFound
}
