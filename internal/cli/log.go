// internal/cli/log.go
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Debug mode adds timestamps and lowers
// the level so individual probe outcomes become visible.
func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: debug,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
