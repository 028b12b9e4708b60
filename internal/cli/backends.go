// internal/cli/backends.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/arc-language/preflight/pkg/backend"
	"github.com/arc-language/preflight/pkg/platform"
	"github.com/arc-language/preflight/pkg/python"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "Show which package-manager backends are usable here",
	Long: `Show which package-manager query tools are present on this host, which
one the OS metadata suggests is native, and whether a Python interpreter
was found. Probing always tries backends in the fixed priority order;
this command is diagnostic only.`,
	RunE: runBackends,
}

func runBackends(cmd *cobra.Command, args []string) error {
	plat := platform.Detect()

	fmt.Printf("Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Printf("Query backends (priority order):\n")
	for _, kind := range backend.PriorityOrder {
		marker := " "
		if contains(plat.Available, kind) {
			marker = "+"
		}
		native := ""
		if kind == plat.Native {
			native = " (native)"
		}
		fmt.Printf("  %s %-5s %s%s\n", marker, kind, kind.Executable(), native)
	}
	fmt.Printf("\n+ = query tool found on PATH\n")

	interp, err := python.NewChecker(config).Interpreter()
	switch {
	case err == nil:
		fmt.Printf("\nPython interpreter: %s\n", interp)
	case errors.Is(err, python.ErrInterpreterNotFound):
		fmt.Printf("\nPython interpreter: not found\n")
	default:
		return fmt.Errorf("resolving python interpreter: %w", err)
	}

	return nil
}

func contains(kinds []backend.Kind, kind backend.Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
