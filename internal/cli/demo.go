// internal/cli/demo.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/arc-language/preflight"
)

// The demo batches mirror a typical security-tooling setup: a handful of
// tools that may or may not be installed, plus names that should exist on
// any reasonable host.
var (
	demoSystemPackages = []string{
		"nmap",      // network mapper
		"wireshark", // network protocol analyzer
		"sqlmap",    // SQL injection tool
		"git",       // version control
		"curl",      // HTTP client
		"python3",   // Python interpreter
	}

	demoPythonPackages = []string{
		"requests", // HTTP library
		"flask",    // web framework
		"pyzmq",    // ZeroMQ bindings
		"urllib3",  // HTTP client
		"socket",   // built-in module
	}

	// Deliberately hostile and malformed names, to show they are rejected
	// instead of reaching a subprocess.
	demoInvalidPackages = []string{
		"",
		"bad;package",
		"hack`command`",
		"valid-package",
	}
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration check",
	Long: `Run a pre-flight check over a built-in list of example packages,
then a second batch that demonstrates name validation against hostile input.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	checker := preflight.New(config)

	fmt.Println("Checking example packages...")
	rep := checker.Verify(cmd.Context(), demoSystemPackages, demoPythonPackages)
	if err := rep.Render(os.Stdout); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Checking a batch with invalid names...")
	rep = checker.Verify(cmd.Context(), demoInvalidPackages, nil)
	if err := rep.Render(os.Stdout); err != nil {
		return err
	}

	if err := cmd.Context().Err(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Dependency check complete. Install any missing packages before proceeding.")
	return nil
}
