// internal/cli/check.go
package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/arc-language/preflight"
	"github.com/arc-language/preflight/pkg/manifest"
)

var (
	checkSystem   []string
	checkPython   []string
	checkManifest string
	checkJSON     bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that declared dependencies are present",
	Long: `Check whether the named system packages and Python modules are present
on this host. Names come from flags, a YAML manifest, or both.

The command exits 0 once the check completes, even when packages are
missing; the report says what to install. A top-level failure or an
interrupt exits 1.`,
	Example: `  preflight check --system git --system curl --python requests
  preflight check --manifest preflight.yaml --json`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringArrayVar(&checkSystem, "system", nil, "system package to check (repeatable)")
	checkCmd.Flags().StringArrayVar(&checkPython, "python", nil, "python module to check (repeatable)")
	checkCmd.Flags().StringVar(&checkManifest, "manifest", "", "YAML manifest listing system and python packages")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit the full report as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	systemPkgs := checkSystem
	pythonPkgs := checkPython

	if checkManifest != "" {
		m, err := manifest.Load(checkManifest)
		if err != nil {
			return &preflight.Error{Op: "load manifest", Err: err}
		}
		systemPkgs = append(append([]string{}, m.System...), systemPkgs...)
		pythonPkgs = append(append([]string{}, m.Python...), pythonPkgs...)
	}

	checker := preflight.New(config)
	rep := checker.Verify(cmd.Context(), systemPkgs, pythonPkgs)

	// An interrupted batch produced conservative verdicts, not a real
	// answer; report the interruption instead.
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return rep.Render(os.Stdout)
}
