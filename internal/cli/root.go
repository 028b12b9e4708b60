// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/arc-language/preflight/pkg/core"
)

var (
	cfgFile     string
	verbose     bool
	timeout     time.Duration
	concurrency int
	config      *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Pre-flight dependency checker",
	Long: `preflight - Pre-flight dependency checker

Checks whether the system packages and Python modules a tool depends on
are present on this host, and reports which are missing. Nothing is ever
installed, upgraded, or removed.`,
	Version: "0.1.0",
}

// Execute executes the root command with the given context
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/preflight/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-probe timeout (default 10s)")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 0, "max concurrent probes (default 8)")

	// Add commands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if verbose {
		config.Debug = true
	}
	if timeout > 0 {
		config.Timeout = core.Duration(timeout)
	}
	if concurrency > 0 {
		config.MaxProbes = concurrency
	}
	config.Logger = newLogger(os.Stderr, config.Debug)
}
