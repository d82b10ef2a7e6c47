// Command adt runs scripts against the containers of this module.
package main

import (
	"fmt"
	"os"

	"github.com/gostonefire/adt/internal/script"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "adt",
	Short: "Run container scripts",
	Long: `adt drives stacks, arrays, queues, hash tables, sets, dictionaries and membership
filters from a YAML or TOML script and prints the status of every step.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// runCmd runs a script file
var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a script file (.yaml, .yml or .toml)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := script.Load(args[0])
		if err != nil {
			return err
		}
		return runScript(cmd, s)
	},
}

// demoCmd runs the built-in stack scenario
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Fill a stack of max size 3 and push a fourth element",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, script.Demo())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runScript runs s and prints one line per step
func runScript(cmd *cobra.Command, s script.Script) error {
	results, err := script.NewRunner(logger).Run(s)
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r)
	}
	if err != nil {
		logger.Error("script aborted", zap.Error(err))
	}
	return err
}
