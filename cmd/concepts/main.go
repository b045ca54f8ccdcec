// Command concepts runs the algorithm, ownership and container demos.
//
// Run:
//
//	go run ./cmd/concepts all
//	go run ./cmd/concepts shift-left
//	go run ./cmd/concepts accounts --deposit 500 --withdraw 250 -v
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Standalone demos: relocation, shifting, accounts, owning strings, fixed arrays",
	Long: `Each subcommand runs one independent demo and prints its before/after
state. Nothing is shared between demos.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
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

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log demo timing at debug level")

	rootCmd.AddCommand(
		moveBackwardCmd,
		shiftLeftCmd,
		accountsCmd,
		stringCmd,
		arrayCmd,
		allCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
