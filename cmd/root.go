// =============================================================================
// Cargo Receipt Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'generate', 'catalog') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (cargo-receipt)
//   ├── generateCmd (cargo-receipt generate)
//   ├── catalogCmd  (cargo-receipt catalog)
//   └── versionCmd  (cargo-receipt version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/globallogistics/cargo-receipt/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// logger is the process logger, initialized before any command runs.
var logger *zap.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cargo-receipt",
	Short: "Cargo Receipt Generator - Render shipment booking receipts as JPEG images",
	Long: `Cargo Receipt Generator is a CLI tool for the cargo desk. It builds a
shipment booking receipt from a seed record plus field edits, renders it as
a styled receipt document, and rasterizes the document to a JPEG image with
a deterministically derived filename.

Example Usage:
  cargo-receipt generate                              # Export the default receipt
  cargo-receipt generate --set mawbNo=KU-2024-009999  # Edit a field, then export
  cargo-receipt generate --record booking.yaml        # Start from a record file
  cargo-receipt catalog                               # List the reference catalog`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger("info")
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

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// LOGGER
// =============================================================================

// newLogger builds the process logger at the given level. The --verbose
// flag always wins and forces debug.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = zapcore.InfoLevel
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg.Build()
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
