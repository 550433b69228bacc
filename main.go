// =============================================================================
// Cargo Receipt Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Cargo Receipt Generator CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   cargo-receipt generate      - Build a receipt and export it as a JPEG
//   cargo-receipt catalog       - List the reference catalog entries
//   cargo-receipt version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/globallogistics/cargo-receipt/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
