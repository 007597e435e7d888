// Package cli implements the polycipher command-line interface.
//
// This package provides commands for encrypting text through a cipher
// chain, scoring a chain's strength, simulating attacks against it, and
// inspecting polygon key derivation. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - encrypt: Run plaintext through a cipher chain
//   - score: Compute the strength breakdown for a chain
//   - attack: Simulate frequency and brute-force attacks
//   - polygon: Validate vertices and show derived keys
//   - visualize: Render the chain as a Graphviz diagram
//   - play: Interactive chain builder with live scoring
//   - serve: Run the HTTP API
//
// # Chain Specs
//
// Commands that take a cipher chain accept repeated --node flags:
//
//	polycipher encrypt "HELLO WORLD" --node shift:3 --node reverse
//	polycipher score "SECRET" --node polygon:0,0;300,0;0,400
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/askern/polycipher/pkg/buildinfo"
)

// Execute runs the polycipher CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "polycipher",
		Short:        "PolyCipher builds and scores toy cipher chains",
		Long:         `PolyCipher is an educational tool for composing chains of classical text transformations, deriving cipher keys from polygon geometry, and scoring the result against simple cryptanalysis.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("polycipher %s\ncommit: %s\nbuilt: %s\n",
		buildinfo.Version, buildinfo.Commit, buildinfo.Date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEncryptCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newAttackCmd())
	root.AddCommand(newPolygonCmd())
	root.AddCommand(newVisualizeCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
