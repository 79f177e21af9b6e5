package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g. "v0.3.0")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the tapframe CLI and returns an error if any command
// fails. The logger is attached to the command context and accessible
// to all subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "tapframe",
		Short:        "Tapframe computes touch-panel widget layouts",
		Long:         `Tapframe resolves declarative scene files into pixel rectangles: widgets carry literal bounds, stylesheet classes pick a layout strategy (absolute or flexible-axis), and the engine produces one rectangle per widget.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tapframe %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newComputeCmd())
	root.AddCommand(newMinSizeCmd())
	root.AddCommand(newPreviewCmd())

	return root.ExecuteContext(ctx)
}
