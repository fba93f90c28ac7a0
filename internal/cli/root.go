// Package cli provides the Cobra command structure for livemark.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/livemark/internal/logging"
)

// defaultConfigPath is used when --config is not given.
const defaultConfigPath = ".livemark.yaml"

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags holds the persistent flag values shared by all subcommands.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root livemark command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "livemark",
		Short: "Live markdown decoration engine for note editing",
		Long: `livemark computes the visual annotation set a live-preview markdown
editor applies over an immutable text buffer: style ranges, hidden
markers, and widget replacements, ordered by start offset and aware of
the cursor position.

The CLI exposes the engine for inspection and export: annotate dumps
the annotation list for a document, preview renders a note to HTML,
and blogs lists the configured blog registry.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", defaultConfigPath,
		"path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newAnnotateCommand(flags))
	rootCmd.AddCommand(newPreviewCommand(flags))
	rootCmd.AddCommand(newBlogsCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
