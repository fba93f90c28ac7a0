package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/livemark/internal/logging"
	"github.com/yaklabco/livemark/internal/ui/pretty"
	"github.com/yaklabco/livemark/pkg/config"
	"github.com/yaklabco/livemark/pkg/decor"
	"github.com/yaklabco/livemark/pkg/langdetect"
	"github.com/yaklabco/livemark/pkg/source"
	"github.com/yaklabco/livemark/pkg/widget"
)

func newAnnotateCommand(flags *rootFlags) *cobra.Command {
	var cursor int
	var withPublish bool

	cmd := &cobra.Command{
		Use:   "annotate <file>",
		Short: "Print the annotation list for a markdown document",
		Long: `Annotate runs a full walker pass over the given document and prints
every annotation the engine emits, in start-offset order: style ranges,
suppressed markers, widget replacements, and line effects.

The --cursor flag positions the caret, revealing markers on its line
the way the editor would.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(cmd, flags, args[0], cursor, withPublish)
		},
	}

	cmd.Flags().IntVar(&cursor, "cursor", 0, "cursor byte offset")
	cmd.Flags().BoolVar(&withPublish, "publish-affordance", false,
		"emit publish affordance widgets as if the host supplied a callback")

	return cmd
}

func runAnnotate(cmd *cobra.Command, flags *rootFlags, path string, cursor int, withPublish bool) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	doc := source.NewDocument(content)
	engine := decor.NewEngine(engineOptions(cfg), cfg.Registry(), withPublish)
	anns := engine.Annotate(doc, cursor)

	logger.Debug("walker pass complete",
		logging.FieldPath, path,
		logging.FieldCursor, cursor,
		logging.FieldCursorLine, doc.LineAt(cursor),
		logging.FieldLines, doc.LineCount(),
		logging.FieldAnnotations, len(anns),
	)

	colorEnabled := pretty.ColorEnabled(flags.color, os.Stdout)
	styles := pretty.NewStyles(colorEnabled)
	styles.SetWidth(pretty.TerminalWidth(os.Stdout))
	renderer := widget.NewRenderer(colorEnabled)

	fmt.Fprintln(cmd.OutOrStdout(), styles.Title.Render(path))
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatAnnotations(doc, anns, renderer))

	return nil
}

// engineOptions translates file config into engine options.
func engineOptions(cfg *config.Config) decor.Options {
	opts := decor.Options{MetadataPrefix: cfg.MetadataPrefix}
	if cfg.DetectFenceLanguage {
		opts.DetectLanguage = langdetect.Detect
	}
	return opts
}
