package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/livemark/internal/logging"
	"github.com/yaklabco/livemark/pkg/config"
	"github.com/yaklabco/livemark/pkg/fsutil"
	"github.com/yaklabco/livemark/pkg/preview"
)

func newPreviewCommand(flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a note to HTML",
		Long: `Preview strips livemark's structural lines (blog-block sentinels,
block front-matter, metadata lines, pseudo-post fields) and renders the
remaining markdown to HTML with GFM strikethrough and task lists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to file instead of stdout")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, path, output string) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	title := cfg.Preview.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	exporter := preview.New(preview.Options{
		Standalone:     cfg.Preview.Standalone,
		Title:          title,
		MetadataPrefix: cfg.MetadataPrefix,
	})

	var buf bytes.Buffer
	if err := exporter.Export(&buf, content); err != nil {
		return err
	}

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), buf.String())
		return nil
	}

	if err := fsutil.WriteAtomic(output, buf.Bytes(), 0); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("preview written",
		logging.FieldPath, path,
		logging.FieldOutput, output,
	)

	return nil
}
