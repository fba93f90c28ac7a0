package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/livemark/internal/ui/pretty"
	"github.com/yaklabco/livemark/pkg/config"
)

func newBlogsCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "blogs",
		Short: "List the configured blog registry",
		Long: `Blogs prints the registry the engine validates @<name> post opener
lines against. An opener naming an unregistered blog renders as a loose
@-line, not a pseudo-post.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.ColorEnabled(flags.color, os.Stdout))

			if len(cfg.Blogs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), styles.Dim.Render("no blogs configured"))
				return nil
			}

			for _, blog := range cfg.Blogs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
					styles.Title.Render(blog.Name),
					styles.Dim.Render(blog.ID),
				)
			}
			return nil
		},
	}
}
