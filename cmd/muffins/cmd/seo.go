package cmd

import (
	"fmt"

	"github.com/proteinmuffins/muffins/internal/seo"
	"github.com/proteinmuffins/muffins/internal/storage"
	"github.com/spf13/cobra"
)

func newSEOCmd() *cobra.Command {
	var dir string

	seoCmd := &cobra.Command{
		Use:   "seo [FILE...]",
		Short: "Add canonical and social tags to existing recipe pages",
		Long: `Inserts canonical, Open Graph, Twitter card and favicon tags after the
meta description of each recipe page. Pages that already have a canonical
link are left alone, so the command is safe to re-run.

With no FILE arguments the site's standard recipe pages are processed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				files = seo.DefaultRecipeFiles
			}

			results := seo.Run(cmd.Context(), storage.NewDirStore(dir), files)

			out := cmd.OutOrStdout()
			var updated, failed int
			for _, r := range results {
				switch {
				case r.Err != nil:
					failed++
					fmt.Fprintf(out, "✗ %s: %v\n", r.Filename, r.Err)
				case r.Outcome == seo.Updated:
					updated++
					fmt.Fprintf(out, "✓ %s\n", r.Filename)
				default:
					fmt.Fprintf(out, "- %s (%s)\n", r.Filename, r.Outcome)
				}
			}
			fmt.Fprintf(out, "\n%d of %d pages updated\n", updated, len(results))
			if failed > 0 {
				return fmt.Errorf("%d pages failed", failed)
			}
			return nil
		},
	}

	seoCmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory containing the recipe pages")
	return seoCmd
}
