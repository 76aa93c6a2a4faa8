package cmd

import (
	"errors"
	"fmt"

	"github.com/proteinmuffins/muffins/internal/config"
	"github.com/proteinmuffins/muffins/internal/packs"
	"github.com/proteinmuffins/muffins/internal/rendering"
	"github.com/proteinmuffins/muffins/internal/site"
	"github.com/proteinmuffins/muffins/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newGenerateCmd(cfg func() config.Provider) *cobra.Command {
	var (
		outDir    string
		packsFile string
		watch     bool
		noSuccess bool
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Render every pack landing page and its success page",
		Long: `Renders one landing page per pack in the catalog, plus the matching
download page, into the output directory. Existing files are overwritten.

A failure on one page is reported and the rest are still written; the
command exits non-zero if any page failed.

Examples:
  muffins generate                         # Built-in catalog into SITE_OUT_DIR
  muffins generate --out public            # Write into ./public
  muffins generate --packs packs.yaml      # Use a YAML catalog
  muffins generate --packs packs.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = cfg().GetSiteOutDir()
			}
			if packsFile == "" {
				packsFile = cfg().GetPacksFile()
			}
			if watch && packsFile == "" {
				return errors.New("--watch requires a catalog file (--packs or PACKS_FILE)")
			}

			osFs := afero.NewOsFs()
			load := func() ([]packs.PageConfig, error) {
				return packs.LoadOrDefault(osFs, packsFile)
			}
			catalog, err := load()
			if err != nil {
				return err
			}

			gen := site.NewGenerator(
				storage.NewDirStore(outDir),
				rendering.NewUniversalRenderer(),
				site.Options{SkipSuccessPages: noSuccess},
			)

			report := gen.Generate(cmd.Context(), catalog)
			out := cmd.OutOrStdout()
			for _, name := range report.Written {
				fmt.Fprintf(out, "Generated %s\n", name)
			}
			for _, name := range report.Skipped {
				fmt.Fprintf(out, "Skipped %s: no filename\n", name)
			}
			for _, fe := range report.Failed {
				fmt.Fprintf(out, "Failed %s: %v\n", fe.Filename, fe.Err)
			}
			fmt.Fprintf(out, "\n%d written, %d skipped, %d failed\n", len(report.Written), len(report.Skipped), len(report.Failed))

			if err := report.Err(); err != nil && !watch {
				return err
			}
			if watch {
				return gen.Watch(cmd.Context(), packsFile, load)
			}
			return nil
		},
	}

	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default SITE_OUT_DIR)")
	generateCmd.Flags().StringVarP(&packsFile, "packs", "p", "", "YAML pack catalog (default PACKS_FILE, else the built-in catalog)")
	generateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate whenever the catalog file changes")
	generateCmd.Flags().BoolVar(&noSuccess, "no-success", false, "Skip the download success pages")
	return generateCmd
}
