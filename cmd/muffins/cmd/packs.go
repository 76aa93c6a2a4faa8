package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/proteinmuffins/muffins/internal/config"
	"github.com/proteinmuffins/muffins/internal/packs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newPacksCmd(cfg func() config.Provider) *cobra.Command {
	var (
		packsFile    string
		outputFormat string
		exportPath   string
	)

	packsCmd := &cobra.Command{
		Use:   "packs",
		Short: "List or export the pack catalog",
		Long: `Lists the packs the generator would render.

Examples:
  muffins packs                          # Built-in catalog as a table
  muffins packs --format json            # Machine-readable output
  muffins packs --export packs.yaml      # Write the catalog as YAML for editing

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if packsFile == "" {
				packsFile = cfg().GetPacksFile()
			}
			fs := afero.NewOsFs()
			catalog, err := packs.LoadOrDefault(fs, packsFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if exportPath != "" {
				if err := packs.Save(fs, exportPath, catalog); err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported %d packs to %s\n", len(catalog), exportPath)
				return nil
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			case "table":
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "FILENAME\tPACK\tACCENT\tRECIPES\tSUCCESS PAGE")
				fmt.Fprintln(w, "--------\t----\t------\t-------\t------------")
				for _, p := range catalog {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.Filename, p.PackName, p.AccentColor, len(p.Recipes), p.SuccessPage)
				}
				return w.Flush()
			default:
				return fmt.Errorf("invalid format %q: valid formats are table, json", outputFormat)
			}
		},
	}

	packsCmd.Flags().StringVarP(&packsFile, "packs", "p", "", "YAML pack catalog (default PACKS_FILE, else the built-in catalog)")
	packsCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "Output format: table, json")
	packsCmd.Flags().StringVar(&exportPath, "export", "", "Write the catalog to this YAML file instead of listing it")
	return packsCmd
}
