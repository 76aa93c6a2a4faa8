package cmd

import (
	"fmt"

	"github.com/proteinmuffins/muffins/internal/config"
	"github.com/proteinmuffins/muffins/internal/email"
	"github.com/proteinmuffins/muffins/internal/packs"
	"github.com/proteinmuffins/muffins/internal/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg func() config.Provider) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the signup endpoint and serve the generated site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			if addr == "" {
				addr = c.GetServerAddr()
			}

			emailer, err := email.NewEmailService(c)
			if err != nil {
				return fmt.Errorf("failed to initialize email service: %w", err)
			}
			catalog, err := packs.LoadOrDefault(afero.NewOsFs(), c.GetPacksFile())
			if err != nil {
				return err
			}

			return server.New(c, emailer, catalog).Start(cmd.Context(), addr)
		},
	}

	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default SERVER_ADDR)")
	return serveCmd
}
