package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/proteinmuffins/muffins/internal/config"
	"github.com/proteinmuffins/muffins/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the muffins command tree. Configuration is read from the
// environment (and .env) once, before any subcommand runs.
func NewRootCmd() *cobra.Command {
	var cfg config.Provider

	rootCmd := &cobra.Command{
		Use:   "muffins",
		Short: "ProteinMuffins.com site tool",
		Long: `muffins builds the ProteinMuffins.com recipe pack pages and serves the
signup endpoint that notifies the site owner.

Available commands:
  generate    Render every pack landing page and its success page
  seo         Add canonical and social tags to existing recipe pages
  serve       Run the signup endpoint and serve the generated site
  packs       List or export the pack catalog

Use "muffins [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.New()
			cfg = config.New()
		},
	}

	provider := func() config.Provider { return cfg }
	rootCmd.AddCommand(
		newGenerateCmd(provider),
		newSEOCmd(),
		newServeCmd(provider),
		newPacksCmd(provider),
	)
	return rootCmd
}

// Execute executes the root command. An interrupt or terminate signal
// cancels the command's context so long-running commands such as
// generate --watch and serve stop cleanly.
func Execute() {
	ctx, stop := signalContext(context.Background())
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
