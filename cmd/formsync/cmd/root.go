// Package cmd implements the formsync command tree.
package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paperfold/formsync"
	"github.com/paperfold/formsync/internal/config"
	"github.com/paperfold/formsync/pkg/logging"
)

var (
	rootCatalog  string
	rootBaseURL  string
	rootLogLevel string
)

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "formsync",
	Short: "Keep a local template catalog in sync with the e-signature service",
	Long: `formsync maintains a local catalog of document templates mapped to
value generation expressions, and keeps it synchronized with the template
catalog of the remote e-signature service.

Syncing never destroys local work: authored expressions survive, new remote
fields arrive marked TODO for an operator to resolve, and local entries
missing remotely are reported as stale but kept.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootLogLevel != "" {
			level, err := zerolog.ParseLevel(rootLogLevel)
			if err != nil {
				return err
			}
			logging.SetLevel(level)
		}
		return nil
	},
}

func init() {
	config.Init()

	rootCmd.PersistentFlags().StringVar(&rootCatalog, "catalog", "", "Path to the local catalog file (default templates.json)")
	rootCmd.PersistentFlags().StringVar(&rootBaseURL, "base-url", "", "Base URL of the e-signature service API")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	_ = viper.BindPFlag(config.KeyCatalog, rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag(config.KeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url"))
}

// Execute runs the command tree with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newClient builds a formsync client from the resolved configuration.
// Commands that reach the remote service pass requireKey.
func newClient(requireKey bool, extra ...formsync.Option) (formsync.Client, error) {
	opts := []formsync.Option{
		formsync.WithCatalogPath(config.CatalogPath()),
		formsync.WithBaseURL(config.BaseURL()),
	}
	key, err := config.APIKey()
	if err != nil {
		if requireKey {
			return nil, err
		}
	} else {
		opts = append(opts, formsync.WithAPIKey(key))
	}
	opts = append(opts, extra...)
	return formsync.New(opts...)
}
