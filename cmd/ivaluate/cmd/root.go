// Package cmd implements the CLI commands for the iValuate server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ivaluate",
	Short: "Second-hand device price inquiry and market estimation",
	Long: "iValuate serves listing search with dynamic filter facets and fair market\n" +
		"price estimates built from daily price history and current listings.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		seedCmd(),
		rollupCmd(),
		versionCommand(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command, for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}
