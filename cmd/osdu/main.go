package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/osdu-client/cmd/osdu/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// NewRootCommand builds the osdu command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "osdu",
		Short: "OSDU data platform CLI",
		Long: `A command-line interface for the OSDU data platform services.

Service URLs, the data partition and the cloud provider are read from an ini
file (--config, $OSDU_API_CONFIG_INI or ./osdu_api.ini).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "ini config file (default is $OSDU_API_CONFIG_INI or ./osdu_api.ini)")
	rootCmd.PersistentFlags().StringP("provider", "p", "", "cloud provider (gcp, azure, aws)")
	rootCmd.PersistentFlags().String("partition", "", "data partition id")
	rootCmd.PersistentFlags().StringP("token", "t", "", "bearer token to use instead of the provider's credentials")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	for _, key := range []string{
		commands.KeyConfig, commands.KeyProvider, commands.KeyPartition,
		commands.KeyToken, commands.KeyOutput, commands.KeyVerbose,
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewRecordsCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewLegalCommand())
	rootCmd.AddCommand(commands.NewEntitlementsCommand())
	rootCmd.AddCommand(commands.NewSchemaCommand())
	rootCmd.AddCommand(commands.NewPartitionCommand())
	rootCmd.AddCommand(commands.NewBlobCommand())

	return rootCmd
}

func initConfig() {
	// OSDU_OUTPUT, OSDU_TOKEN, ... override flag defaults.
	viper.SetEnvPrefix("OSDU")
	viper.AutomaticEnv()
}

func main() {
	cobra.OnInitialize(initConfig)

	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
