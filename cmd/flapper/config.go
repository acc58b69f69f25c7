package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that play, window, serve and simulate would
use, as YAML. The first line names where it was loaded from.

Examples:
  flapper config > ~/.flapper/config.yaml
  flapper config --config ./my-flapper.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := gameConfig.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", configSource, data)
		return nil
	},
}
