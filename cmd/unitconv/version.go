package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/unitkit/pkg/unitkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the unitconv version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(cmd, map[string]string{"version": unitkit.Version})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "unitconv", unitkit.Version)
		return nil
	},
}
