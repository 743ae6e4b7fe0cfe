package main

import (
	"fmt"

	"github.com/aretw0/toolbelt"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of toolbelt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "toolbelt version %s\n", toolbelt.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
