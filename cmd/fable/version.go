package main

import (
	"fmt"

	"github.com/aretw0/fable"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fable",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fable version %s\n", fable.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
