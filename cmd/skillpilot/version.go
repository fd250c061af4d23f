package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the skillpilot version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("skillpilot %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
