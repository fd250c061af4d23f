// Package main provides the entry point for the skillpilot CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillpilot",
	Short: "Job-fit scoring assistant",
	Long:  "skillpilot scores a resume against a job description, explains strengths and gaps, and generates tailored application artifacts.",
}

var (
	flagEnvFile    string
	flagConfigPath string
	flagVerbose    bool
	flagJSONLog    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Path to .env file (optional, ./.env is used when present)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config.json file (overrides environment values)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed output")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLog, "json-logs", false, "Emit logs as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
