package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OneForces/effectivness/internal/pii"
)

var anonymizeCommand = &cobra.Command{
	Use:   "anonymize",
	Short: "Strip personal data from a resume",
	Long:  "Replaces emails, phone numbers and names with placeholders while keeping technology names intact. Output goes to stdout or --out.",
	RunE:  runAnonymizeCmd,
}

var (
	anonInPath  string
	anonOutPath string
)

func init() {
	anonymizeCommand.Flags().StringVarP(&anonInPath, "in", "i", "", "Path to resume file")
	anonymizeCommand.Flags().StringVarP(&anonOutPath, "out", "o", "", "Output file (default stdout)")
	_ = anonymizeCommand.MarkFlagRequired("in")

	rootCmd.AddCommand(anonymizeCommand)
}

func runAnonymizeCmd(_ *cobra.Command, _ []string) error {
	text, err := readDocument(anonInPath)
	if err != nil {
		return err
	}
	clean := pii.Anonymize(text)

	if anonOutPath == "" {
		fmt.Println(clean)
		return nil
	}
	if err := os.WriteFile(anonOutPath, []byte(clean), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", anonOutPath, err)
	}
	fmt.Printf("Anonymized resume written to %s\n", anonOutPath)
	return nil
}
