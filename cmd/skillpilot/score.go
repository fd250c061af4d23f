package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/OneForces/effectivness/internal/ats"
	"github.com/OneForces/effectivness/internal/export"
	"github.com/OneForces/effectivness/internal/observability"
	"github.com/OneForces/effectivness/internal/summary"
	"github.com/OneForces/effectivness/internal/whatif"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job description",
	Long:  "Scores the resume against the job description and prints the fit score with strengths, gaps and a diagnostic. Supports txt, md, pdf and docx inputs.",
	RunE:  runScoreCmd,
}

var (
	scoreJDPath      string
	scoreResumePath  string
	scoreWhatIf      []string
	scoreRunATS      bool
	scoreSummaryPath string
	scoreAsJSON      bool
)

func init() {
	scoreCommand.Flags().StringVarP(&scoreJDPath, "jd", "j", "", "Path to job description file")
	scoreCommand.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Path to resume file")
	scoreCommand.Flags().StringSliceVar(&scoreWhatIf, "what-if", nil, "Skills to simulate adding to the resume")
	scoreCommand.Flags().BoolVar(&scoreRunATS, "ats", false, "Also run resume hygiene checks")
	scoreCommand.Flags().StringVar(&scoreSummaryPath, "summary", "", "Write an executive summary markdown to this file")
	scoreCommand.Flags().BoolVar(&scoreAsJSON, "json", false, "Print the result as JSON")

	_ = scoreCommand.MarkFlagRequired("jd")
	_ = scoreCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	jdText, err := readDocument(scoreJDPath)
	if err != nil {
		return err
	}
	resumeText, err := readDocument(scoreResumePath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result := a.scorer.ScoreFit(ctx, jdText, resumeText)

	if scoreAsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		p := observability.NewPrinter(os.Stdout)
		p.PrintFitResult(&result)
		if a.cfg.Verbose {
			p.PrintCoverage(summary.ParseCoverage(result.Diagnostic))
			p.PrintDiagnostic(result.Diagnostic)
		}
	}

	if scoreRunATS {
		report := ats.Check(resumeText)
		observability.NewPrinter(os.Stdout).PrintATSReport(&report)
		fmt.Println(ats.Recommendation)
	}

	if len(scoreWhatIf) > 0 {
		base, deltas := whatif.DeltaScores(ctx, a.scorer, jdText, resumeText, scoreWhatIf)
		observability.NewPrinter(os.Stdout).PrintDeltas(base, deltas)
	}

	if scoreSummaryPath != "" {
		doc := export.Document{
			Name:    filepath.Base(scoreSummaryPath),
			Content: summary.Build(result),
		}
		path, err := export.WriteMarkdown(filepath.Dir(scoreSummaryPath), doc)
		if err != nil {
			return err
		}
		fmt.Printf("Summary written to %s\n", path)
	}
	return nil
}
