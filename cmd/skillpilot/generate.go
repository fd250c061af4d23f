package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OneForces/effectivness/internal/export"
	"github.com/OneForces/effectivness/internal/gen"
	"github.com/OneForces/effectivness/internal/summary"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate application artifacts with the configured LLM backend",
	Long:  "Generates tailored resumes, cover letters, gap-closing plans and interview questions. With the offline backend the output is clearly marked placeholder text.",
}

var (
	genJDPath     string
	genResumePath string
	genQuestionsN int
)

func init() {
	generateCommand.PersistentFlags().StringVarP(&genJDPath, "jd", "j", "", "Path to job description file")
	generateCommand.PersistentFlags().StringVarP(&genResumePath, "resume", "r", "", "Path to resume file (not needed for questions)")
	_ = generateCommand.MarkPersistentFlagRequired("jd")

	questionsCmd := &cobra.Command{
		Use:   "questions",
		Short: "Generate likely interview questions for the vacancy",
		RunE:  runGenerate(genQuestions),
	}
	questionsCmd.Flags().IntVarP(&genQuestionsN, "count", "n", 5, "Number of questions")

	generateCommand.AddCommand(
		&cobra.Command{
			Use:   "resume",
			Short: "Generate a resume tailored to the vacancy",
			RunE:  runGenerate(genResume),
		},
		&cobra.Command{
			Use:   "cover",
			Short: "Generate a cover letter",
			RunE:  runGenerate(genCover),
		},
		&cobra.Command{
			Use:   "plan",
			Short: "Generate a 7-day plan for closing the detected gaps",
			RunE:  runGenerate(genPlan),
		},
		questionsCmd,
		&cobra.Command{
			Use:   "pack",
			Short: "Generate the full application package as a zip archive",
			RunE:  runGenerate(genPack),
		},
	)

	rootCmd.AddCommand(generateCommand)
}

type generateInputs struct {
	app        *app
	generator  *gen.Generator
	jdText     string
	resumeText string
}

// runGenerate wires the shared setup for every generate subcommand.
func runGenerate(fn func(cmd *cobra.Command, in generateInputs) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		assistant, err := a.buildAssistant(cmd.Context())
		if err != nil {
			return err
		}

		jdText, err := readDocument(genJDPath)
		if err != nil {
			return err
		}
		var resumeText string
		if genResumePath != "" {
			if resumeText, err = readDocument(genResumePath); err != nil {
				return err
			}
		} else if cmd.Name() != "questions" {
			return fmt.Errorf("--resume is required for %s", cmd.Name())
		}

		return fn(cmd, generateInputs{
			app:        a,
			generator:  gen.New(assistant),
			jdText:     jdText,
			resumeText: resumeText,
		})
	}
}

func genResume(cmd *cobra.Command, in generateInputs) error {
	fmt.Println(in.generator.TailoredResume(cmd.Context(), in.resumeText, in.jdText))
	return nil
}

func genCover(cmd *cobra.Command, in generateInputs) error {
	fmt.Println(in.generator.CoverLetter(cmd.Context(), in.resumeText, in.jdText))
	return nil
}

func genPlan(cmd *cobra.Command, in generateInputs) error {
	result := in.app.scorer.ScoreFit(cmd.Context(), in.jdText, in.resumeText)
	fmt.Println(in.generator.SevenDayPlan(cmd.Context(), result.Gaps, ""))
	return nil
}

func genQuestions(cmd *cobra.Command, in generateInputs) error {
	for i, q := range in.generator.InterviewQuestions(cmd.Context(), in.jdText, genQuestionsN) {
		fmt.Printf("%d. %s\n", i+1, q)
	}
	return nil
}

// genPack bundles the scored summary and generated artifacts into one
// application zip.
func genPack(cmd *cobra.Command, in generateInputs) error {
	ctx := cmd.Context()
	result := in.app.scorer.ScoreFit(ctx, in.jdText, in.resumeText)

	docs := []export.Document{
		{Name: "summary.md", Content: summary.Build(result)},
		{Name: "resume.md", Content: in.generator.TailoredResume(ctx, in.resumeText, in.jdText)},
		{Name: "cover_letter.md", Content: in.generator.CoverLetter(ctx, in.resumeText, in.jdText)},
		{Name: "plan.md", Content: in.generator.SevenDayPlan(ctx, result.Gaps, "")},
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	path, err := export.Package(cwd, docs)
	if err != nil {
		return err
	}
	fmt.Printf("Application package written to %s\n", path)
	return nil
}
