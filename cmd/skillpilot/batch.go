package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OneForces/effectivness/internal/batch"
	"github.com/OneForces/effectivness/internal/observability"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Score every resume in a directory against one job description",
	RunE:  runBatchCmd,
}

var (
	batchJDPath     string
	batchResumesDir string
	batchCSV        bool
)

// resumeExtensions are the document types the reader understands.
var resumeExtensions = map[string]bool{
	".txt": true, ".md": true, ".pdf": true, ".docx": true,
}

func init() {
	batchCommand.Flags().StringVarP(&batchJDPath, "jd", "j", "", "Path to job description file")
	batchCommand.Flags().StringVarP(&batchResumesDir, "resumes", "d", "", "Directory with resume files")
	batchCommand.Flags().BoolVar(&batchCSV, "csv", false, "Also export the ranking as CSV")

	_ = batchCommand.MarkFlagRequired("jd")
	_ = batchCommand.MarkFlagRequired("resumes")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	jdText, err := readDocument(batchJDPath)
	if err != nil {
		return err
	}

	resumes, err := loadResumeDir(batchResumesDir)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no readable resumes in %s", batchResumesDir)
	}

	rows, err := batch.Score(cmd.Context(), a.scorer, jdText, resumes, a.cfg.BatchWorkers)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintRanking(rows)

	if batchCSV {
		path, err := batch.WriteCSV(rows)
		if err != nil {
			return err
		}
		fmt.Printf("CSV written to %s\n", path)
	}
	return nil
}

func loadResumeDir(dir string) ([]batch.Resume, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read resume dir %s: %w", dir, err)
	}

	var resumes []batch.Resume
	for _, e := range entries {
		if e.IsDir() || !resumeExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		text, err := readDocument(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, batch.Resume{Name: e.Name(), Text: text})
	}
	return resumes, nil
}
