// Package batch scores many resumes against one job description. It is a
// thin concurrent loop over the per-pair scorer; ranking is just a sort on
// the resulting scores.
package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/OneForces/effectivness/internal/scoring"
)

// defaultWorkers bounds concurrent scoring calls. Scoring is CPU-light; the
// embedding backend is the real bottleneck and its cache is shared.
const defaultWorkers = 4

// Resume is one named input document.
type Resume struct {
	Name string
	Text string
}

// Row is one scored resume in the ranked output.
type Row struct {
	Resume    string `json:"resume"`
	Score     int    `json:"score"`
	Strengths string `json:"strengths"`
	Gaps      string `json:"gaps"`
}

// Score ranks all resumes against the JD, highest score first. Ties keep the
// input order. workers <= 0 uses the default bound.
func Score(ctx context.Context, scorer *scoring.Scorer, jdText string, resumes []Resume, workers int) ([]Row, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}

	rows := make([]Row, len(resumes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, resume := range resumes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := scorer.ScoreFit(ctx, jdText, resume.Text)
			rows[i] = Row{
				Resume:    resume.Name,
				Score:     r.Score,
				Strengths: strings.Join(r.Strengths, ", "),
				Gaps:      strings.Join(r.Gaps, ", "),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })
	return rows, nil
}

// WriteCSV exports ranked rows into a fresh temp directory and returns the
// file path.
func WriteCSV(rows []Row) (string, error) {
	dir, err := os.MkdirTemp("", "skillpilot_batch_"+uuid.NewString()[:8]+"_")
	if err != nil {
		return "", fmt.Errorf("create batch export dir: %w", err)
	}
	path := filepath.Join(dir, "batch_scores.csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"resume", "score", "strengths", "gaps"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.Resume, strconv.Itoa(row.Score), row.Strengths, row.Gaps}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write csv row for %s: %w", row.Resume, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}
