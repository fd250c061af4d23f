package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OneForces/effectivness/internal/ats"
	"github.com/OneForces/effectivness/internal/batch"
	"github.com/OneForces/effectivness/internal/scoring"
	"github.com/OneForces/effectivness/internal/summary"
	"github.com/OneForces/effectivness/internal/whatif"
)

func TestPrintFitResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFitResult(&scoring.Result{
		Score:     72,
		Strengths: []string{"python", "docker"},
		Gaps:      []string{"kubernetes"},
	})
	output := buf.String()

	assert.Contains(t, output, "FIT SCORE")
	assert.Contains(t, output, "72/100")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "kubernetes")
}

func TestPrintFitResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintFitResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintFitResult_TruncatesLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	strengths := []string{"a", "b", "c", "d", "e", "f", "g"}
	p.PrintFitResult(&scoring.Result{Score: 50, Strengths: strengths})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintCoverage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCoverage([]summary.CoverageItem{
		{Skill: "python", Covered: true},
		{Skill: "docker", Covered: false},
	})
	output := buf.String()

	assert.Contains(t, output, "REQUIREMENT COVERAGE")
	assert.Contains(t, output, "Covered 1 of 2")
	assert.Contains(t, output, "✅ python")
	assert.Contains(t, output, "— docker")
}

func TestPrintATSReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSReport(&ats.Report{
		HasEmail:    true,
		BulletCount: 12,
		ActionVerbs: 4,
	})
	output := buf.String()

	assert.Contains(t, output, "ATS CHECK")
	assert.Contains(t, output, "Email:        yes")
	assert.Contains(t, output, "Phone:        no")
	assert.Contains(t, output, "Bullets:      12")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rows := []batch.Row{
		{Resume: "a.txt", Score: 80, Gaps: "kubernetes"},
		{Resume: "b.txt", Score: 60},
		{Resume: "c.txt", Score: 55},
		{Resume: "d.txt", Score: 40},
		{Resume: "e.txt", Score: 30},
		{Resume: "f.txt", Score: 10},
	}
	p.PrintRanking(rows)
	output := buf.String()

	assert.Contains(t, output, "BATCH RANKING")
	assert.Contains(t, output, "#1  a.txt")
	assert.Contains(t, output, "... and 1 more resumes")
	assert.NotContains(t, output, "f.txt")
}

func TestPrintDeltas(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDeltas(40, []whatif.Delta{
		{Term: "docker", Base: 40, WithTerm: 55},
		{Term: "cobol", Base: 40, WithTerm: 38},
	})
	output := buf.String()

	assert.Contains(t, output, "WHAT-IF")
	assert.Contains(t, output, "docker: 40 → 55 (+15)")
	assert.Contains(t, output, "cobol: 40 → 38 (-2)")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}

func TestWrap(t *testing.T) {
	out := wrap("one two three four", 9)
	assert.Equal(t, "one two\nthree\nfour", out)
}
