// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/OneForces/effectivness/internal/ats"
	"github.com/OneForces/effectivness/internal/batch"
	"github.com/OneForces/effectivness/internal/scoring"
	"github.com/OneForces/effectivness/internal/summary"
	"github.com/OneForces/effectivness/internal/whatif"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFitResult outputs a human-readable summary of one scored pair.
func (p *Printer) PrintFitResult(result *scoring.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString("\n")

	if len(result.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(result.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Strengths[i]))
		}
		if len(result.Strengths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Strengths)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Gaps) > 0 {
		sb.WriteString("Gaps:\n")
		count := min(len(result.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Gaps[i]))
		}
		if len(result.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Gaps)-maxItemsToShow))
		}
	}

	p.printBox("FIT SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCoverage outputs the per-requirement coverage table recovered from
// the diagnostic.
func (p *Printer) PrintCoverage(items []summary.CoverageItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	covered := 0
	for _, it := range items {
		if it.Covered {
			covered++
		}
	}
	sb.WriteString(fmt.Sprintf("Covered %d of %d requirements:\n\n", covered, len(items)))

	for i, it := range items {
		mark := "—"
		if it.Covered {
			mark = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s", mark, it.Skill))
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("REQUIREMENT COVERAGE", sb.String())
}

// PrintDiagnostic outputs the raw diagnostic line wrapped to the box width.
func (p *Printer) PrintDiagnostic(diagnostic string) {
	if diagnostic == "" {
		return
	}
	p.printBox("DIAGNOSTIC", wrap(diagnostic, boxWidth-4))
}

// PrintATSReport outputs the resume hygiene checks.
func (p *Printer) PrintATSReport(report *ats.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Email:        %s\n", yesNo(report.HasEmail)))
	sb.WriteString(fmt.Sprintf("Phone:        %s\n", yesNo(report.HasPhone)))
	sb.WriteString(fmt.Sprintf("Bullets:      %d\n", report.BulletCount))
	sb.WriteString(fmt.Sprintf("Action verbs: %d\n", report.ActionVerbs))
	sb.WriteString(fmt.Sprintf("Old dates:    %s", yesNo(report.OldDatesFlag)))

	p.printBox("ATS CHECK", sb.String())
}

// PrintRanking outputs the top scored resumes from a batch run.
func (p *Printer) PrintRanking(rows []batch.Row) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes scored: %d\n\n", len(rows)))

	count := min(len(rows), maxItemsToShow)
	for i := 0; i < count; i++ {
		row := rows[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, row.Resume))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", row.Score))
		if row.Gaps != "" {
			gaps := row.Gaps
			if len(gaps) > 40 {
				gaps = gaps[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Gaps: %s\n", gaps))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(rows) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(rows)-maxItemsToShow))
	}

	p.printBox("BATCH RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDeltas outputs what-if score changes per added skill.
func (p *Printer) PrintDeltas(base int, deltas []whatif.Delta) {
	if len(deltas) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Base score: %d\n\n", base))
	for i, d := range deltas {
		sign := ""
		if d.WithTerm > d.Base {
			sign = "+"
		}
		sb.WriteString(fmt.Sprintf("• %s: %d → %d (%s%d)", d.Term, d.Base, d.WithTerm, sign, d.WithTerm-d.Base))
		if i < len(deltas)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WHAT-IF", sb.String())
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	var sb strings.Builder
	lineLen := 0
	for i, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(w)
		lineLen += len(w)
	}
	return sb.String()
}
