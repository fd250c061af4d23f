// Package summary turns a fit result into a short executive brief in
// markdown. The coverage table is recovered from the diagnostic line rather
// than recomputed, so the brief always agrees with the score it describes.
package summary

import (
	"fmt"
	"strings"

	"github.com/OneForces/effectivness/internal/scoring"
)

// CoverageItem is one JD skill with its resume coverage flag.
type CoverageItem struct {
	Skill   string
	Covered bool
}

// ParseCoverage extracts the per-skill coverage pairs embedded in a
// diagnostic string. Returns nil when the diagnostic carries no coverage
// section.
func ParseCoverage(diagnostic string) []CoverageItem {
	_, after, found := strings.Cut(diagnostic, "Coverage: ")
	if !found {
		return nil
	}
	var items []CoverageItem
	for _, part := range strings.Split(after, ", ") {
		skill, mark, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok || skill == "" {
			continue
		}
		items = append(items, CoverageItem{
			Skill:   skill,
			Covered: strings.TrimSpace(mark) == "✅",
		})
	}
	return items
}

func verdict(score int) string {
	switch {
	case score >= 75:
		return "Сильное соответствие: можно откликаться с текущим резюме."
	case score >= 50:
		return "Умеренное соответствие: стоит адаптировать резюме под вакансию."
	default:
		return "Слабое соответствие: перед откликом закройте ключевые пробелы."
	}
}

// Build renders the executive summary for one scored pair.
func Build(result scoring.Result) string {
	var b strings.Builder
	b.WriteString("# Executive Summary\n\n")
	fmt.Fprintf(&b, "**Fit Score: %d/100**\n\n", result.Score)
	b.WriteString(verdict(result.Score))
	b.WriteString("\n\n")

	if len(result.Strengths) > 0 {
		b.WriteString("## Сильные стороны\n\n")
		for _, s := range result.Strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	if len(result.Gaps) > 0 {
		b.WriteString("## Пробелы\n\n")
		for _, g := range result.Gaps {
			fmt.Fprintf(&b, "- %s\n", g)
		}
		b.WriteString("\n")
	}

	if items := ParseCoverage(result.Diagnostic); len(items) > 0 {
		b.WriteString("## Покрытие требований\n\n")
		b.WriteString("| Требование | В резюме |\n|---|---|\n")
		for _, it := range items {
			mark := "нет"
			if it.Covered {
				mark = "да"
			}
			fmt.Fprintf(&b, "| %s | %s |\n", it.Skill, mark)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n")
	fmt.Fprintf(&b, "_%s_\n", result.Diagnostic)
	return b.String()
}
