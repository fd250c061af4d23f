// Package whatif estimates how the fit score would move if the candidate
// added specific skills to their resume.
package whatif

import (
	"context"
	"fmt"

	"github.com/OneForces/effectivness/internal/scoring"
)

// Delta is the score effect of adding one term to the resume.
type Delta struct {
	Term     string `json:"term"`
	Base     int    `json:"base"`
	WithTerm int    `json:"with_term"`
}

// DeltaScores rescores the resume once per candidate term, each time with the
// term appended as an extra skill line. Returns the base score and one Delta
// per term.
func DeltaScores(ctx context.Context, scorer *scoring.Scorer, jd, resume string, addTerms []string) (int, []Delta) {
	base := scorer.ScoreFit(ctx, jd, resume).Score

	out := make([]Delta, 0, len(addTerms))
	for _, term := range addTerms {
		modified := fmt.Sprintf("%s\nSkills: %s", resume, term)
		r := scorer.ScoreFit(ctx, jd, modified)
		out = append(out, Delta{Term: term, Base: base, WithTerm: r.Score})
	}
	return base, out
}
