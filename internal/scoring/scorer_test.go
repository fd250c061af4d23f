package scoring

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder returns deterministic per-text vectors without any backend.
type stubEmbedder struct {
	err   error
	calls int
}

func (s *stubEmbedder) Embed(_ context.Context, texts ...string) ([][]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		// Identical direction for every text: cosine is always 1.
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func newTestScorer() *Scorer {
	return New(&stubEmbedder{}, nil)
}

func TestScoreFit_EmptyInputGuard(t *testing.T) {
	s := newTestScorer()
	for _, pair := range [][2]string{
		{"", "some resume"},
		{"some jd", ""},
		{"   \n ", "resume"},
		{"", ""},
	} {
		r := s.ScoreFit(context.Background(), pair[0], pair[1])
		assert.Equal(t, 0, r.Score)
		assert.Empty(t, r.Strengths)
		assert.Empty(t, r.Gaps)
		assert.NotEmpty(t, r.Diagnostic)
	}
}

func TestScoreFit_RangeInvariant(t *testing.T) {
	s := newTestScorer()
	pairs := [][2]string{
		{"Need Python and SQL", "Python developer"},
		{"Required: Kubernetes, Docker, Terraform", "I write poetry"},
		{"Go Go Go", "Go Go Go"},
		{"Обязательно: Python", "Навыки: Java"},
	}
	for _, p := range pairs {
		r := s.ScoreFit(context.Background(), p[0], p[1])
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
	}
}

func TestScoreFit_Determinism(t *testing.T) {
	s := newTestScorer()
	jd := "Need Python, pandas, numpy, scikit-learn; Docker is a plus."
	cv := "Skills: Python, pandas, numpy, matplotlib."

	first := s.ScoreFit(context.Background(), jd, cv)
	second := s.ScoreFit(context.Background(), jd, cv)
	assert.Equal(t, first, second)
}

func TestScoreFit_ScenarioDataScience(t *testing.T) {
	s := newTestScorer()
	jd := "Need Python, pandas, numpy, scikit-learn; Docker is a plus."
	cv := "Skills: Python, pandas, numpy, matplotlib."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.GreaterOrEqual(t, r.Score, 0)
	assert.LessOrEqual(t, r.Score, 100)
	assert.Contains(t, r.Strengths, "python")
	assert.Contains(t, r.Strengths, "pandas")
	assert.Contains(t, r.Strengths, "numpy")
	assert.Contains(t, r.Gaps, "scikit-learn")
	assert.NotContains(t, r.Strengths, "scikit-learn")
}

func TestScoreFit_MissingCriticalPenalty(t *testing.T) {
	s := newTestScorer()
	jd := "Required: SQL. We maintain Python services and Docker infrastructure."
	cv := "Backend engineer. I maintain Python services and Docker infrastructure daily."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.Contains(t, r.Diagnostic, "Missing critical: sql")
	// Exactly one missing critical term: penalty is 0.1, not more.
	assert.Contains(t, r.Diagnostic, "Penalty=0.10")
	assert.Contains(t, r.Gaps, "sql")
}

func TestScoreFit_FunctionWordsNeverSurface(t *testing.T) {
	s := newTestScorer()
	jd := "We build analytics dashboards. Required: SQL. Python and Docker are used daily."
	cv := "Backend engineer. Python services in Docker containers."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.Contains(t, r.Gaps, "sql")
	assert.Contains(t, r.Strengths, "python")
	for _, junk := range []string{"we", "are", "used", "daily", "build", "required"} {
		assert.NotContains(t, r.Strengths, junk)
		assert.NotContains(t, r.Gaps, junk)
	}
}

func TestScoreFit_NoTriggerNoPenalty(t *testing.T) {
	s := newTestScorer()
	jd := "We use SQL, Python and Docker every day."
	cv := "Frontend developer, JavaScript and CSS."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.Contains(t, r.Diagnostic, "Penalty=0.00")
	assert.Contains(t, r.Diagnostic, "Critical: —")
}

func TestScoreFit_PenaltyIsCapped(t *testing.T) {
	s := newTestScorer()
	jd := "Required: SQL, Python, Docker, Kubernetes, Terraform, Ansible. All mandatory."
	cv := "I am a pastry chef with excellent knife work."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.Contains(t, r.Diagnostic, "Penalty=0.30")
	assert.GreaterOrEqual(t, r.Score, 0)
}

func TestScoreFit_DegradedWithoutEmbedder(t *testing.T) {
	s := New(nil, nil)
	jd := "Required: Python and SQL for data work."
	cv := "Python and SQL, plenty of both."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.Contains(t, r.Diagnostic, "Semantic=off")
	// Lexical-only mode is not additionally punished.
	assert.Contains(t, r.Diagnostic, "Penalty=0.00")
	assert.GreaterOrEqual(t, r.Score, 0)
	assert.LessOrEqual(t, r.Score, 100)
}

func TestScoreFit_EmbedderFailureDegrades(t *testing.T) {
	s := New(&stubEmbedder{err: fmt.Errorf("backend down")}, nil)
	jd := "Need Python and Docker."
	cv := "Python and Docker all day."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.Contains(t, r.Diagnostic, "Semantic=off")
	assert.Greater(t, r.Score, 0, "lexical overlap alone should produce a non-zero score")
}

func TestScoreFit_SemanticAvailableReported(t *testing.T) {
	s := newTestScorer()
	r := s.ScoreFit(context.Background(), "Need Python.", "Python here.")
	// Identical stub vectors: cosine 1 remaps to 1.0.
	assert.Contains(t, r.Diagnostic, "Semantic=1.00")
}

func TestScoreFit_StrengthsGapsComplementarity(t *testing.T) {
	s := newTestScorer()
	jd := "Need Python, Docker, Kubernetes, Terraform, PostgreSQL."
	cv := "I know Python and Docker."

	r := s.ScoreFit(context.Background(), jd, cv)
	require.NotEmpty(t, r.Strengths)
	require.NotEmpty(t, r.Gaps)
	assert.LessOrEqual(t, len(r.Strengths), 8)
	assert.LessOrEqual(t, len(r.Gaps), 8)

	for _, st := range r.Strengths {
		assert.NotContains(t, r.Gaps, st, "a term cannot be both strength and gap")
	}
	assert.Contains(t, r.Strengths, "python")
	assert.Contains(t, r.Strengths, "docker")
	assert.Contains(t, r.Gaps, "kubernetes")
	assert.Contains(t, r.Gaps, "terraform")
}

func TestScoreFit_AliasBridgesSurfaceVariants(t *testing.T) {
	s := newTestScorer()
	jd := "Need scikit-learn for modeling."
	cv := "Built models with sklearn daily, sklearn pipelines everywhere."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.Contains(t, r.Strengths, "scikit-learn")
	assert.NotContains(t, r.Gaps, "scikit-learn")
}

func TestScoreFit_DiagnosticReportsLanguage(t *testing.T) {
	s := newTestScorer()

	r := s.ScoreFit(context.Background(), "Нужен Python-разработчик.", "Python опыт 5 лет.")
	assert.Contains(t, r.Diagnostic, "Lang=ru")

	r = s.ScoreFit(context.Background(), "Need a Python developer.", "Python for 5 years.")
	assert.Contains(t, r.Diagnostic, "Lang=en")
}

func TestScoreFit_CoverageMarks(t *testing.T) {
	s := newTestScorer()
	jd := "Need Python and Kubernetes."
	cv := "Python only."

	r := s.ScoreFit(context.Background(), jd, cv)
	assert.Contains(t, r.Diagnostic, "python:✅")
	assert.Contains(t, r.Diagnostic, "kubernetes:—")
	assert.True(t, strings.Contains(r.Diagnostic, "Coverage: "))
}

func TestJaccard(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard([]string{"a", "b"}, []string{"b", "a"}))
	assert.Equal(t, 0.0, Jaccard(nil, nil))
	assert.Equal(t, 0.0, Jaccard([]string{"a"}, []string{"b"}))
	assert.InDelta(t, 1.0/3.0, Jaccard([]string{"a", "b"}, []string{"b", "c"}), 1e-9)
	assert.Equal(t, 0.0, Jaccard([]string{"a"}, nil))
}
