// Package scoring blends semantic similarity, lexical keyword overlap and a
// critical-skill penalty into a single explainable 0–100 job-fit score. This
// is the sole public entry point of the engine; everything else in
// internal/ serves it.
package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/OneForces/effectivness/internal/critical"
	"github.com/OneForces/effectivness/internal/embedding"
	"github.com/OneForces/effectivness/internal/extract"
	"github.com/OneForces/effectivness/internal/terms"
)

const (
	topKeywords = 25

	semanticWeight = 0.6
	lexicalWeight  = 0.4

	penaltyPerMissing = 0.1
	penaltyCap        = 0.3

	maxHighlights = 8  // strengths and gaps are truncated to this many terms
	coverageTerms = 12 // top JD terms shown in the diagnostic coverage list
)

// Result is the immutable outcome of one scoring call.
type Result struct {
	Score      int      `json:"score"`
	Strengths  []string `json:"strengths"`
	Gaps       []string `json:"gaps"`
	Diagnostic string   `json:"diagnostic"`
}

// Embedder is the semantic-signal dependency of the scorer. Satisfied by
// *embedding.Provider; a stub suffices for tests.
type Embedder interface {
	Embed(ctx context.Context, texts ...string) ([][]float32, error)
}

// Scorer computes job-fit scores. It is stateless per call; concurrent calls
// share only the injected embedder (and its cache), which is safe under the
// embedder's own locking.
type Scorer struct {
	embedder Embedder
	log      *zap.Logger
}

// New creates a Scorer. embedder may be nil, in which case every call runs in
// degraded lexical-only mode. A nil logger defaults to zap.NewNop.
func New(embedder Embedder, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{embedder: embedder, log: log}
}

// ScoreFit scores how well a resume fits a job description. It never fails:
// empty input yields the zero-score guard result, and an unavailable
// embedding backend degrades the call to lexical-only scoring.
func (s *Scorer) ScoreFit(ctx context.Context, jdText, resumeText string) Result {
	if strings.TrimSpace(jdText) == "" || strings.TrimSpace(resumeText) == "" {
		return Result{Score: 0, Strengths: []string{}, Gaps: []string{}, Diagnostic: "no data for scoring"}
	}

	jdRaw := extract.Keywords(jdText, topKeywords)
	cvRaw := extract.Keywords(resumeText, topKeywords)

	jdTerms := terms.Normalize(jdRaw)
	cvTerms := terms.Normalize(cvRaw)
	pretty := terms.PrettyMap(jdRaw)
	cvSet := toSet(cvTerms)

	semantic, semanticOK := s.semanticSignal(ctx, jdText, resumeText)
	lexical := Jaccard(jdTerms, cvTerms)

	crit := critical.Detect(jdText, jdRaw)
	var missing []string
	for _, c := range crit {
		if _, ok := cvSet[c]; !ok {
			missing = append(missing, c)
		}
	}
	penalty := math.Min(penaltyCap, penaltyPerMissing*float64(len(missing)))

	var score int
	if semanticOK && semantic > 0 {
		raw := math.Max(0, semanticWeight*semantic+lexicalWeight*lexical-penalty)
		score = clampScore(math.Round(100 * raw))
	} else {
		// Degraded mode: the lexical signal stands alone and is not
		// additionally punished for missing criticals.
		semanticOK = false
		penalty = 0
		score = clampScore(math.Round(100 * lexical))
	}

	strengths := make([]string, 0, maxHighlights)
	gaps := make([]string, 0, maxHighlights)
	for _, t := range jdTerms {
		if _, ok := cvSet[t]; ok {
			if len(strengths) < maxHighlights {
				strengths = append(strengths, prettyForm(pretty, t))
			}
		} else if len(gaps) < maxHighlights {
			gaps = append(gaps, prettyForm(pretty, t))
		}
	}

	diag := s.diagnostic(diagnosticInput{
		semantic:   semantic,
		semanticOK: semanticOK,
		lexical:    lexical,
		penalty:    penalty,
		lang:       extract.DetectLang(jdText),
		jdCount:    len(jdTerms),
		cvCount:    len(cvTerms),
		critical:   crit,
		missing:    missing,
		jdTerms:    jdTerms,
		pretty:     pretty,
		cvSet:      cvSet,
	})

	return Result{Score: score, Strengths: strengths, Gaps: gaps, Diagnostic: diag}
}

// semanticSignal embeds both full texts and returns the cosine similarity
// remapped from [-1,1] into [0,1]. Any failure returns (0, false): the signal
// is "unavailable", which is not the same as zero similarity.
func (s *Scorer) semanticSignal(ctx context.Context, jdText, resumeText string) (float64, bool) {
	if s.embedder == nil {
		return 0, false
	}
	vecs, err := s.embedder.Embed(ctx, jdText, resumeText)
	if err != nil {
		s.log.Debug("semantic signal unavailable", zap.Error(err))
		return 0, false
	}
	if len(vecs) != 2 {
		s.log.Debug("semantic signal unavailable", zap.Int("vectors", len(vecs)))
		return 0, false
	}
	cos := embedding.Cosine(vecs[0], vecs[1])
	return (cos + 1) / 2, true
}

type diagnosticInput struct {
	semantic   float64
	semanticOK bool
	lexical    float64
	penalty    float64
	lang       extract.Lang
	jdCount    int
	cvCount    int
	critical   []string
	missing    []string
	jdTerms    []string
	pretty     map[string]string
	cvSet      map[string]struct{}
}

func (s *Scorer) diagnostic(in diagnosticInput) string {
	var b strings.Builder

	if in.semanticOK {
		fmt.Fprintf(&b, "Semantic=%.2f", in.semantic)
	} else {
		b.WriteString("Semantic=off")
	}
	fmt.Fprintf(&b, ", Lexical=%.2f, Penalty=%.2f. Lang=%s. Terms JD/CV: %d/%d.",
		in.lexical, in.penalty, in.lang, in.jdCount, in.cvCount)

	fmt.Fprintf(&b, " Critical: %s.", joinOrDash(in.critical))
	fmt.Fprintf(&b, " Missing critical: %s.", joinOrDash(in.missing))

	b.WriteString(" Coverage: ")
	shown := in.jdTerms
	if len(shown) > coverageTerms {
		shown = shown[:coverageTerms]
	}
	for i, t := range shown {
		if i > 0 {
			b.WriteString(", ")
		}
		mark := "—"
		if _, ok := in.cvSet[t]; ok {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s:%s", prettyForm(in.pretty, t), mark)
	}
	return b.String()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, ", ")
}

func prettyForm(pretty map[string]string, normalized string) string {
	if surface, ok := pretty[normalized]; ok && surface != "" {
		return surface
	}
	return normalized
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
