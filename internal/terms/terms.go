// Package terms canonicalizes extracted skill terms so lexical comparison is
// not defeated by surface variation ("sklearn" vs "Scikit-Learn").
package terms

import "strings"

// aliases maps a normalized synonym to its canonical form. The table is
// static, read-only and process-wide.
var aliases = map[string]string{
	"sklearn":      "scikit-learn",
	"scikit learn": "scikit-learn",
	"tf":           "tensorflow",
	"k8s":          "kubernetes",
	"js":           "javascript",
	"ts":           "typescript",
	"golang":       "go",
	"postgres":     "postgresql",
	"psql":         "postgresql",
	"np":           "numpy",
	"pd":           "pandas",
	"torch":        "pytorch",
	"nodejs":       "node.js",
	"reactjs":      "react",
	"react.js":     "react",
	"vuejs":        "vue",
	"vue.js":       "vue",
	"gcloud":       "gcp",
	"ci cd":        "ci-cd",
	"ci/cd":        "ci-cd",
	"эластик":      "elasticsearch",
}

// Canonical lowercases and trims a single term, then resolves it through the
// alias table. Unknown terms pass through lowercased.
func Canonical(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	if canonical, ok := aliases[t]; ok {
		return canonical
	}
	return t
}

// Normalize canonicalizes every term and deduplicates the result, keeping
// first-occurrence order.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, term := range raw {
		t := Canonical(term)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// PrettyMap returns a normalized→surface mapping for a raw term list, so
// strengths and gaps can be reported with the JD's original spelling. The
// first surface form wins for each canonical term.
func PrettyMap(raw []string) map[string]string {
	m := make(map[string]string, len(raw))
	for _, term := range raw {
		t := Canonical(term)
		if t == "" {
			continue
		}
		if _, ok := m[t]; !ok {
			m[t] = strings.TrimSpace(term)
		}
	}
	return m
}
