package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLang_Cyrillic(t *testing.T) {
	assert.Equal(t, LangRU, DetectLang("Нужен Python разработчик"))
	assert.Equal(t, LangRU, DetectLang("ёлка"))
	assert.Equal(t, LangRU, DetectLang("Ёлка"))
}

func TestDetectLang_Latin(t *testing.T) {
	assert.Equal(t, LangEN, DetectLang("Need a Python developer"))
	assert.Equal(t, LangEN, DetectLang(""))
	assert.Equal(t, LangEN, DetectLang("12345 !@#"))
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Python", "python"},
		{"keeps plus", "C++", "c++"},
		{"keeps hash", "C#", "c#"},
		{"keeps dot", ".NET", ".net"},
		{"keeps hyphen", "scikit-learn", "scikit-learn"},
		{"strips punctuation", "python,", "python"},
		{"strips parens", "(docker)", "docker"},
		{"collapses whitespace", "  machine   learning  ", "machine learning"},
		{"cyrillic preserved", "Разработка", "разработка"},
		{"empty", "", ""},
		{"symbols only", "***", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeToken(tt.input))
		})
	}
}

func TestKeywords_EmptyInput(t *testing.T) {
	assert.Empty(t, Keywords("", 25))
	assert.Empty(t, Keywords("   \n\t  ", 25))
	assert.Empty(t, Keywords("Python and Docker", 0))
}

func TestKeywords_ExtractsSkillTerms(t *testing.T) {
	jd := "Need Python, pandas, numpy, scikit-learn; Docker is a plus."
	got := Keywords(jd, 25)

	require.NotEmpty(t, got)
	assert.Contains(t, got, "python")
	assert.Contains(t, got, "pandas")
	assert.Contains(t, got, "numpy")
	assert.Contains(t, got, "scikit-learn")
	assert.Contains(t, got, "docker")
	// "plus" is domain noise and must be filtered.
	assert.NotContains(t, got, "plus")
}

func TestKeywords_FiltersStopWords(t *testing.T) {
	text := "Strong experience with Kubernetes. Team player with project skills."
	got := Keywords(text, 25)

	assert.Contains(t, got, "kubernetes")
	assert.NotContains(t, got, "experience")
	assert.NotContains(t, got, "team")
	assert.NotContains(t, got, "project")
	assert.NotContains(t, got, "skills")
}

func TestKeywords_FiltersGeneralFunctionWords(t *testing.T) {
	text := "We build analytics dashboards. Required: SQL. Python and Docker are used daily."
	got := Keywords(text, 25)

	assert.Contains(t, got, "sql")
	assert.Contains(t, got, "python")
	assert.Contains(t, got, "docker")
	assert.Contains(t, got, "analytics")
	assert.Contains(t, got, "dashboards")
	for _, junk := range []string{"we", "are", "used", "daily", "build", "required"} {
		assert.NotContainsf(t, got, junk, "function word %q extracted as a keyword", junk)
	}
}

func TestKeywords_FiltersRussianFunctionWords(t *testing.T) {
	text := "Мы ежедневно используем Python и SQL. Обязательно знание Docker."
	got := Keywords(text, 25)

	assert.Contains(t, got, "python")
	assert.Contains(t, got, "sql")
	assert.Contains(t, got, "docker")
	for _, junk := range []string{"мы", "ежедневно", "используем", "обязательно"} {
		assert.NotContainsf(t, got, junk, "function word %q extracted as a keyword", junk)
	}
}

func TestKeywords_FiltersRussianStopWords(t *testing.T) {
	text := "Требования: опыт работы с Python и Docker, навыки SQL."
	got := Keywords(text, 25)

	assert.Contains(t, got, "python")
	assert.Contains(t, got, "docker")
	assert.Contains(t, got, "sql")
	assert.NotContains(t, got, "требования")
	assert.NotContains(t, got, "опыт")
	assert.NotContains(t, got, "навыки")
}

func TestKeywords_UniqueAndBounded(t *testing.T) {
	text := strings.Repeat("Python Docker Kubernetes PostgreSQL Redis Kafka Terraform Ansible. ", 4)
	got := Keywords(text, 3)

	assert.Len(t, got, 3)
	seen := make(map[string]int)
	for _, kw := range got {
		seen[kw]++
	}
	for kw, n := range seen {
		assert.Equalf(t, 1, n, "duplicate keyword %q", kw)
	}
}

func TestKeywords_Deterministic(t *testing.T) {
	text := "Senior Go engineer: Go, Kubernetes, PostgreSQL, gRPC, Kafka. Docker required."
	first := Keywords(text, 10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Keywords(text, 10))
	}
}

func TestKeywords_MinLength(t *testing.T) {
	got := Keywords("R x y z Go language", 25)
	assert.NotContains(t, got, "r")
	assert.NotContains(t, got, "x")
	assert.Contains(t, got, "go")
}
