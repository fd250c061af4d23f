package batch

import (
	"context"
	"encoding/csv"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OneForces/effectivness/internal/scoring"
)

func TestScore_RanksDescending(t *testing.T) {
	scorer := scoring.New(nil, nil)
	jd := "We need Python, Docker and Kubernetes experience for this role."
	resumes := []Resume{
		{Name: "weak.txt", Text: "I worked with Excel reports."},
		{Name: "strong.txt", Text: "Python, Docker, Kubernetes in production for three years."},
		{Name: "mid.txt", Text: "Python scripting and some Docker."},
	}

	rows, err := Score(context.Background(), scorer, jd, resumes, 2)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "strong.txt", rows[0].Resume)
	assert.Equal(t, "weak.txt", rows[2].Resume)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Score, rows[i].Score)
	}
}

func TestScore_EmptyInput(t *testing.T) {
	rows, err := Score(context.Background(), scoring.New(nil, nil), "any jd", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Score(ctx, scoring.New(nil, nil), "jd", []Resume{{Name: "a", Text: "b"}}, 1)
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{Resume: "a.txt", Score: 80, Strengths: "python, docker", Gaps: "kubernetes"},
		{Resume: "b.txt", Score: 40, Strengths: "python", Gaps: "docker, kubernetes"},
	}

	path, err := WriteCSV(rows)
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(path) })

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"resume", "score", "strengths", "gaps"}, records[0])
	assert.Equal(t, []string{"a.txt", "80", "python, docker", "kubernetes"}, records[1])
}
