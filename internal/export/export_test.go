package export

import (
	"archive/zip"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdown(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteMarkdown(dir, Document{Name: "summary.md", Content: "# Hi\n"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Hi\n", string(data))
}

func TestWriteMarkdown_NoName(t *testing.T) {
	_, err := WriteMarkdown(t.TempDir(), Document{Content: "x"})
	assert.Error(t, err)
}

func TestPackage(t *testing.T) {
	docs := []Document{
		{Name: "resume.md", Content: "resume body"},
		{Name: "cover letter.md", Content: "cover body"},
	}

	path, err := Package(t.TempDir(), docs)
	require.NoError(t, err)

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	// sorted by document name, spaces replaced
	assert.Equal(t, []string{"cover_letter.md", "resume.md"}, names)

	rc, err := zr.File[1].Open()
	require.NoError(t, err)
	defer rc.Close()
	buf := make([]byte, 32)
	n, _ := rc.Read(buf)
	assert.Equal(t, "resume body", string(buf[:n]))
}

func TestPackage_Empty(t *testing.T) {
	_, err := Package(t.TempDir(), nil)
	assert.Error(t, err)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "evil.md", sanitizeName("../../evil.md"))
	assert.Equal(t, "my_doc.md", sanitizeName("my doc.md"))
}
