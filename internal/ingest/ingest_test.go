package ingest

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAny_PlainText(t *testing.T) {
	got := ReadAny([]byte("Python developer\r\nwith Docker\r\n\r\n\r\n\r\nand SQL"), "resume.txt")
	assert.Equal(t, "Python developer\nwith Docker\n\nand SQL", got)
}

func TestReadAny_Markdown(t *testing.T) {
	md := "# Resume\n\nSkills: `python`, Docker\n\n```\ncode block\n```\n## Experience\nBackend work"
	got := ReadAny([]byte(md), "resume.md")

	assert.Contains(t, got, "Resume")
	assert.Contains(t, got, "Docker")
	assert.Contains(t, got, "Experience")
	assert.NotContains(t, got, "```")
	assert.NotContains(t, got, "code block")
	assert.NotContains(t, got, "#")
}

func TestReadAny_NulBytesStripped(t *testing.T) {
	got := ReadAny([]byte("before\x00after"), "weird.txt")
	assert.NotContains(t, got, "\x00")
}

func TestReadAny_CorruptPDFFallsBack(t *testing.T) {
	// Not a real PDF: parser fails, plain-text fallback kicks in.
	got := ReadAny([]byte("just text pretending"), "fake.pdf")
	assert.Equal(t, "just text pretending", got)
}

func TestReadAny_DOCX(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Python engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Docker and SQL</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	got := ReadAny(buf.Bytes(), "resume.docx")
	assert.Contains(t, got, "Python engineer")
	assert.Contains(t, got, "Docker and SQL")
}

func TestReadAny_EmptyBinary(t *testing.T) {
	got := ReadAny([]byte{0x00, 0x00, 0x00}, "blob.bin")
	assert.True(t, strings.HasPrefix(got, WarnMarker), "unusable input must yield a marked warning, got %q", got)
}

func TestReadAny_EmptyInput(t *testing.T) {
	assert.Equal(t, "", ReadAny(nil, "empty.txt"))
}
