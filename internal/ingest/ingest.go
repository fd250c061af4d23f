// Package ingest converts uploaded files (PDF, DOCX, Markdown, plain text)
// into best-effort plain text for scoring. Unsupported or corrupt inputs
// produce a marked warning string instead of an error, so upload handling
// never breaks the caller's flow.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// WarnMarker prefixes the text returned for inputs that could not be parsed.
const WarnMarker = "[WARN]"

var (
	mdCodeRe    = regexp.MustCompile("(?s)`{1,3}.*?`{1,3}")
	mdHeadingRe = regexp.MustCompile(`(?m)^#+\s*`)
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
)

// ReadAny extracts plain text from raw file bytes, dispatching on the
// filename extension. It never returns an error: failures degrade to the
// plain-text fallback, and a completely unusable input yields a warning
// string.
func ReadAny(data []byte, filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		if text, err := pdfText(data); err == nil {
			return cleanText(text)
		}
	case ".docx":
		if text, err := docxText(data); err == nil {
			return cleanText(text)
		}
	case ".md":
		raw := string(data)
		raw = mdCodeRe.ReplaceAllString(raw, "")
		raw = mdHeadingRe.ReplaceAllString(raw, "")
		return cleanText(raw)
	}

	// Plain text fallback, also used when a binary parser fails.
	text := cleanText(string(data))
	if text == "" && len(data) > 0 {
		return fmt.Sprintf("%s could not extract text from %s", WarnMarker, filename)
	}
	return text
}

// pdfText extracts text from all pages of a PDF.
func pdfText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var pages []string
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("pdf has no extractable text")
	}
	return strings.Join(pages, "\n\n"), nil
}

// docxText extracts paragraph text from a DOCX archive.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()
		return parseDocxXML(rc)
	}
	return "", fmt.Errorf("document.xml not found in docx")
}

// parseDocxXML walks the WordprocessingML stream collecting w:t text nodes,
// inserting newlines at paragraph ends.
func parseDocxXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("docx has no text content")
	}
	return b.String(), nil
}

// cleanText normalizes line endings, drops NUL bytes and collapses runs of
// blank lines.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\x00", " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
