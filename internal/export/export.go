// Package export writes generated documents to disk and bundles them into a
// single application package archive.
package export

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is one named artifact to export. Name becomes the file name
// inside the archive; markdown content is expected but not enforced.
type Document struct {
	Name    string
	Content string
}

// WriteMarkdown saves a single document into dir and returns its path.
// An empty dir writes into a fresh temp directory.
func WriteMarkdown(dir string, doc Document) (string, error) {
	if strings.TrimSpace(doc.Name) == "" {
		return "", fmt.Errorf("export: document has no name")
	}
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "skillpilot_export_")
		if err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}
	path := filepath.Join(dir, sanitizeName(doc.Name))
	if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Package bundles all documents into one zip archive and returns its path.
// Documents are stored in name order so the archive layout is stable.
func Package(dir string, docs []Document) (string, error) {
	if len(docs) == 0 {
		return "", fmt.Errorf("export: nothing to package")
	}
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "skillpilot_export_")
		if err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}

	name := fmt.Sprintf("application_%s_%s.zip",
		time.Now().Format("20060102"), uuid.NewString()[:8])
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	sorted := make([]Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	zw := zip.NewWriter(f)
	for _, doc := range sorted {
		if strings.TrimSpace(doc.Name) == "" {
			continue
		}
		w, err := zw.Create(sanitizeName(doc.Name))
		if err != nil {
			return "", fmt.Errorf("add %s to archive: %w", doc.Name, err)
		}
		if _, err := w.Write([]byte(doc.Content)); err != nil {
			return "", fmt.Errorf("write %s to archive: %w", doc.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalize archive: %w", err)
	}
	return path, nil
}

// sanitizeName keeps archive entries flat and filesystem safe.
func sanitizeName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "_", "..", "_")
	return replacer.Replace(name)
}
