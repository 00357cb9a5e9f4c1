// Package fs provides file-based output for enhanced pages.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagelift/pagelift"
)

// URLToPath converts a source URL to a relative output file path.
// Example: https://example.com/docs/api/users -> docs/api/users.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash -> index.html
	if path == "" || path == "/" {
		return "index.html", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.html in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.html", nil
	}

	// Strip an existing markup extension so local .html inputs don't
	// produce double extensions.
	path = strings.TrimSuffix(strings.TrimSuffix(path, ".html"), ".htm")

	return path + ".html", nil
}

// Ensure Writer implements pagelift.PageWriter at compile time.
var _ pagelift.PageWriter = (*Writer)(nil)

// Writer writes enhanced pages to a directory: the serialized HTML next to
// a JSON sidecar holding the extraction record (or the error record when
// the run failed).
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes the page's HTML and its record sidecar to disk.
func (w *Writer) WritePage(ctx context.Context, page *pagelift.EnhancedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.SourceURL)
	if err != nil {
		return err
	}

	htmlPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(htmlPath), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(htmlPath, []byte(page.HTML), 0644); err != nil {
		return err
	}

	record, err := recordPayload(page)
	if err != nil {
		return err
	}

	jsonPath := strings.TrimSuffix(htmlPath, ".html") + ".json"
	return os.WriteFile(jsonPath, record, 0644)
}

func recordPayload(page *pagelift.EnhancedPage) ([]byte, error) {
	if page.Result != nil {
		return json.MarshalIndent(page.Result, "", "  ")
	}
	return json.MarshalIndent(page.Failure, "", "  ")
}
