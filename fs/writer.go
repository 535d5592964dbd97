// Package fs provides file-based storage for conversation transcripts.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/chatscrape"
)

// URLToPath converts a chat page URL to a relative transcript path. The host
// is kept as the top-level directory so transcripts from different sites
// don't collide.
// Example: https://example.com/threads/42 → example.com/threads/42.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", chatscrape.Errorf(chatscrape.EINVALID, "URL %q has no host", rawURL)
	}

	path := u.Path

	// Root or trailing slash → index.md
	if path == "" || path == "/" {
		return filepath.Join(u.Host, "index.md"), nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return filepath.Join(u.Host, path, "index.md"), nil
	}

	return filepath.Join(u.Host, path+".md"), nil
}

// FormatTranscript formats a transcript body with YAML frontmatter carrying
// the scrape metadata.
func FormatTranscript(res *chatscrape.ScrapeResult, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(res.PageURL)
	b.WriteString("\ntitle: ")
	b.WriteString(res.PageTitle)
	b.WriteString("\nscraped: ")
	b.WriteString(res.ScrapedAt.Format(time.RFC3339))
	b.WriteString("\nmessages: ")
	b.WriteString(strconv.Itoa(res.Count))
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// Ensure Writer implements chatscrape.TranscriptWriter at compile time.
var _ chatscrape.TranscriptWriter = (*Writer)(nil)

// Writer writes transcripts as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteTranscript writes a transcript to disk and returns the written path.
func (w *Writer) WriteTranscript(ctx context.Context, res *chatscrape.ScrapeResult, body string) (string, error) {
	relPath, err := URLToPath(res.PageURL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content := FormatTranscript(res, body)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
