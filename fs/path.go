// Package fs provides file-based storage for rendered documentation.
package fs

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/doctext"
)

// Extension returns the file extension used for pages rendered in mode.
func Extension(mode doctext.Mode) string {
	if mode == doctext.ModeMarkdown {
		return ".md"
	}
	return ".txt"
}

// PagePath converts a request to a relative file path.
// Example: ropey iter::trait.Chain → ropey/iter/trait.Chain.md
func PagePath(req doctext.Request, ext string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	rel := path.Join(req.Crate, strings.TrimSuffix(req.PagePath(), ".html")) + ext
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", doctext.Errorf(doctext.EINVALID, "path traversal in %q", req.String())
	}
	return filepath.FromSlash(rel), nil
}
