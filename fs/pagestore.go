package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/doctext"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements doctext.PageStore at compile time.
var _ doctext.PageStore = (*FileStore)(nil)

// FileStore implements doctext.PageStore with atomic update semantics.
// Pages are saved to a temporary directory next to the output directory
// and moved into place on Commit.
type FileStore struct {
	dir    string
	ext    string
	source string
	now    func() time.Time
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithExtension sets the extension of saved files. Defaults to ".txt".
func WithExtension(ext string) Option {
	return func(s *FileStore) {
		s.ext = ext
	}
}

// WithSource records where pages came from in the frontmatter.
func WithSource(source string) Option {
	return func(s *FileStore) {
		s.source = source
	}
}

// WithClock sets the clock used for the rendered date.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) {
		s.now = now
	}
}

// NewFileStore creates a new FileStore writing below dir.
// Files are saved to dir.tmp and moved to dir on Commit.
func NewFileStore(dir string, opts ...Option) *FileStore {
	s := &FileStore{
		dir: filepath.Clean(dir),
		ext: ".txt",
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileStore) tempDir() string {
	return s.dir + ".tmp"
}

// Save writes page below the temporary directory.
func (s *FileStore) Save(ctx context.Context, page *doctext.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := PagePath(page.Request, s.ext)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := s.FormatPage(page)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// frontmatter is the YAML header written above each page.
type frontmatter struct {
	Source   string `yaml:"source,omitempty"`
	Crate    string `yaml:"crate"`
	Item     string `yaml:"item,omitempty"`
	Version  string `yaml:"version,omitempty"`
	Hash     string `yaml:"hash"`
	Rendered string `yaml:"rendered"`
}

// FormatPage formats a page with YAML frontmatter.
func (s *FileStore) FormatPage(page *doctext.Page) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:   s.source,
		Crate:    page.Request.Crate,
		Item:     page.Request.Item,
		Version:  page.Request.Version,
		Hash:     page.ContentHash,
		Rendered: s.now().Format("2006-01-02"),
	})
	if err != nil {
		return "", doctext.Errorf(doctext.EINTERNAL, "encoding frontmatter: %v", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(strings.Trim(page.Content, "\n"))
	b.WriteString("\n")
	return b.String(), nil
}

// Commit moves saved pages into the output directory. Existing files
// with the same paths are replaced; other files are left alone.
func (s *FileStore) Commit() error {
	if _, err := os.Stat(s.tempDir()); errors.Is(err, iofs.ErrNotExist) {
		return nil
	}

	if _, err := os.Stat(s.dir); errors.Is(err, iofs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(s.dir), 0755); err != nil {
			return err
		}
		return os.Rename(s.tempDir(), s.dir)
	}

	err := filepath.WalkDir(s.tempDir(), func(path string, d iofs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.tempDir(), path)
		if err != nil {
			return err
		}
		dst := filepath.Join(s.dir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		return os.Rename(path, dst)
	})
	if err != nil {
		return err
	}

	return os.RemoveAll(s.tempDir())
}

// Abort discards saved pages.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
