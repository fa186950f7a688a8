// Package cargo builds rustdoc documentation locally with the cargo tool
// and serves its pages as a doctext.Source.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/fwojciec/doctext"
)

// Ensure Source implements doctext.Source at compile time.
var _ doctext.Source = (*Source)(nil)

var validCrateRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Runner runs the named program with args in dir.
type Runner func(ctx context.Context, dir, name string, args ...string) error

// Source builds documentation with `cargo doc` and reads pages from the
// generated target/doc tree.
//
// When Dir holds a Cargo.toml the project in Dir is documented. Otherwise a
// throwaway binary project depending on the requested crate is created in
// a temporary directory. Each crate is built once per Source; Close removes
// the temporary projects.
type Source struct {
	// Dir is checked for a Cargo.toml. Defaults to the working directory.
	Dir string

	// Cargo is the cargo executable. Defaults to "cargo".
	Cargo string

	// Run executes commands. Defaults to os/exec with stderr captured.
	Run Runner

	mu     sync.Mutex
	built  map[string]string
	temps  []string
	closed bool
}

// NewSource returns a Source rooted at dir.
func NewSource(dir string) *Source {
	return &Source{Dir: dir}
}

// Acquire builds the documentation the request needs and returns the
// markup of the requested page.
func (s *Source) Acquire(ctx context.Context, req doctext.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if !validCrateRegex.MatchString(req.Crate) {
		return "", doctext.Errorf(doctext.EINVALID, "invalid crate name %q", req.Crate)
	}

	docDir, err := s.build(ctx, req)
	if err != nil {
		return "", err
	}

	crateDir := filepath.Join(docDir, req.ModuleName())
	if _, err := os.Stat(crateDir); err != nil {
		return "", doctext.Errorf(doctext.ENOTFOUND, "documentation not found for crate: %s", req.Crate)
	}

	page := filepath.Join(crateDir, filepath.FromSlash(req.PagePath()))
	data, err := os.ReadFile(page)
	if errors.Is(err, fs.ErrNotExist) {
		return "", doctext.Errorf(doctext.ENOTFOUND, "documentation not found at path: %s", page)
	} else if err != nil {
		return "", fmt.Errorf("reading %s: %w", page, err)
	}

	return string(data), nil
}

// build runs cargo doc once per crate and returns the target/doc directory.
func (s *Source) build(ctx context.Context, req doctext.Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", doctext.Errorf(doctext.EINVALID, "source is closed")
	}

	dir, err := s.dir()
	if err != nil {
		return "", err
	}

	local := fileExists(filepath.Join(dir, "Cargo.toml"))
	key := dir
	if !local {
		key = req.Crate + "@" + req.Version
	}
	if docDir, ok := s.built[key]; ok {
		return docDir, nil
	}

	var docDir string
	if local {
		docDir, err = s.buildProject(ctx, dir)
	} else {
		docDir, err = s.buildDependency(ctx, req)
	}
	if err != nil {
		return "", err
	}

	if s.built == nil {
		s.built = make(map[string]string)
	}
	s.built[key] = docDir
	return docDir, nil
}

func (s *Source) buildProject(ctx context.Context, dir string) (string, error) {
	if err := s.run(ctx, dir, "doc", "--no-deps"); err != nil {
		return "", doctext.Errorf(doctext.EINTERNAL, "failed to build documentation with cargo doc: %v", err)
	}
	return filepath.Join(dir, "target", "doc"), nil
}

func (s *Source) buildDependency(ctx context.Context, req doctext.Request) (string, error) {
	tmp, err := os.MkdirTemp("", "doctext-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary directory: %w", err)
	}
	s.temps = append(s.temps, tmp)

	if err := s.run(ctx, tmp, "new", "--bin", "doctext_project"); err != nil {
		return "", doctext.Errorf(doctext.EINTERNAL, "failed to create temporary cargo project: %v", err)
	}

	project := filepath.Join(tmp, "doctext_project")
	manifest := filepath.Join(project, "Cargo.toml")
	content, err := os.ReadFile(manifest)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", manifest, err)
	}
	content = append(content, dependencySection(req)...)
	if err := os.WriteFile(manifest, content, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", manifest, err)
	}

	// -p documents the dependency itself; plain --no-deps would only
	// document the empty binary.
	if err := s.run(ctx, project, "doc", "--no-deps", "-p", req.Crate); err != nil {
		return "", doctext.Errorf(doctext.EINTERNAL, "failed to build documentation for crate: %s: %v", req.Crate, err)
	}

	return filepath.Join(project, "target", "doc"), nil
}

// dependencySection returns the manifest lines that add the crate.
func dependencySection(req doctext.Request) string {
	version := req.Version
	if version == "" {
		version = "*"
	}
	return fmt.Sprintf("\n[dependencies]\n%s = %q\n", req.Crate, version)
}

func (s *Source) dir() (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return dir, nil
}

func (s *Source) run(ctx context.Context, dir string, args ...string) error {
	name := s.Cargo
	if name == "" {
		name = "cargo"
	}
	run := s.Run
	if run == nil {
		run = ExecRunner
	}
	return run(ctx, dir, name, args...)
}

// Close removes temporary projects. Close is safe to call multiple times.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	var errs []error
	for _, dir := range s.temps {
		if err := os.RemoveAll(dir); err != nil {
			errs = append(errs, err)
		}
	}
	s.temps = nil
	return errors.Join(errs...)
}

// ExecRunner runs the program with os/exec. Stderr is included in the
// returned error.
func ExecRunner(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, lastLine(msg))
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
