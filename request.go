package doctext

import (
	"context"
	"path"
	"regexp"
	"strings"
)

// validVersion accepts exact versions and cargo version requirements
// such as "1.0.200", "^1.2", ">=1.0" or "*".
var validVersion = regexp.MustCompile(`^[0-9A-Za-z.*^~=<>+-]+$`)

// Request identifies a documentation page of a crate.
type Request struct {
	// Crate is the package name as published, e.g. "serde_json" or "tokio-util".
	Crate string

	// Item is an optional path to an item or module within the crate,
	// e.g. "de::Deserializer" style module paths or "struct.Rope".
	Item string

	// Version pins a published crate version. Empty means latest.
	Version string
}

// Validate returns an error if the request contains invalid fields.
func (r Request) Validate() error {
	if r.Crate == "" {
		return Errorf(EINVALID, "crate name required")
	}
	if strings.ContainsAny(r.Crate, `/\ `) || strings.Contains(r.Crate, "..") {
		return Errorf(EINVALID, "invalid crate name %q", r.Crate)
	}
	if strings.Contains(r.Item, "..") || strings.ContainsAny(r.Item, `\ `) {
		return Errorf(EINVALID, "invalid item path %q", r.Item)
	}
	if r.Version != "" && !validVersion.MatchString(r.Version) {
		return Errorf(EINVALID, "invalid crate version %q", r.Version)
	}
	return nil
}

// ModuleName returns the name rustdoc uses for the crate's root module.
func (r Request) ModuleName() string {
	return strings.ReplaceAll(r.Crate, "-", "_")
}

// PagePath returns the path of the requested page relative to the crate's
// documentation directory.
//
//	""                   → index.html
//	"struct.Rope"        → struct.Rope.html
//	"iter"               → iter/index.html
//	"iter::trait.Chain"  → iter/trait.Chain.html
//	"fn.main.html"       → fn.main.html
func (r Request) PagePath() string {
	item := strings.Trim(r.Item, ":/")
	if item == "" {
		return "index.html"
	}

	segments := strings.FieldsFunc(item, func(c rune) bool { return c == ':' || c == '/' })
	last := segments[len(segments)-1]
	switch {
	case strings.HasSuffix(last, ".html"):
		// already a page name
	case strings.Contains(last, "."):
		segments[len(segments)-1] = last + ".html"
	default:
		segments = append(segments, "index.html")
	}
	return path.Join(segments...)
}

// String returns the request as a Rust path, e.g. "serde::de".
func (r Request) String() string {
	if r.Item == "" {
		return r.Crate
	}
	return r.Crate + "::" + r.Item
}

// Source acquires the raw markup of a documentation page.
// Implementations hide whether the page comes from a documentation host
// or from a local build.
type Source interface {
	// Acquire returns the complete markup of the requested page.
	// Returns ENOTFOUND if the crate or page has no documentation.
	Acquire(ctx context.Context, req Request) (string, error)
}
