package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/doctext"
	main "github.com/fwojciec/doctext/cmd/doctext"
	"github.com/fwojciec/doctext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ropeyIndex = `<!DOCTYPE html>
<html><head><title>ropey</title><style>body{}</style></head>
<body class="rustdoc mod crate">
<nav class="sidebar">Crate ropey</nav>
<section id="main-content" class="content">
<div class="main-heading"><h1>Crate <span>ropey</span></h1></div>
<div class="docblock">
<p>Ropey is a utf8 text rope for Rust.</p>
<h2 id="example-usage">Example Usage</h2>
<pre class="rust"><code>let mut text = Rope::from_str("Hello");</code></pre>
</div>
<h2 id="structs" class="section-header">Structs</h2>
<ul class="item-table"><li><a href="struct.Rope.html">Rope</a></li></ul>
<script>window.x = 1;</script>
</section>
<footer>Footer</footer>
</body></html>`

const ropeyStruct = `<html><body><section id="main-content"><h1>Struct Rope</h1><p>A utf8 text rope.</p></section></body></html>`

// newMain returns a Main whose pages come from a fixed set of markup.
func newMain(pages map[string]string) *main.Main {
	m := main.NewMain()
	m.Source = &mock.Source{
		AcquireFn: func(ctx context.Context, req doctext.Request) (string, error) {
			markup, ok := pages[req.String()]
			if !ok {
				return "", doctext.Errorf(doctext.ENOTFOUND, "no documentation for %s", req)
			}
			return markup, nil
		},
	}
	return m
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "doctext")
	assert.Contains(t, stdout.String(), "--online")
	assert.Contains(t, stdout.String(), "--mode")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_RejectsUnknownMode(t *testing.T) {
	t.Parallel()

	m := newMain(nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--mode", "html", "ropey"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_BrowserRequiresOnline(t *testing.T) {
	t.Parallel()

	m := newMain(nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--browser", "ropey"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--online")
}

func TestMain_Run_RejectsInvalidSelector(t *testing.T) {
	t.Parallel()

	m := newMain(nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--selector", "a[", "ropey"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, doctext.EINVALID, doctext.ErrorCode(err))
}

// Story: rendering a crate's documentation to stdout

func TestMain_Run_RendersCrateIndex(t *testing.T) {
	t.Parallel()

	m := newMain(map[string]string{"ropey": ropeyIndex})
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"ropey"}, &stdout, &stderr)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "Ropey is a utf8 text rope for Rust.")
	assert.Contains(t, out, "Example Usage")
	assert.Contains(t, out, `let mut text = Rope::from_str("Hello");`)
	assert.NotContains(t, out, "Footer")
	assert.NotContains(t, out, "window.x")
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, "\n\n\n")
	assert.Empty(t, stderr.String())
}

func TestMain_Run_RendersLines(t *testing.T) {
	t.Parallel()

	m := newMain(map[string]string{"ropey::struct.Rope": ropeyStruct})
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"-m", "lines", "ropey", "struct.Rope"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "Struct Rope\nA utf8 text rope.\n", stdout.String())
}

func TestMain_Run_RendersMarkdown(t *testing.T) {
	t.Parallel()

	m := newMain(map[string]string{"ropey": ropeyIndex})
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--mode", "markdown", "ropey"}, &stdout, &stderr)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "## Example Usage")
	assert.Contains(t, out, "```")
	assert.Contains(t, out, "[Rope](struct.Rope.html)")
	assert.NotContains(t, out, "window.x")
}

func TestMain_Run_RendersSeveralItems(t *testing.T) {
	t.Parallel()

	m := newMain(map[string]string{
		"ropey::index.html":  ropeyIndex,
		"ropey::struct.Rope": ropeyStruct,
	})
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"-m", "lines", "ropey", "struct.Rope", "index.html"}, &stdout, &stderr)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "## ropey::struct.Rope\n\nStruct Rope")
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte("ropey::struct.Rope")), bytes.Index(stdout.Bytes(), []byte("ropey::index.html")))
}

func TestMain_Run_FailsForMissingDocumentation(t *testing.T) {
	t.Parallel()

	m := newMain(map[string]string{"ropey": ropeyIndex})
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"ropey", "struct.Missing"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "error: ropey::struct.Missing: no documentation for ropey::struct.Missing")
	assert.Empty(t, stdout.String())
}

func TestMain_Run_FailsWithoutContentRoot(t *testing.T) {
	t.Parallel()

	m := newMain(map[string]string{"ropey": `<html><body><p>Nothing here</p></body></html>`})
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"ropey"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "could not find main content section")
}

func TestMain_Run_PrintsSections(t *testing.T) {
	t.Parallel()

	m := newMain(map[string]string{"ropey": ropeyIndex})
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--sections", "ropey"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "Crate ropey #crate-ropey\n  Example Usage #example-usage\n  Structs #structs\n", stdout.String())
}

func TestMain_Run_WritesOutputDirectory(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "docs")
	m := newMain(map[string]string{
		"ropey::index.html":  ropeyIndex,
		"ropey::struct.Rope": ropeyStruct,
	})
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--mode", "markdown", "--output", out, "ropey", "index.html", "struct.Rope"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Saved 2 pages")

	content, err := os.ReadFile(filepath.Join(out, "ropey", "struct.Rope.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "crate: ropey")
	assert.Contains(t, string(content), "item: struct.Rope")
	assert.Contains(t, string(content), "# Struct Rope")

	_, err = os.Stat(filepath.Join(out, "ropey", "index.md"))
	require.NoError(t, err)
}
