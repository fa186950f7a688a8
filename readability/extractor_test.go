package readability_test

import (
	"testing"

	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, doctext.ENOTFOUND, doctext.ErrorCode(err))
}

func TestExtractor_ExtractsArticle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Module iter</h1>
<p>Composable external iteration. If you've found yourself with a collection of some kind,
and needed to perform an operation on the elements of said collection, you'll quickly run
into iterators. Iterators are heavily used in idiomatic Rust code.</p>
<p>The heart and soul of this module is the Iterator trait, which provides the next method
and many adapters built on top of it.</p>
</article>
<footer>Copyright Footer Text</footer>
</body>
</html>`

	ext := readability.NewExtractor()
	root, err := ext.Extract(html)

	require.NoError(t, err)
	text := root.Doc.TextContent(root.ID)
	assert.Contains(t, text, "Composable external iteration")
	assert.NotContains(t, text, "Home Nav Link")
	assert.NotContains(t, text, "Copyright Footer Text")
}

func TestExtractor_RendersThroughPipeline(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Guide</title></head>
<body>
<main>
<h1>Getting Started</h1>
<p>This guide walks through installing the toolchain and building a first project with
enough prose to be recognized as the main article of the page by the scoring algorithm.</p>
<script>trackPageView()</script>
<p>Run the build command and inspect the generated documentation in your browser.</p>
</main>
</body>
</html>`

	p := &doctext.Pipeline{Extractor: readability.NewExtractor(), Mode: doctext.ModeLines}
	out, err := p.Render(html)

	require.NoError(t, err)
	assert.Contains(t, out, "Run the build command")
	assert.NotContains(t, out, "trackPageView")
}
