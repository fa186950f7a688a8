package doctext_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/doctext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("wraps block elements in newlines", func(t *testing.T) {
		t.Parallel()

		root := build(elID("div", "main-content", el("h1", "Title"), el("p", "Hello")))

		assert.Equal(t, "\n\nTitle\n\n\nHello\n\n\n", doctext.Render(root))
	})

	t.Run("inline elements add no spacing", func(t *testing.T) {
		t.Parallel()

		root := build(el("span", el("em", "a"), el("code", "b")))

		assert.Equal(t, "a\nb\n", doctext.Render(root))
	})

	t.Run("terminates whitespace-only text with a newline", func(t *testing.T) {
		t.Parallel()

		root := build(el("span", "  "))

		assert.Equal(t, "  \n", doctext.Render(root))
	})

	t.Run("keeps repeated text in document order", func(t *testing.T) {
		t.Parallel()

		root := build(el("span", "x", el("b", "y"), "x"))

		assert.Equal(t, "x\ny\nx\n", doctext.Render(root))
	})

	t.Run("skips script and style subtrees at any depth", func(t *testing.T) {
		t.Parallel()

		root := build(el("div",
			el("script", "alert(1)"),
			el("section", el("span", el("style", el("b", "color: red")))),
			el("p", "Visible"),
		))

		out := doctext.Render(root)

		assert.Contains(t, out, "Visible")
		assert.NotContains(t, out, "alert")
		assert.NotContains(t, out, "color")
	})

	t.Run("classifies every block element", func(t *testing.T) {
		t.Parallel()

		for _, tag := range []string{"p", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "blockquote", "li", "div"} {
			assert.True(t, doctext.IsBlockElement(tag), tag)
			assert.Equal(t, "\nx\n\n", doctext.Render(build(el(tag, "x"))), tag)
		}
		for _, tag := range []string{"span", "a", "ul", "table", "section", "nav", ""} {
			assert.False(t, doctext.IsBlockElement(tag), tag)
		}
	})

	t.Run("renders the document root as inline", func(t *testing.T) {
		t.Parallel()

		doc := doctext.NewDocument()
		doc.AppendText(doc.Root(), "top")

		assert.Equal(t, "top\n", doctext.Render(doctext.ContentRoot{Doc: doc, ID: doc.Root()}))
	})

	t.Run("returns empty string for zero content root", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, doctext.Render(doctext.ContentRoot{}))
	})
}

func TestRenderLines(t *testing.T) {
	t.Parallel()

	t.Run("trims lines and drops blank ones", func(t *testing.T) {
		t.Parallel()

		root := build(el("div", el("h1", "  Title  "), el("p", "\tHello\n   world "), el("div"), el("div")))

		assert.Equal(t, "Title\nHello\nworld", doctext.RenderLines(root))
	})

	t.Run("never contains blank lines", func(t *testing.T) {
		t.Parallel()

		root := build(el("div", el("p", "a"), el("p", " "), el("blockquote", el("p", "b"))))

		out := doctext.RenderLines(root)

		require.NotEmpty(t, out)
		assert.NotContains(t, out, "\n\n")
		assert.False(t, strings.HasSuffix(out, "\n"))
	})
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range doctext.Modes {
		got, err := doctext.ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := doctext.ParseMode("html")
	require.Error(t, err)
	assert.Equal(t, doctext.EINVALID, doctext.ErrorCode(err))
}
