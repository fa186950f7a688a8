package doctext

import "strings"

// Mode selects how a content root is turned into text.
type Mode string

// Rendering modes.
const (
	// ModeText keeps paragraph and heading structure as blank lines.
	ModeText Mode = "text"

	// ModeLines trims every line and drops blank ones. All paragraph
	// structure is lost, so it has to be requested explicitly.
	ModeLines Mode = "lines"

	// ModeMarkdown converts the content root to markdown with a Converter.
	ModeMarkdown Mode = "markdown"
)

// Modes lists the supported rendering modes.
var Modes = []Mode{ModeText, ModeLines, ModeMarkdown}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", Errorf(EINVALID, "unknown render mode %q", s)
}

var blockElements = map[string]bool{
	"p":          true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"pre":        true,
	"blockquote": true,
	"li":         true,
	"div":        true,
}

var skipElements = map[string]bool{
	"script": true,
	"style":  true,
}

// IsBlockElement reports whether tag is surrounded by newlines when rendered.
func IsBlockElement(tag string) bool {
	return blockElements[tag]
}

// IsSkipElement reports whether tag and its subtree are excluded from output.
func IsSkipElement(tag string) bool {
	return skipElements[tag]
}

// Render linearizes the subtree at root into raw text.
// Every text node is followed by a newline and block elements are wrapped
// in newlines, so the result usually needs Normalize.
func Render(root ContentRoot) string {
	if root.IsZero() {
		return ""
	}
	var b strings.Builder
	renderNode(&b, root.Doc, root.ID)
	return b.String()
}

func renderNode(b *strings.Builder, doc *Document, id NodeID) {
	n := doc.Node(id)
	if n.Kind == TextNode {
		b.WriteString(n.Data)
		b.WriteByte('\n')
		return
	}
	if IsSkipElement(n.Data) {
		return
	}

	block := IsBlockElement(n.Data)
	if block {
		b.WriteByte('\n')
	}
	for _, c := range n.Children {
		renderNode(b, doc, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

// RenderLines renders root and keeps only its non-blank lines, trimmed.
func RenderLines(root ContentRoot) string {
	return trimLines(Render(root))
}

func trimLines(s string) string {
	var lines []string
	for line := range strings.Lines(s) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
