package doctext

import "fmt"

// Pipeline turns raw documentation markup into normalized text.
// A Pipeline holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	// Extractor locates the documentation body.
	Extractor Extractor

	// Converter is required for ModeMarkdown only.
	Converter Converter

	// Mode defaults to ModeText when empty.
	Mode Mode
}

// Render extracts the documentation body from markup, renders it in the
// pipeline's mode and collapses excess blank lines.
// Returns ENOTFOUND if the markup has no documentation body.
func (p *Pipeline) Render(markup string) (string, error) {
	root, err := p.Extractor.Extract(markup)
	if err != nil {
		return "", err
	}

	text, err := p.render(root)
	if err != nil {
		return "", err
	}

	return Normalize(text), nil
}

func (p *Pipeline) render(root ContentRoot) (string, error) {
	switch p.Mode {
	case "", ModeText:
		return Render(root), nil
	case ModeLines:
		return RenderLines(root), nil
	case ModeMarkdown:
		if p.Converter == nil {
			return "", Errorf(EINVALID, "markdown mode requires a converter")
		}
		md, err := p.Converter.Convert(root)
		if err != nil {
			return "", fmt.Errorf("converting to markdown: %w", err)
		}
		return md, nil
	default:
		return "", Errorf(EINVALID, "unknown render mode %q", p.Mode)
	}
}
