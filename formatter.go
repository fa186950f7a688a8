package doctext

import "strings"

// FormatPages formats rendered pages for display.
// A single page is returned as is; several pages get a "## crate::item"
// header each and are separated by blank lines.
func FormatPages(pages []*Page) string {
	switch len(pages) {
	case 0:
		return ""
	case 1:
		return strings.Trim(pages[0].Content, "\n")
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		parts = append(parts, "## "+page.Request.String()+"\n\n"+strings.Trim(page.Content, "\n"))
	}

	return strings.Join(parts, "\n\n")
}
