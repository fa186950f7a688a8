package doctext

import (
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in a documentation page.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Sections returns the headings (h1-h6) below root in document order.
// Anchors come from the heading's id attribute when present and are
// generated from the title otherwise; duplicates get numeric suffixes.
func Sections(root ContentRoot) []Section {
	if root.IsZero() {
		return nil
	}

	var sections []Section
	anchorCounts := make(map[string]int)

	var walk func(id NodeID)
	walk = func(id NodeID) {
		n := root.Doc.Node(id)
		if n.Kind != ElementNode || IsSkipElement(n.Data) {
			return
		}
		if level := headingLevel(n.Data); level > 0 {
			title := strings.Join(strings.Fields(root.Doc.TextContent(id)), " ")
			if title == "" {
				return
			}
			baseAnchor, ok := root.Doc.Attr(id, "id")
			if !ok || baseAnchor == "" {
				baseAnchor = generateAnchor(title)
			}

			anchor := baseAnchor
			if count, exists := anchorCounts[baseAnchor]; exists {
				anchor = baseAnchor + "-" + strconv.Itoa(count)
				anchorCounts[baseAnchor]++
			} else {
				anchorCounts[baseAnchor] = 1
			}

			sections = append(sections, Section{Level: level, Title: title, Anchor: anchor})
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root.ID)

	return sections
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// FormatSections renders sections as an indented outline, one per line.
func FormatSections(sections []Section) string {
	lines := make([]string, 0, len(sections))
	for _, s := range sections {
		lines = append(lines, strings.Repeat("  ", s.Level-1)+s.Title+" #"+s.Anchor)
	}
	return strings.Join(lines, "\n")
}
