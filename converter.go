package doctext

// Converter converts a content root to Markdown.
type Converter interface {
	// Convert transforms the children of root into Markdown.
	// Script and style elements are left out.
	Convert(root ContentRoot) (string, error)
}
