package doctext

// DefaultSelector marks the element that holds the body of a rustdoc page.
const DefaultSelector = "#main-content"

// Extractor locates the documentation body within raw markup.
type Extractor interface {
	// Extract parses markup and returns a reference to the node holding
	// the documentation body.
	// Returns ENOTFOUND if no such node exists. Malformed markup is
	// recovered by the parser and never reported as an error.
	Extract(markup string) (ContentRoot, error)
}
