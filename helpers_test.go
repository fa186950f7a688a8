package doctext_test

import "github.com/fwojciec/doctext"

// elem describes an element to build into a test document.
// Children are either strings (text nodes) or nested elems.
type elem struct {
	tag      string
	id       string
	children []any
}

func el(tag string, children ...any) elem {
	return elem{tag: tag, children: children}
}

func elID(tag, id string, children ...any) elem {
	return elem{tag: tag, id: id, children: children}
}

// build appends e below a fresh document root and returns it as the content root.
func build(e elem) doctext.ContentRoot {
	doc := doctext.NewDocument()
	id := appendElem(doc, doc.Root(), e)
	return doctext.ContentRoot{Doc: doc, ID: id}
}

func appendElem(doc *doctext.Document, parent doctext.NodeID, e elem) doctext.NodeID {
	var attrs []doctext.Attribute
	if e.id != "" {
		attrs = append(attrs, doctext.Attribute{Key: "id", Val: e.id})
	}
	id := doc.AppendElement(parent, e.tag, attrs)
	for _, c := range e.children {
		switch c := c.(type) {
		case string:
			doc.AppendText(id, c)
		case elem:
			appendElem(doc, id, c)
		}
	}
	return id
}
