// Package html converts between golang.org/x/net/html trees and
// doctext.Document arenas.
package html

import (
	"bytes"
	"strings"

	"github.com/fwojciec/doctext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Index maps parsed nodes to their IDs in a built Document.
type Index map[*html.Node]doctext.NodeID

// Build copies the tree below root into a new Document arena.
// root itself becomes the document root when it is a document node and
// the root's only child otherwise. Comments and doctypes are dropped.
func Build(root *html.Node) (*doctext.Document, Index) {
	doc := doctext.NewDocument()
	index := make(Index)

	if root == nil {
		return doc, index
	}

	if root.Type == html.DocumentNode {
		index[root] = doc.Root()
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			appendNode(doc, index, doc.Root(), c)
		}
		return doc, index
	}

	appendNode(doc, index, doc.Root(), root)
	return doc, index
}

func appendNode(doc *doctext.Document, index Index, parent doctext.NodeID, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		index[n] = doc.AppendText(parent, n.Data)
	case html.ElementNode:
		id := doc.AppendElement(parent, n.Data, attributes(n.Attr))
		index[n] = id
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendNode(doc, index, id, c)
		}
	}
}

func attributes(attrs []html.Attribute) []doctext.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]doctext.Attribute, 0, len(attrs))
	for _, a := range attrs {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		out = append(out, doctext.Attribute{Key: key, Val: a.Val})
	}
	return out
}

// Parse parses markup with the HTML5 tree construction algorithm and
// returns it as a Document. Malformed markup is recovered, not rejected.
func Parse(markup string) (*doctext.Document, error) {
	n, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, doctext.Errorf(doctext.EINVALID, "failed to parse HTML: %v", err)
	}
	doc, _ := Build(n)
	return doc, nil
}

// InnerHTML serializes the children of root back to HTML.
// Script and style elements are left out.
func InnerHTML(root doctext.ContentRoot) (string, error) {
	if root.IsZero() {
		return "", nil
	}

	var buf bytes.Buffer
	for _, c := range root.Doc.Node(root.ID).Children {
		n := toNode(root.Doc, c)
		if n == nil {
			continue
		}
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// toNode rebuilds a detached x/net/html subtree for id.
func toNode(doc *doctext.Document, id doctext.NodeID) *html.Node {
	src := doc.Node(id)
	if src.Kind == doctext.TextNode {
		return &html.Node{Type: html.TextNode, Data: src.Data}
	}
	if doctext.IsSkipElement(src.Data) {
		return nil
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     src.Data,
		DataAtom: atom.Lookup([]byte(src.Data)),
	}
	for _, a := range src.Attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, c := range src.Children {
		if child := toNode(doc, c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}
