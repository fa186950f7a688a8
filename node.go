package doctext

import "strings"

// NodeID addresses a node within a Document.
type NodeID int

// NoNode is the parent of a document's root node.
const NoNode NodeID = -1

// NodeKind distinguishes text from element nodes.
type NodeKind uint8

// Node kinds.
const (
	ElementNode NodeKind = iota
	TextNode
)

// Attribute is a single element attribute.
type Attribute struct {
	Key string
	Val string
}

// Node is an entry in a Document arena.
// For elements Data holds the lowercase tag name; for text nodes it holds
// the literal text. The document root is an element with an empty tag name.
type Node struct {
	Kind     NodeKind
	Data     string
	Attrs    []Attribute
	Parent   NodeID
	Children []NodeID
}

// Document is a parsed markup tree stored as an arena of nodes.
// Relationships between nodes are expressed as indices into Nodes.
type Document struct {
	Nodes []Node
}

// NewDocument returns a Document holding only an empty root element.
func NewDocument() *Document {
	return &Document{
		Nodes: []Node{{Kind: ElementNode, Parent: NoNode}},
	}
}

// Root returns the ID of the document root.
func (d *Document) Root() NodeID {
	return 0
}

// Node returns the node with the given ID.
// It panics if id is out of range.
func (d *Document) Node(id NodeID) *Node {
	return &d.Nodes[id]
}

// AppendElement adds an element as the last child of parent.
func (d *Document) AppendElement(parent NodeID, tag string, attrs []Attribute) NodeID {
	return d.append(parent, Node{Kind: ElementNode, Data: tag, Attrs: attrs})
}

// AppendText adds a text node as the last child of parent.
func (d *Document) AppendText(parent NodeID, text string) NodeID {
	return d.append(parent, Node{Kind: TextNode, Data: text})
}

func (d *Document) append(parent NodeID, n Node) NodeID {
	id := NodeID(len(d.Nodes))
	n.Parent = parent
	d.Nodes = append(d.Nodes, n)
	d.Nodes[parent].Children = append(d.Nodes[parent].Children, id)
	return id
}

// Attr returns the value of the named attribute of an element.
func (d *Document) Attr(id NodeID, key string) (string, bool) {
	for _, a := range d.Nodes[id].Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent returns the concatenated text of all descendants of id,
// excluding the contents of skipped elements.
func (d *Document) TextContent(id NodeID) string {
	var b strings.Builder
	d.writeText(&b, id)
	return b.String()
}

func (d *Document) writeText(b *strings.Builder, id NodeID) {
	n := &d.Nodes[id]
	if n.Kind == TextNode {
		b.WriteString(n.Data)
		return
	}
	if IsSkipElement(n.Data) {
		return
	}
	for _, c := range n.Children {
		d.writeText(b, c)
	}
}

// ContentRoot references the node of a Document that holds the
// documentation body. It borrows the Document; nothing is copied.
type ContentRoot struct {
	Doc *Document
	ID  NodeID
}

// IsZero reports whether the content root references no document.
func (r ContentRoot) IsZero() bool {
	return r.Doc == nil
}
