// Package markup converts a text field between HTML, Markdown, plain text,
// and JATS XML through a shared AST, enforcing a ConversionLimit that
// governs how much structure survives. Every surface syntax has an
// into-AST parser and a from-AST serializer so conversions compose and
// the converter never shortcuts by editing source strings directly.
package markup

// NodeKind discriminates the Node variants. A plain sum type (rather than
// one struct per kind implementing a marker interface) keeps Node cheap to
// construct and match on on, matching how the teacher's hub package models
// other small closed vocabularies as string-keyed structs.
type NodeKind string

const (
	KindDocument  NodeKind = "document"
	KindParagraph NodeKind = "paragraph"
	KindBold      NodeKind = "bold"
	KindItalic    NodeKind = "italic"
	KindList      NodeKind = "list"
	KindListItem  NodeKind = "list-item"
	KindLink      NodeKind = "link"
	KindSmallCaps NodeKind = "small-caps"
	KindMonospace NodeKind = "monospace"
	KindText      NodeKind = "text"
)

// Node is one element of the shared AST. Only the fields relevant to Kind
// are populated: Children for structural kinds, Text for KindText, and
// URL+Children (as the link's visible text) for KindLink.
type Node struct {
	Kind     NodeKind
	Children []Node
	Text     string
	URL      string
}

func Document(children ...Node) Node  { return Node{Kind: KindDocument, Children: children} }
func Paragraph(children ...Node) Node { return Node{Kind: KindParagraph, Children: children} }
func Bold(children ...Node) Node      { return Node{Kind: KindBold, Children: children} }
func Italic(children ...Node) Node    { return Node{Kind: KindItalic, Children: children} }
func List(items ...Node) Node         { return Node{Kind: KindList, Children: items} }
func ListItem(children ...Node) Node  { return Node{Kind: KindListItem, Children: children} }
func SmallCaps(children ...Node) Node { return Node{Kind: KindSmallCaps, Children: children} }
func Monospace(children ...Node) Node { return Node{Kind: KindMonospace, Children: children} }
func Text(s string) Node              { return Node{Kind: KindText, Text: s} }
func Link(url string, children ...Node) Node {
	return Node{Kind: KindLink, URL: url, Children: children}
}

// isStructural reports whether a node kind is stripped by ConversionLimit
// Title (Paragraph, List, ListItem collapse to their children inline).
func isStructural(k NodeKind) bool {
	return k == KindParagraph || k == KindList || k == KindListItem
}

// stripStructural recursively removes Paragraph/List/ListItem wrapper
// nodes, splicing their children inline, for limit == Title. Document is
// retained as the root wrapper; everything else structural disappears.
func stripStructural(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if isStructural(n.Kind) {
			out = append(out, stripStructural(n.Children)...)
			continue
		}
		n.Children = stripStructural(n.Children)
		out = append(out, n)
	}
	return out
}
