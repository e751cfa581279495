package markup

import (
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdownToAST parses a CommonMark-subset fragment into the shared AST:
// emphasis, strong emphasis, list, list-item, paragraph, link, and inline
// code (-> Monospace).
func markdownToAST(content string) (Node, error) {
	source := []byte(content)
	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader)

	var children []Node
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, markdownNodeToAST(c, source))
	}
	return Node{Kind: KindDocument, Children: children}, nil
}

func markdownNodeToAST(n gast.Node, source []byte) Node {
	switch n.Kind() {
	case gast.KindParagraph, gast.KindTextBlock:
		return Node{Kind: KindParagraph, Children: markdownChildren(n, source)}
	case gast.KindEmphasis:
		e := n.(*gast.Emphasis)
		if e.Level >= 2 {
			return Node{Kind: KindBold, Children: markdownChildren(n, source)}
		}
		return Node{Kind: KindItalic, Children: markdownChildren(n, source)}
	case gast.KindList:
		return Node{Kind: KindList, Children: markdownChildren(n, source)}
	case gast.KindListItem:
		return Node{Kind: KindListItem, Children: markdownChildren(n, source)}
	case gast.KindLink:
		l := n.(*gast.Link)
		return Node{Kind: KindLink, URL: string(l.Destination), Children: markdownChildren(n, source)}
	case gast.KindCodeSpan:
		return Node{Kind: KindMonospace, Children: markdownChildren(n, source)}
	case gast.KindText:
		t := n.(*gast.Text)
		return Text(string(t.Segment.Value(source)))
	case gast.KindString:
		s := n.(*gast.String)
		return Text(string(s.Value))
	default:
		children := markdownChildren(n, source)
		if len(children) > 0 {
			return Node{Kind: KindDocument, Children: children}
		}
		return Text("")
	}
}

func markdownChildren(n gast.Node, source []byte) []Node {
	var out []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, markdownNodeToAST(c, source))
	}
	return out
}

// astToMarkdown serializes the AST back to a CommonMark-subset: *…*,
// **…**, `…`, [text](url), "- " list items.
func astToMarkdown(n Node) string {
	var b strings.Builder
	writeMarkdown(&b, n)
	return b.String()
}

func writeMarkdown(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindDocument:
		writeMarkdownChildren(b, n.Children, "\n\n")
	case KindParagraph:
		writeMarkdownChildren(b, n.Children, "")
	case KindBold:
		b.WriteString("**")
		writeMarkdownChildren(b, n.Children, "")
		b.WriteString("**")
	case KindItalic:
		b.WriteString("*")
		writeMarkdownChildren(b, n.Children, "")
		b.WriteString("*")
	case KindMonospace:
		b.WriteString("`")
		writeMarkdownChildren(b, n.Children, "")
		b.WriteString("`")
	case KindSmallCaps:
		writeMarkdownChildren(b, n.Children, "")
	case KindList:
		for i, item := range n.Children {
			if i > 0 {
				b.WriteString("\n")
			}
			writeMarkdown(b, item)
		}
	case KindListItem:
		b.WriteString("- ")
		writeMarkdownChildren(b, n.Children, "")
	case KindLink:
		b.WriteString("[")
		writeMarkdownChildren(b, n.Children, "")
		b.WriteString("](")
		b.WriteString(n.URL)
		b.WriteString(")")
	case KindText:
		b.WriteString(n.Text)
	}
}

func writeMarkdownChildren(b *strings.Builder, children []Node, sep string) {
	for i, c := range children {
		if i > 0 && sep != "" {
			b.WriteString(sep)
		}
		writeMarkdown(b, c)
	}
}
