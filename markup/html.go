package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlToAST parses an HTML fragment into the shared AST. <p> becomes
// Paragraph, <ul>/<ol> become List, <li> becomes ListItem, <strong>/<b>
// become Bold, <em>/<i> become Italic, <a href> becomes Link, <text>
// becomes SmallCaps; unknown wrapping tags with children become Document
// wrappers, unknown leaves become empty Text.
func htmlToAST(content string) (Node, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return Node{}, err
	}
	body := findBody(doc)
	if body == nil {
		body = doc
	}
	children := htmlChildrenToNodes(body)
	return Node{Kind: KindDocument, Children: children}, nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

func htmlChildrenToNodes(n *html.Node) []Node {
	var out []Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, htmlNodeToAST(c))
	}
	return out
}

func htmlNodeToAST(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return Text(n.Data)
	case html.ElementNode:
		children := htmlChildrenToNodes(n)
		switch n.Data {
		case "p":
			return Node{Kind: KindParagraph, Children: children}
		case "ul", "ol":
			return Node{Kind: KindList, Children: children}
		case "li":
			return Node{Kind: KindListItem, Children: children}
		case "strong", "b":
			return Node{Kind: KindBold, Children: children}
		case "em", "i":
			return Node{Kind: KindItalic, Children: children}
		case "code", "tt":
			return Node{Kind: KindMonospace, Children: children}
		case "text":
			return Node{Kind: KindSmallCaps, Children: children}
		case "a":
			return Node{Kind: KindLink, URL: attrValue(n, "href"), Children: children}
		default:
			if len(children) > 0 {
				return Node{Kind: KindDocument, Children: children}
			}
			return Text("")
		}
	default:
		return Text("")
	}
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// astToHTML serializes the AST back to HTML: <em>, <strong>, <code>,
// <ul>/<li>, <a href>.
func astToHTML(n Node) string {
	var b strings.Builder
	writeHTML(&b, n)
	return b.String()
}

func writeHTML(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindDocument:
		writeHTMLChildren(b, n.Children)
	case KindParagraph:
		b.WriteString("<p>")
		writeHTMLChildren(b, n.Children)
		b.WriteString("</p>")
	case KindBold:
		b.WriteString("<strong>")
		writeHTMLChildren(b, n.Children)
		b.WriteString("</strong>")
	case KindItalic:
		b.WriteString("<em>")
		writeHTMLChildren(b, n.Children)
		b.WriteString("</em>")
	case KindMonospace:
		b.WriteString("<code>")
		writeHTMLChildren(b, n.Children)
		b.WriteString("</code>")
	case KindSmallCaps:
		b.WriteString("<text>")
		writeHTMLChildren(b, n.Children)
		b.WriteString("</text>")
	case KindList:
		b.WriteString("<ul>")
		writeHTMLChildren(b, n.Children)
		b.WriteString("</ul>")
	case KindListItem:
		b.WriteString("<li>")
		writeHTMLChildren(b, n.Children)
		b.WriteString("</li>")
	case KindLink:
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(n.URL))
		b.WriteString(`">`)
		writeHTMLChildren(b, n.Children)
		b.WriteString("</a>")
	case KindText:
		b.WriteString(html.EscapeString(n.Text))
	}
}

func writeHTMLChildren(b *strings.Builder, children []Node) {
	for _, c := range children {
		writeHTML(b, c)
	}
}
