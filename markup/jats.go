package markup

import (
	"encoding/xml"
	"strings"
)

const jatsExtLinkHref = "xlink:href"

// jatsToAST parses <p>, <list>/<list-item>, <bold>, <italic>, <monospace>,
// <sc>, and <ext-link xlink:href> into the shared AST.
func jatsToAST(content string) (Node, error) {
	wrapped := "<root>" + content + "</root>"
	dec := xml.NewDecoder(strings.NewReader(wrapped))

	type frame struct {
		node Node
	}
	stack := []frame{{node: Node{Kind: KindDocument}}}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "root" {
				continue
			}
			n := Node{Kind: jatsTagToKind(t.Name.Local)}
			if n.Kind == KindLink {
				for _, a := range t.Attr {
					if a.Name.Local == "href" {
						n.URL = a.Value
					}
				}
			}
			stack = append(stack, frame{node: n})
		case xml.EndElement:
			if t.Name.Local == "root" {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1].node
			parent.Children = append(parent.Children, top.node)
		case xml.CharData:
			text := string(t)
			if strings.TrimSpace(text) == "" {
				continue
			}
			top := &stack[len(stack)-1].node
			top.Children = append(top.Children, Text(text))
		}
	}
	return stack[0].node, nil
}

func jatsTagToKind(tag string) NodeKind {
	switch tag {
	case "p":
		return KindParagraph
	case "bold":
		return KindBold
	case "italic":
		return KindItalic
	case "list":
		return KindList
	case "list-item":
		return KindListItem
	case "monospace":
		return KindMonospace
	case "sc":
		return KindSmallCaps
	case "ext-link":
		return KindLink
	default:
		return KindDocument
	}
}

// astToJATS serializes the AST to JATS inline markup: <p>, <bold>,
// <italic>, <list>/<list-item>, <ext-link xlink:href="…">text</ext-link>,
// <monospace>, <sc>. Plain text lives as character data.
func astToJATS(n Node) string {
	var b strings.Builder
	writeJATS(&b, n)
	return b.String()
}

func writeJATS(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindDocument:
		writeJATSChildren(b, n.Children)
	case KindParagraph:
		b.WriteString("<p>")
		writeJATSChildren(b, n.Children)
		b.WriteString("</p>")
	case KindBold:
		b.WriteString("<bold>")
		writeJATSChildren(b, n.Children)
		b.WriteString("</bold>")
	case KindItalic:
		b.WriteString("<italic>")
		writeJATSChildren(b, n.Children)
		b.WriteString("</italic>")
	case KindMonospace:
		b.WriteString("<monospace>")
		writeJATSChildren(b, n.Children)
		b.WriteString("</monospace>")
	case KindSmallCaps:
		b.WriteString("<sc>")
		writeJATSChildren(b, n.Children)
		b.WriteString("</sc>")
	case KindList:
		b.WriteString("<list>")
		writeJATSChildren(b, n.Children)
		b.WriteString("</list>")
	case KindListItem:
		b.WriteString("<list-item>")
		writeJATSChildren(b, n.Children)
		b.WriteString("</list-item>")
	case KindLink:
		b.WriteString(`<ext-link xlink:href="`)
		xml.EscapeText(b, []byte(n.URL))
		b.WriteString(`">`)
		writeJATSChildren(b, n.Children)
		b.WriteString("</ext-link>")
	case KindText:
		xml.EscapeText(b, []byte(n.Text))
	}
}

func writeJATSChildren(b *strings.Builder, children []Node) {
	for _, c := range children {
		writeJATS(b, c)
	}
}
