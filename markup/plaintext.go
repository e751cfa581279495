package markup

import "strings"

// plainTextToAST splits on blank lines into Paragraph nodes, trimming each
// line; empty paragraphs are filtered. A single-line paragraph gets one
// Text child; a multi-line paragraph gets one Text child per line.
func plainTextToAST(content string) Node {
	blocks := strings.Split(content, "\n\n")
	var paragraphs []Node
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		var texts []Node
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			texts = append(texts, Text(trimmed))
		}
		if len(texts) == 0 {
			continue
		}
		paragraphs = append(paragraphs, Paragraph(texts...))
	}
	return Node{Kind: KindDocument, Children: paragraphs}
}

// astToPlainText concatenates Text nodes; links render as "text (url)";
// all other markup is dropped.
func astToPlainText(n Node) string {
	var b strings.Builder
	writePlainText(&b, n, true)
	return strings.TrimSpace(b.String())
}

func writePlainText(b *strings.Builder, n Node, topLevel bool) {
	switch n.Kind {
	case KindDocument:
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString("\n\n")
			}
			writePlainText(b, c, false)
		}
	case KindParagraph, KindListItem:
		for _, c := range n.Children {
			writePlainText(b, c, false)
		}
	case KindList:
		for i, item := range n.Children {
			if i > 0 {
				b.WriteString("\n")
			}
			writePlainText(b, item, false)
		}
	case KindLink:
		var inner strings.Builder
		for _, c := range n.Children {
			writePlainText(&inner, c, false)
		}
		b.WriteString(inner.String())
		b.WriteString(" (")
		b.WriteString(n.URL)
		b.WriteString(")")
	case KindBold, KindItalic, KindSmallCaps, KindMonospace:
		for _, c := range n.Children {
			writePlainText(b, c, false)
		}
	case KindText:
		b.WriteString(n.Text)
	}
}
