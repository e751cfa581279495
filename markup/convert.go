package markup

import "strings"

// ConvertToJATS converts content in sourceFormat to its JATS
// representation, applying limit's structural restrictions. A PlainText
// title with no angle brackets bypasses JATS parsing entirely and is
// returned inline, unwrapped — the plain-text title passthrough path.
func ConvertToJATS(content string, sourceFormat SurfaceFormat, limit ConversionLimit) (string, error) {
	if sourceFormat == FormatPlainText && limit == LimitTitle && !looksLikeMarkup(content) {
		return strings.TrimSpace(content), nil
	}
	if err := ValidateFormat(content, sourceFormat); err != nil {
		return "", err
	}
	root, err := parseToAST(content, sourceFormat)
	if err != nil {
		return "", err
	}
	root = applyLimit(root, limit)
	if err := validateASTContent(root, limit); err != nil {
		return "", err
	}
	return astToJATS(root), nil
}

// ConvertFromJATS converts JATS content to targetFormat, applying limit.
// A title whose JATS source contains no angle brackets is a raw plain-text
// value; it is treated as plain text directly rather than parsed as JATS,
// mirroring the inverse of ConvertToJATS's passthrough.
func ConvertFromJATS(jats string, targetFormat SurfaceFormat, limit ConversionLimit) (string, error) {
	var root Node
	if limit == LimitTitle && !looksLikeMarkup(jats) {
		root = Node{Kind: KindDocument, Children: []Node{Text(strings.TrimSpace(jats))}}
	} else {
		var err error
		root, err = jatsToAST(jats)
		if err != nil {
			return "", err
		}
	}
	root = applyLimit(root, limit)
	if err := validateASTContent(root, limit); err != nil {
		return "", err
	}
	return serializeFromAST(root, targetFormat), nil
}

func looksLikeMarkup(s string) bool {
	return strings.Contains(s, "<") || strings.Contains(s, "</")
}

func parseToAST(content string, format SurfaceFormat) (Node, error) {
	switch format {
	case FormatHTML:
		return htmlToAST(content)
	case FormatMarkdown:
		return markdownToAST(content)
	case FormatPlainText:
		return plainTextToAST(content), nil
	case FormatJATS:
		return jatsToAST(content)
	default:
		return Node{}, ValidateFormat(content, format)
	}
}

func serializeFromAST(root Node, format SurfaceFormat) string {
	switch format {
	case FormatHTML:
		return astToHTML(root)
	case FormatMarkdown:
		return astToMarkdown(root)
	case FormatPlainText:
		return astToPlainText(root)
	case FormatJATS:
		return astToJATS(root)
	default:
		return ""
	}
}
