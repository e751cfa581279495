package markup

import (
	"strings"

	"github.com/oabooks/exportcore/exporterrors"
)

// SurfaceFormat is the closed set of textual encodings the converter moves
// between; JATS is both a source and target format, identical to the AST's
// canonical wire form.
type SurfaceFormat string

const (
	FormatHTML      SurfaceFormat = "html"
	FormatMarkdown  SurfaceFormat = "markdown"
	FormatPlainText SurfaceFormat = "plain-text"
	FormatJATS      SurfaceFormat = "jats"
)

// ValidateFormat is a shallow well-formedness check: tag-based formats
// must show tag markers, Markdown must not contain raw HTML tags, and
// PlainText is never rejected.
func ValidateFormat(content string, format SurfaceFormat) error {
	switch format {
	case FormatHTML, FormatJATS:
		if !strings.Contains(content, "<") || !strings.Contains(content, "</") {
			return exporterrors.UnsupportedFileFormat(string(format) + " content must contain tags")
		}
	case FormatMarkdown:
		if strings.Contains(content, "<") && strings.Contains(content, ">") {
			return exporterrors.UnsupportedFileFormat("markdown content must not contain HTML tags")
		}
	case FormatPlainText:
		// no-op: any string is valid plain text.
	default:
		return exporterrors.UnsupportedFileFormat("unknown surface format")
	}
	return nil
}
