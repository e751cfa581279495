package markup

import "github.com/oabooks/exportcore/exporterrors"

// ConversionLimit governs how much AST structure survives a conversion.
type ConversionLimit string

const (
	LimitAbstract  ConversionLimit = "abstract"
	LimitBiography ConversionLimit = "biography"
	LimitTitle     ConversionLimit = "title"
)

// applyLimit strips structural nodes for Title and leaves Abstract/
// Biography untouched; it is applied uniformly to every AST on every
// conversion path so limits can never be bypassed by a format-specific
// shortcut.
func applyLimit(root Node, limit ConversionLimit) Node {
	if limit != LimitTitle {
		return root
	}
	root.Children = stripStructural(root.Children)
	return root
}

// validateASTContent fails if the AST (post-stripping) still contains a
// node kind the limit does not allow.
func validateASTContent(root Node, limit ConversionLimit) error {
	if limit != LimitTitle {
		return nil
	}
	var walk func(n Node) error
	walk = func(n Node) error {
		if isStructural(n.Kind) {
			return exporterrors.UnsupportedFileFormat("title content may not contain structural markup (paragraph/list/list-item)")
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, c := range root.Children {
		if err := walk(c); err != nil {
			return err
		}
	}
	return nil
}
