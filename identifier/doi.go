// Package identifier provides validated, canonicalizing value objects for
// the external identifier schemes the export core embeds in generated
// records: DOI, ORCID, ROR, and ISBN.
package identifier

import (
	"regexp"
	"strings"

	"github.com/oabooks/exportcore/exporterrors"
)

var doiPattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?(?:dx\.)?doi\.org/(10\.\d{4,9}/[-._;()/:a-zA-Z0-9<>+\[\]]+)$`)
var doiBare = regexp.MustCompile(`(?i)^(10\.\d{4,9}/[-._;()/:a-zA-Z0-9<>+\[\]]+)$`)

// DOI is a canonicalized Digital Object Identifier, stored without its
// resolver domain. Display omits the domain; WithDomain re-prepends it.
type DOI struct {
	value string
}

// ParseDOI accepts a DOI with or without a leading https://doi.org/,
// https://dx.doi.org/ or www. prefix, case-insensitively, and normalizes to
// the bare "10.xxxx/yyyy" form.
func ParseDOI(input string) (DOI, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return DOI{}, exporterrors.EmptyIdentifier("doi")
	}
	if m := doiPattern.FindStringSubmatch(trimmed); m != nil {
		return DOI{value: m[1]}, nil
	}
	if m := doiBare.FindStringSubmatch(trimmed); m != nil {
		return DOI{value: m[1]}, nil
	}
	return DOI{}, exporterrors.InvalidIdentifier("doi", input)
}

// Display returns the canonical domain-stripped form, e.g. "10.1000/xyz".
func (d DOI) Display() string { return d.value }

// WithDomain returns the fully-qualified resolvable URL form.
func (d DOI) WithDomain() string { return "https://doi.org/" + d.value }

func (d DOI) String() string { return d.Display() }

// IsZero reports whether d was never successfully parsed.
func (d DOI) IsZero() bool { return d.value == "" }
