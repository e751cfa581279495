package identifier

import (
	"regexp"
	"strings"

	"github.com/oabooks/exportcore/exporterrors"
)

var rorPattern = regexp.MustCompile(`(?i)^(?:https?://(?:www\.)?|https://www\.)?ror\.org/(0[a-hjkmnp-z0-9]{6}\d{2})$`)
var rorBare = regexp.MustCompile(`(?i)^(0[a-hjkmnp-z0-9]{6}\d{2})$`)

// ROR is a canonicalized Research Organization Registry identifier.
type ROR struct {
	value string
}

func ParseROR(input string) (ROR, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ROR{}, exporterrors.EmptyIdentifier("ror")
	}
	if m := rorPattern.FindStringSubmatch(trimmed); m != nil {
		return ROR{value: strings.ToLower(m[1])}, nil
	}
	if m := rorBare.FindStringSubmatch(trimmed); m != nil {
		return ROR{value: strings.ToLower(m[1])}, nil
	}
	return ROR{}, exporterrors.InvalidIdentifier("ror", input)
}

func (r ROR) Display() string    { return r.value }
func (r ROR) WithDomain() string { return "https://ror.org/" + r.value }
func (r ROR) String() string     { return r.Display() }
func (r ROR) IsZero() bool       { return r.value == "" }
