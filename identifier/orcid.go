package identifier

import (
	"regexp"
	"strings"

	"github.com/oabooks/exportcore/exporterrors"
)

var orcidPattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?orcid\.org/(\d{4}-\d{4}-\d{4}-\d{3}[\dXx])$`)
var orcidBare = regexp.MustCompile(`^(\d{4}-\d{4}-\d{4}-\d{3}[\dXx])$`)

// ORCID is a canonicalized Open Researcher and Contributor ID.
type ORCID struct {
	value string
}

func ParseORCID(input string) (ORCID, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ORCID{}, exporterrors.EmptyIdentifier("orcid")
	}
	if m := orcidPattern.FindStringSubmatch(trimmed); m != nil {
		return ORCID{value: strings.ToUpper(m[1])}, nil
	}
	if m := orcidBare.FindStringSubmatch(trimmed); m != nil {
		return ORCID{value: strings.ToUpper(m[1])}, nil
	}
	return ORCID{}, exporterrors.InvalidIdentifier("orcid", input)
}

func (o ORCID) Display() string    { return o.value }
func (o ORCID) WithDomain() string { return "https://orcid.org/" + o.value }
func (o ORCID) String() string     { return o.Display() }
func (o ORCID) IsZero() bool       { return o.value == "" }
