package identifier

import (
	"strings"

	"github.com/oabooks/exportcore/exporterrors"
)

// ISBN is a canonicalized, checksum-validated ISBN-13. It stores the 13
// bare digits; Display renders the hyphenated form (e.g.
// "978-1-56619-909-4").
type ISBN struct {
	digits string // 13 bare digits
}

// ParseISBN accepts any input containing exactly 13 digits once hyphens and
// whitespace are stripped, validates the ISBN-13 checksum, and stores the
// bare digits.
func ParseISBN(input string) (ISBN, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ISBN{}, exporterrors.EmptyIdentifier("isbn")
	}
	digits := stripISBNPunctuation(trimmed)
	if len(digits) != 13 || !allDigits(digits) {
		return ISBN{}, exporterrors.InvalidIdentifier("isbn", input)
	}
	if !validISBN13Checksum(digits) {
		return ISBN{}, exporterrors.InvalidIdentifier("isbn", input)
	}
	return ISBN{digits: digits}, nil
}

func stripISBNPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '-' || r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validISBN13Checksum(digits string) bool {
	sum := 0
	for i, r := range digits {
		d := int(r - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return sum%10 == 0
}

// Display returns the canonical hyphenated form, grouped 3-1-5-3-1 as is
// conventional for Bookland (978/979) prefixed ISBN-13s.
func (i ISBN) Display() string {
	if i.digits == "" {
		return ""
	}
	d := i.digits
	return d[0:3] + "-" + d[3:4] + "-" + d[4:9] + "-" + d[9:12] + "-" + d[12:13]
}

func (i ISBN) String() string { return i.Display() }

// ToHyphenlessString returns the bare 13 digits, as ONIX ProductIDType=15
// requires.
func (i ISBN) ToHyphenlessString() string { return i.digits }

func (i ISBN) IsZero() bool { return i.digits == "" }
