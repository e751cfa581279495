package identifier

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oabooks/exportcore/exporterrors"
)

// Precision records how much of a Timestamp was actually supplied, so a
// year-only publication date doesn't pretend to know a month and day.
type Precision string

const (
	PrecisionDay   Precision = "day"
	PrecisionMonth Precision = "month"
	PrecisionYear  Precision = "year"
)

// Timestamp is a validated calendar date used for publication dates,
// withdrawn dates, and the cache's upstream_last_updated component. Unlike
// DOI/ORCID/ROR it carries no resolvable domain, so it has Display but no
// WithDomain.
type Timestamp struct {
	t         time.Time
	precision Precision
}

// ParseTimestamp accepts "YYYY-MM-DD", "YYYY-MM", or "YYYY" and records the
// supplied precision, mirroring the EDTF-lite precision handling the
// underlying date model uses for partially-known publication dates.
func ParseTimestamp(input string) (Timestamp, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Timestamp{}, exporterrors.EmptyIdentifier("timestamp")
	}
	parts := strings.Split(trimmed, "-")
	switch len(parts) {
	case 1:
		y, err := parseYear(parts[0])
		if err != nil {
			return Timestamp{}, exporterrors.InvalidIdentifier("timestamp", input)
		}
		return Timestamp{t: time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC), precision: PrecisionYear}, nil
	case 2:
		y, err := parseYear(parts[0])
		if err != nil {
			return Timestamp{}, exporterrors.InvalidIdentifier("timestamp", input)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 1 || m > 12 {
			return Timestamp{}, exporterrors.InvalidIdentifier("timestamp", input)
		}
		return Timestamp{t: time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC), precision: PrecisionMonth}, nil
	case 3:
		y, err := parseYear(parts[0])
		if err != nil {
			return Timestamp{}, exporterrors.InvalidIdentifier("timestamp", input)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 1 || m > 12 {
			return Timestamp{}, exporterrors.InvalidIdentifier("timestamp", input)
		}
		d, err := strconv.Atoi(parts[2])
		if err != nil || d < 1 || d > 31 {
			return Timestamp{}, exporterrors.InvalidIdentifier("timestamp", input)
		}
		return Timestamp{t: time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), precision: PrecisionDay}, nil
	default:
		return Timestamp{}, exporterrors.InvalidIdentifier("timestamp", input)
	}
}

// NewTimestampFromDate builds a day-precision Timestamp from y/m/d directly,
// for callers (tests, seed data) that already hold structured values.
func NewTimestampFromDate(y, m, d int) Timestamp {
	return Timestamp{t: time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), precision: PrecisionDay}
}

func parseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("not a 4-digit year: %q", s)
	}
	return strconv.Atoi(s)
}

func (t Timestamp) Precision() Precision { return t.precision }
func (t Timestamp) Time() time.Time      { return t.t }
func (t Timestamp) IsZero() bool         { return t.t.IsZero() }

// Display renders per precision: "2006", "2006-01", or "2006-01-02".
func (t Timestamp) Display() string {
	switch t.precision {
	case PrecisionYear:
		return t.t.Format("2006")
	case PrecisionMonth:
		return t.t.Format("2006-01")
	default:
		return t.t.Format("2006-01-02")
	}
}

func (t Timestamp) String() string { return t.Display() }

// FormatCompact renders "%Y%m%d", the form ONIX <Date dateformat="00">
// and EBSCO's OutofPrintDate both require.
func (t Timestamp) FormatCompact() string { return t.t.Format("20060102") }

// FormatSentDateTime renders "%Y%m%dT%H%M%S", the ONIX Header SentDateTime
// form.
func (t Timestamp) FormatSentDateTime() string { return t.t.Format("20060102T150405") }

// Before reports whether t is strictly before other.
func (t Timestamp) Before(other Timestamp) bool { return t.t.Before(other.t) }

// After reports whether t is strictly after other.
func (t Timestamp) After(other Timestamp) bool { return t.t.After(other.t) }

// Equal reports whether t and other denote the same instant.
func (t Timestamp) Equal(other Timestamp) bool { return t.t.Equal(other.t) }
