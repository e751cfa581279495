// Package csvexport implements the csv::thoth specification (§4.4.7):
// a flat, column-driven CSV rendering of the Work aggregate, grounded in
// the column-dispatch idiom used for the teacher's own CSV format.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/oabooks/exportcore/work"
)

// DefaultColumns is the standard column set for csv::thoth output.
func DefaultColumns() []string {
	return []string{
		"work_id", "title", "subtitle", "full_title", "work_type", "status",
		"doi", "isbn", "publication_date", "publisher", "authors", "editors",
		"subjects", "landing_page", "license",
	}
}

// Generator renders csv::thoth. MultiValueSeparator joins repeated-field
// columns (authors, editors, subjects); it defaults to ";".
type Generator struct {
	Columns             []string
	MultiValueSeparator string
	IncludeHeader       bool
}

func New() *Generator {
	return &Generator{Columns: DefaultColumns(), MultiValueSeparator: ";", IncludeHeader: true}
}

func (g *Generator) Generate(works []*work.Work) ([]byte, error) {
	columns := g.Columns
	if len(columns) == 0 {
		columns = DefaultColumns()
	}
	sep := g.MultiValueSeparator
	if sep == "" {
		sep = ";"
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if g.IncludeHeader {
		if err := w.Write(columns); err != nil {
			return nil, err
		}
	}
	for _, wk := range works {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = columnValue(wk, col, sep)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func columnValue(w *work.Work, column, sep string) string {
	switch column {
	case "work_id":
		return w.WorkID
	case "title":
		return w.Title
	case "subtitle":
		return w.Subtitle
	case "full_title":
		return w.FullTitle
	case "work_type":
		return string(w.WorkType)
	case "status":
		return string(w.Status)
	case "doi":
		return w.DOI.Display()
	case "isbn":
		return canonicalISBN(w)
	case "publication_date":
		if w.PublicationDate.IsZero() {
			return ""
		}
		return w.PublicationDate.Display()
	case "publisher":
		return w.Imprint.Publisher.Name
	case "authors":
		return joinContributors(w, work.ContributionAuthor, sep)
	case "editors":
		return joinContributors(w, work.ContributionEditor, sep)
	case "subjects":
		codes := make([]string, 0, len(w.Subjects))
		for _, s := range w.Subjects {
			codes = append(codes, s.SubjectCode)
		}
		return strings.Join(codes, sep)
	case "landing_page":
		for _, p := range w.Publications {
			if loc, ok := p.CanonicalLocation(); ok && loc.LandingPage != "" {
				return loc.LandingPage
			}
		}
		return ""
	case "license":
		return w.License
	default:
		return ""
	}
}

func canonicalISBN(w *work.Work) string {
	for _, p := range w.Publications {
		if !p.ISBN.IsZero() {
			return p.ISBN.Display()
		}
	}
	return ""
}

func joinContributors(w *work.Work, t work.ContributionType, sep string) string {
	names := make([]string, 0, len(w.Contributions))
	for _, c := range w.ContributionsByType(t) {
		names = append(names, c.DisplayName())
	}
	return strings.Join(names, sep)
}
