// Package bibtex implements the two BibTeX specifications named in
// §4.4.4: bibtex::thoth (book/inbook entries, full detail) and
// bibtex::crossref (the leaner CrossRef-deposit-adjacent form). Output is
// plain text, not XML, so this package writes directly rather than
// through generate/xmlw.
package bibtex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/work"
)

// Variant captures what differs between the two BibTeX specifications.
type Variant struct {
	SpecID string

	// EntryType returns the BibTeX entry type for a Work ("book" for a
	// monograph, "inbook" for a chapter).
	EntryType func(w *work.Work) string

	// IncludeField reports whether a given field is written for this variant
	// (bibtex::crossref omits fields like "address" and "edition").
	IncludeField func(field string) bool
}

// Generator renders one BibTeX variant.
type Generator struct {
	Variant Variant
}

func New(v Variant) *Generator { return &Generator{Variant: v} }

func (g *Generator) Generate(works []*work.Work) ([]byte, error) {
	var b strings.Builder
	for _, w := range works {
		if w.Title == "" {
			return nil, exporterrors.IncompleteMetadataRecord(g.Variant.SpecID, "Missing title")
		}
		if len(w.MainContributions()) == 0 {
			return nil, exporterrors.IncompleteMetadataRecord(g.Variant.SpecID, "Missing contributor")
		}
		g.writeEntry(&b, w)
	}
	return []byte(b.String()), nil
}

func (g *Generator) writeEntry(b *strings.Builder, w *work.Work) {
	entryType := "book"
	if g.Variant.EntryType != nil {
		entryType = g.Variant.EntryType(w)
	}
	fmt.Fprintf(b, "@%s{%s,\n", entryType, citeKey(w))

	fields := []struct {
		name  string
		value string
	}{
		{"title", w.FullTitle},
		{"author", authorList(w)},
		{"publisher", w.Imprint.Publisher.Name},
		{"year", publicationYear(w)},
		{"doi", w.DOI.Display()},
		{"isbn", canonicalISBN(w)},
		{"address", w.Place},
		{"edition", editionField(w)},
		{"url", landingPage(w)},
	}

	var lines []string
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if g.Variant.IncludeField != nil && !g.Variant.IncludeField(f.name) {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s = {%s}", f.name, escapeBraces(f.value)))
	}
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n}\n")
}

func citeKey(w *work.Work) string {
	last := "anon"
	if main := w.MainContributions(); len(main) > 0 {
		words := strings.Fields(main[0].DisplayName())
		if len(words) > 0 {
			last = strings.ToLower(words[len(words)-1])
		}
	}
	return fmt.Sprintf("%s%s", last, publicationYear(w))
}

func authorList(w *work.Work) string {
	main := w.MainContributions()
	names := make([]string, 0, len(main))
	for _, c := range main {
		if c.ContributionType != work.ContributionAuthor {
			continue
		}
		names = append(names, c.DisplayName())
	}
	return strings.Join(names, " and ")
}

func publicationYear(w *work.Work) string {
	if w.PublicationDate.IsZero() {
		return ""
	}
	return w.PublicationDate.Display()[:4]
}

func canonicalISBN(w *work.Work) string {
	var candidates []string
	for _, p := range w.Publications {
		if !p.ISBN.IsZero() {
			candidates = append(candidates, p.ISBN.Display())
		}
	}
	sort.Strings(candidates)
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

func editionField(w *work.Work) string {
	if w.Edition == 0 {
		return ""
	}
	return fmt.Sprintf("%d", w.Edition)
}

func landingPage(w *work.Work) string {
	for _, p := range w.Publications {
		if loc, ok := p.CanonicalLocation(); ok && loc.LandingPage != "" {
			return loc.LandingPage
		}
	}
	return ""
}

func escapeBraces(s string) string {
	r := strings.NewReplacer("{", "\\{", "}", "\\}")
	return r.Replace(s)
}
