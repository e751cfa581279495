// Package kbart implements the kbart::oclc specification (§4.4.5): a
// tab-separated KBART phase II holdings file, one row per Work.
package kbart

import (
	"fmt"
	"strings"

	"github.com/oabooks/exportcore/work"
)

var columns = []string{
	"publication_title",
	"print_identifier",
	"online_identifier",
	"date_first_issue_online",
	"num_first_vol_online",
	"num_first_issue_online",
	"date_last_issue_online",
	"num_last_vol_online",
	"num_last_issue_online",
	"title_url",
	"first_author",
	"title_id",
	"embargo_info",
	"coverage_depth",
	"notes",
	"publisher_name",
	"publication_type",
	"date_monograph_published_print",
	"date_monograph_published_online",
	"monograph_volume",
	"monograph_edition",
	"first_editor",
	"parent_publication_title_id",
	"preceding_publication_title_id",
	"access_type",
}

// Generator renders the KBART specification. It never rejects a Work —
// KBART tolerates sparse rows, so missing fields render as empty columns
// rather than triggering IncompleteMetadataRecord.
type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(works []*work.Work) ([]byte, error) {
	var b strings.Builder
	b.WriteString(strings.Join(columns, "\t"))
	b.WriteString("\n")
	for _, w := range works {
		b.WriteString(strings.Join(row(w), "\t"))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

func row(w *work.Work) []string {
	isbn := ""
	landingPage := ""
	for _, p := range w.Publications {
		if !p.ISBN.IsZero() && isbn == "" {
			isbn = p.ISBN.ToHyphenlessString()
		}
		if loc, ok := p.CanonicalLocation(); ok && landingPage == "" {
			landingPage = loc.LandingPage
		}
	}

	firstAuthor, firstEditor := "", ""
	for _, c := range w.MainContributions() {
		switch c.ContributionType {
		case work.ContributionAuthor:
			if firstAuthor == "" {
				firstAuthor = c.DisplayName()
			}
		case work.ContributionEditor:
			if firstEditor == "" {
				firstEditor = c.DisplayName()
			}
		}
	}

	pubDate := ""
	if !w.PublicationDate.IsZero() {
		pubDate = w.PublicationDate.Display()
	}

	edition := ""
	if w.Edition != 0 {
		edition = fmt.Sprintf("%d", w.Edition)
	}

	return []string{
		tsvSafe(w.FullTitle),
		"", // print_identifier: this tree carries no print ISBN distinct from digital
		isbn,
		"", "", "", "", "", "", // serial coverage columns: not applicable to monographs
		tsvSafe(landingPage),
		tsvSafe(firstAuthor),
		w.WorkID,
		"",
		"fulltext",
		"",
		tsvSafe(w.Imprint.Publisher.Name),
		"monograph",
		"",
		pubDate,
		"",
		edition,
		tsvSafe(firstEditor),
		"",
		"",
		"F",
	}
}

func tsvSafe(s string) string {
	r := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")
	return r.Replace(s)
}
