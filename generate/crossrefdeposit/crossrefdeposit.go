// Package crossrefdeposit implements the crossref::doi_deposit
// specification (§4.4.6): CrossRef's own DOI registration XML. Every Work
// must already carry a DOI — this specification deposits metadata for a
// DOI that exists, it doesn't mint one.
package crossrefdeposit

import (
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/generate/xmlw"
	"github.com/oabooks/exportcore/work"
)

const schemaVersion = "5.3.1"

// Generator renders the CrossRef DOI deposit batch.
type Generator struct {
	DepositorName  string
	DepositorEmail string
	Registrant     string
	BatchID        func() string
}

func New(depositorName, depositorEmail, registrant string, batchID func() string) *Generator {
	return &Generator{DepositorName: depositorName, DepositorEmail: depositorEmail, Registrant: registrant, BatchID: batchID}
}

func (g *Generator) Generate(works []*work.Work) ([]byte, error) {
	for _, w := range works {
		if w.DOI.IsZero() {
			return nil, exporterrors.IncompleteMetadataRecord("crossref::doi_deposit", "Missing DOI")
		}
		if len(w.MainContributions()) == 0 {
			return nil, exporterrors.IncompleteMetadataRecord("crossref::doi_deposit", "Missing contributor")
		}
	}

	w := xmlw.New()
	w.Start("doi_batch",
		xmlw.A("xmlns", "http://www.crossref.org/schema/"+schemaVersion),
		xmlw.A("version", schemaVersion))
	g.writeHead(w)
	w.Start("body")
	for _, wk := range works {
		g.writeBookEntry(w, wk)
	}
	w.End("body")
	w.End("doi_batch")
	return w.Bytes(), nil
}

func (g *Generator) writeHead(w *xmlw.Writer) {
	w.Start("head")
	batchID := "batch"
	if g.BatchID != nil {
		batchID = g.BatchID()
	}
	w.Elem("doi_batch_id", batchID)
	w.Start("depositor")
	w.Elem("depositor_name", g.DepositorName)
	w.Elem("email_address", g.DepositorEmail)
	w.End("depositor")
	w.Elem("registrant", g.Registrant)
	w.End("head")
}

func (g *Generator) writeBookEntry(w *xmlw.Writer, wk *work.Work) {
	bookType := "monograph"
	if wk.WorkType == work.WorkTypeEditedBook || wk.WorkType == work.WorkTypeTextbook {
		bookType = "edited_book"
	}
	w.Start("book", xmlw.A("book_type", bookType))
	w.Start("book_metadata")

	for _, c := range wk.MainContributions() {
		w.Start("contributors")
		role := "author"
		if c.ContributionType == work.ContributionEditor {
			role = "editor"
		}
		w.Start("person_name", xmlw.A("sequence", sequence(c.ContributionOrdinal)), xmlw.A("contributor_role", role))
		if c.FirstName != "" {
			w.Elem("given_name", c.FirstName)
			w.Elem("surname", c.LastName)
		} else {
			w.Elem("surname", c.FullName)
		}
		if !c.Contributor.ORCID.IsZero() {
			w.Elem("ORCID", c.Contributor.ORCID.WithDomain())
		}
		w.End("person_name")
		w.End("contributors")
	}

	w.Start("titles")
	w.Elem("title", wk.FullTitle)
	w.End("titles")

	if !wk.PublicationDate.IsZero() {
		w.Start("publication_date")
		w.Elem("year", wk.PublicationDate.Display()[:4])
		w.End("publication_date")
	}

	for _, p := range wk.Publications {
		if p.ISBN.IsZero() {
			continue
		}
		w.Elem("isbn", p.ISBN.ToHyphenlessString())
	}

	w.Start("publisher")
	w.Elem("publisher_name", wk.Imprint.Publisher.Name)
	w.End("publisher")

	w.Start("doi_data")
	w.Elem("doi", wk.DOI.Display())
	if pub, ok := wk.CanonicalPublication(work.PublicationPDF); ok {
		if loc, ok := pub.CanonicalLocation(); ok && loc.LandingPage != "" {
			w.Elem("resource", loc.LandingPage)
		}
	}
	w.End("doi_data")

	w.End("book_metadata")
	w.End("book")
}

func sequence(ordinal int) string {
	if ordinal <= 1 {
		return "first"
	}
	return "additional"
}
