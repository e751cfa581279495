// Package onix21 implements the two ONIX 2.1 specifications named in
// §4.4.3/§4.4.3a: EBSCO Host and ProQuest Ebrary (restricted-field
// profile). Both write ONIX 2.1 reference-name tags without a namespace,
// and both omit fields the 3.0 emitters carry.
package onix21

import (
	"strconv"
	"time"

	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/generate/xmlw"
	"github.com/oabooks/exportcore/work"
)

// Variant captures everything that differs between the two ONIX 2.1
// specifications this package emits.
type Variant struct {
	SpecID string

	Preconditions func(w *work.Work) error

	// EpubTypeCode returns the EpubType code written for a Work, if any
	// (ProQuest Ebrary always writes 002; EBSCO Host writes 029 for EPUB
	// or 002 for PDF).
	EpubTypeCode func(w *work.Work) (string, bool)

	// WriteMediaFile controls whether a cover-image MediaFile block is
	// written; ProQuest Ebrary omits it entirely (§4.4.3a).
	WriteMediaFile bool

	// SalesRightsTerritory is the fixed ONIX territory code this variant
	// claims (ProQuest Ebrary: always WORLD).
	SalesRightsTerritory string
}

// Generator renders one ONIX 2.1 variant.
type Generator struct {
	Variant     Variant
	SenderName  string
	SenderEmail string
	Now         func() time.Time
}

func New(v Variant, senderName, senderEmail string, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{Variant: v, SenderName: senderName, SenderEmail: senderEmail, Now: now}
}

func (g *Generator) Generate(works []*work.Work) ([]byte, error) {
	selected := works
	if len(works) > 1 {
		selected = nil
		for _, w := range works {
			if w.WorkType == work.WorkTypeBookChapter {
				continue
			}
			selected = append(selected, w)
		}
	}

	w := xmlw.New()
	w.Start("ONIXMessage", xmlw.A("release", "2.1"))
	g.writeHeader(w)
	for _, wk := range selected {
		if g.Variant.Preconditions != nil {
			if err := g.Variant.Preconditions(wk); err != nil {
				return nil, err
			}
		}
		g.writeProduct(w, wk)
	}
	w.End("ONIXMessage")
	return w.Bytes(), nil
}

func (g *Generator) writeHeader(w *xmlw.Writer) {
	w.Start("Header")
	w.Elem("FromCompany", g.SenderName)
	w.Elem("FromEmail", g.SenderEmail)
	w.Elem("SentDate", g.Now().UTC().Format("20060102"))
	w.End("Header")
}

func (g *Generator) writeProduct(w *xmlw.Writer, wk *work.Work) {
	w.Start("Product")
	w.Elem("RecordReference", "urn:uuid:"+wk.WorkID)
	w.Elem("NotificationType", "03")

	w.Start("ProductIdentifier")
	w.Elem("ProductIDType", "01")
	w.Elem("IDValue", "urn:uuid:"+wk.WorkID)
	w.End("ProductIdentifier")

	if !wk.DOI.IsZero() {
		w.Start("ProductIdentifier")
		w.Elem("ProductIDType", "06")
		w.Elem("IDValue", wk.DOI.Display())
		w.End("ProductIdentifier")
	}

	w.Elem("ProductForm", "DG")
	if g.Variant.EpubTypeCode != nil {
		if code, ok := g.Variant.EpubTypeCode(wk); ok {
			w.Elem("EpubType", code)
		}
	}
	w.Elem("Title", wk.Title)
	if wk.Subtitle != "" {
		w.Elem("Subtitle", wk.Subtitle)
	}

	for _, c := range wk.MainContributions() {
		if c.ContributionType == work.ContributionResearchBy {
			continue
		}
		code, ok := generate.ContributorRoleCode(c.ContributionType)
		if !ok {
			continue
		}
		w.Start("Contributor")
		w.Elem("SequenceNumber", strconv.Itoa(c.ContributionOrdinal))
		w.Elem("ContributorRole", code)
		w.Elem("PersonName", c.DisplayName())
		w.End("Contributor")
	}

	if abstract, ok := wk.CanonicalAbstract(work.AbstractLong); ok {
		w.Start("OtherText")
		w.Elem("TextTypeCode", "03")
		w.Elem("Text", abstract.Content)
		w.End("OtherText")
	}

	if g.Variant.WriteMediaFile && wk.CoverURL != "" {
		w.Start("MediaFile")
		w.Elem("MediaFileTypeCode", "04")
		w.Elem("MediaFileLinkTypeCode", "01")
		w.Elem("MediaFileLink", wk.CoverURL)
		w.End("MediaFile")
	}

	if status, ok := generate.PublishingStatusCode(wk.Status); ok {
		w.Start("PublishingDetail")
		w.Elem("PublishingStatus", status)
		if !wk.PublicationDate.IsZero() {
			w.Elem("PublicationDate", wk.PublicationDate.FormatCompact())
		}
		w.End("PublishingDetail")
	}

	territory := g.Variant.SalesRightsTerritory
	if territory != "" {
		w.Start("SalesRights")
		w.Elem("SalesRightsType", "01")
		w.Elem("RightsTerritory", territory)
		w.End("SalesRights")
	}

	w.End("Product")
}
