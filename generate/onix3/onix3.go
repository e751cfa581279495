// Package onix3 implements the ONIX 3.0 common contract (§4.4.1) and its
// five platform variants (§4.4.2): Project MUSE, OAPEN/DOAB, JSTOR, Google
// Books, and OverDrive. Every variant shares Generate's header/skeleton and
// differs only in the Variant value it's constructed with.
package onix3

import (
	"strconv"
	"time"

	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/generate/xmlw"
	"github.com/oabooks/exportcore/identifier"
	"github.com/oabooks/exportcore/work"
)

const namespace = "http://ns.editeur.org/onix/3.0/reference"

// Variant captures everything that differs between ONIX 3.0 platform
// specifications. Preconditions is called once per Work and must return an
// *exporterrors.Error (IncompleteMetadataRecord) to reject it.
type Variant struct {
	SpecID string

	Preconditions func(w *work.Work) error
	KeepSubject   func(s work.Subject) bool
	SubjectScheme func(t work.SubjectType) (string, bool)

	// ProductFormDetail returns the ONIX ProductFormDetail code for the
	// Work's canonical digital format, and the PublicationType it was
	// derived from.
	ProductFormDetail func(w *work.Work) (code string, pubType work.PublicationType, ok bool)

	// AdjustContributors lets a variant re-derive the contributor list
	// before rendering (Google Books' "no Author present" re-labelling).
	AdjustContributors func(w *work.Work, contribs []work.Contribution) []work.Contribution

	// SkipContributionType reports roles a variant omits entirely.
	SkipContributionType func(t work.ContributionType) bool

	// WriteDescriptiveExtra writes variant-specific blocks at the end of
	// DescriptiveDetail (e.g. OAPEN's Audience, Google Books' nothing).
	WriteDescriptiveExtra func(w *xmlw.Writer, wk *work.Work)

	// WriteCollateralExtra writes variant-specific blocks at the end of
	// CollateralDetail (e.g. Project MUSE's Open-Access TextContent).
	WriteCollateralExtra func(w *xmlw.Writer, wk *work.Work)

	// WriteRelatedMaterial writes the RelatedMaterial block, or nothing.
	WriteRelatedMaterial func(w *xmlw.Writer, wk *work.Work)

	// CanonicalPriceCurrency names the currency a variant treats as its
	// canonical derived price (Google Books: GBP); when it is empty every
	// publication is reported unpriced.
	CanonicalPriceCurrency work.Currency
}

// Generator renders one ONIX 3.0 variant. SenderEmail is injected from
// configuration (§9's open question: no compiled-in default).
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
	w.Start("ONIXMessage", xmlw.A("xmlns", namespace), xmlw.A("release", "3.0"))
	g.writeHeader(w)

	for _, wk := range selected {
		if err := g.Variant.Preconditions(wk); err != nil {
			return nil, err
		}
		g.writeProduct(w, wk)
	}
	w.End("ONIXMessage")
	return w.Bytes(), nil
}

func (g *Generator) writeHeader(w *xmlw.Writer) {
	w.Start("Header")
	w.Start("Sender")
	w.Elem("SenderName", g.SenderName)
	w.Elem("EmailAddress", g.SenderEmail)
	w.End("Sender")
	w.Elem("SentDateTime", g.Now().UTC().Format("20060102T150405"))
	w.End("Header")
}

func (g *Generator) writeProduct(w *xmlw.Writer, wk *work.Work) {
	w.Start("Product")

	w.Elem("RecordReference", "urn:uuid:"+wk.WorkID)
	w.Elem("NotificationType", "03")
	w.Elem("RecordSourceType", "01")

	w.Start("ProductIdentifier")
	w.Elem("ProductIDType", "01")
	w.Elem("IDValue", "urn:uuid:"+wk.WorkID)
	w.End("ProductIdentifier")

	if isbn, ok := canonicalISBN(wk); ok {
		w.Start("ProductIdentifier")
		w.Elem("ProductIDType", "15")
		w.Elem("IDValue", isbn.ToHyphenlessString())
		w.End("ProductIdentifier")
	}
	if !wk.DOI.IsZero() {
		w.Start("ProductIdentifier")
		w.Elem("ProductIDType", "06")
		w.Elem("IDValue", wk.DOI.Display())
		w.End("ProductIdentifier")
	}

	g.writeDescriptiveDetail(w, wk)
	g.writeCollateralDetail(w, wk)
	g.writePublishingDetail(w, wk)
	if g.Variant.WriteRelatedMaterial != nil {
		g.Variant.WriteRelatedMaterial(w, wk)
	}
	g.writeProductSupply(w, wk)

	w.End("Product")
}

func canonicalISBN(wk *work.Work) (identifier.ISBN, bool) {
	for _, p := range wk.Publications {
		if !p.ISBN.IsZero() {
			if _, ok := p.CanonicalLocation(); ok {
				return p.ISBN, true
			}
		}
	}
	return identifier.ISBN{}, false
}

func (g *Generator) writeDescriptiveDetail(w *xmlw.Writer, wk *work.Work) {
	w.Start("DescriptiveDetail")
	w.Elem("ProductComposition", "00")
	w.Elem("ProductForm", "EB")
	if g.Variant.ProductFormDetail != nil {
		if code, _, ok := g.Variant.ProductFormDetail(wk); ok {
			w.Elem("ProductFormDetail", code)
		}
	}
	w.Elem("TitleText", wk.Title)
	if wk.Subtitle != "" {
		w.Elem("Subtitle", wk.Subtitle)
	}

	contribs := wk.MainContributions()
	if g.Variant.AdjustContributors != nil {
		contribs = g.Variant.AdjustContributors(wk, contribs)
	}
	for _, c := range contribs {
		if g.Variant.SkipContributionType != nil && g.Variant.SkipContributionType(c.ContributionType) {
			continue
		}
		code, ok := generate.ContributorRoleCode(c.ContributionType)
		if !ok {
			continue
		}
		w.Start("Contributor")
		w.Elem("SequenceNumber", strconv.Itoa(c.ContributionOrdinal))
		w.Elem("ContributorRole", code)
		if c.FirstName != "" {
			w.Elem("NamesBeforeKey", c.FirstName)
			w.Elem("KeyNames", c.LastName)
		} else {
			w.Elem("PersonName", c.FullName)
		}
		if !c.Contributor.ORCID.IsZero() {
			w.Start("NameIdentifier")
			w.Elem("NameIDType", "21")
			w.Elem("IDValue", c.Contributor.ORCID.Display())
			w.End("NameIdentifier")
		}
		w.End("Contributor")
	}

	for _, s := range wk.Subjects {
		if g.Variant.KeepSubject != nil && !g.Variant.KeepSubject(s) {
			continue
		}
		scheme, ok := g.Variant.SubjectScheme(s.SubjectType)
		if !ok {
			continue
		}
		w.Start("Subject")
		w.Elem("SubjectSchemeIdentifier", scheme)
		w.Elem("SubjectCode", s.SubjectCode)
		w.End("Subject")
	}

	if g.Variant.WriteDescriptiveExtra != nil {
		g.Variant.WriteDescriptiveExtra(w, wk)
	}
	w.End("DescriptiveDetail")
}

func (g *Generator) writeCollateralDetail(w *xmlw.Writer, wk *work.Work) {
	abstract, hasAbstract := wk.CanonicalAbstract(work.AbstractLong)
	if !hasAbstract && wk.TOC == "" && g.Variant.WriteCollateralExtra == nil {
		return
	}
	w.Start("CollateralDetail")
	if hasAbstract {
		w.Start("TextContent")
		w.Elem("TextType", "03")
		w.Start("Text", xmlw.A("language", "eng"))
		w.Text(abstract.Content)
		w.End("Text")
		w.End("TextContent")
	}
	if wk.TOC != "" {
		w.Start("TextContent")
		w.Elem("TextType", "04")
		w.Start("Text")
		w.Text(wk.TOC)
		w.End("Text")
		w.End("TextContent")
	}
	if g.Variant.WriteCollateralExtra != nil {
		g.Variant.WriteCollateralExtra(w, wk)
	}
	w.End("CollateralDetail")
}

func (g *Generator) writePublishingDetail(w *xmlw.Writer, wk *work.Work) {
	w.Start("PublishingDetail")
	if wk.Imprint.Name != "" {
		w.Start("Imprint")
		w.Elem("ImprintName", wk.Imprint.Name)
		w.End("Imprint")
	}
	if wk.Imprint.Publisher.Name != "" {
		w.Start("Publisher")
		w.Elem("PublishingRole", "01")
		w.Elem("PublisherName", wk.Imprint.Publisher.Name)
		w.End("Publisher")
	}
	if status, ok := generate.PublishingStatusCode(wk.Status); ok {
		w.Elem("PublishingStatus", status)
	}
	if !wk.PublicationDate.IsZero() {
		w.Start("PublishingDate")
		w.Elem("PublishingDateRole", "01")
		w.Elem("Date", wk.PublicationDate.FormatCompact(), xmlw.A("dateformat", "00"))
		w.End("PublishingDate")
	}
	w.End("PublishingDetail")
}

func (g *Generator) writeProductSupply(w *xmlw.Writer, wk *work.Work) {
	w.Start("ProductSupply")
	for _, p := range wk.Publications {
		loc, ok := p.CanonicalLocation()
		if !ok {
			continue
		}
		currency := g.Variant.CanonicalPriceCurrency
		price, hasPrice := p.CanonicalPrice(currency)
		if currency == "" {
			hasPrice = false
		}
		if loc.LandingPage != "" {
			w.Start("SupplyDetail")
			w.Elem("SupplierRole", "09")
			w.Start("Website")
			w.Elem("WebsiteRole", "01")
			w.Elem("WebsiteLink", loc.LandingPage)
			w.End("Website")
			writeAvailabilityOrPrice(w, hasPrice, price)
			w.End("SupplyDetail")
		}
		if loc.FullTextURL != "" {
			w.Start("SupplyDetail")
			w.Elem("SupplierRole", "09")
			w.Start("Website")
			w.Elem("WebsiteRole", "29")
			w.Elem("WebsiteLink", loc.FullTextURL)
			w.End("Website")
			writeAvailabilityOrPrice(w, hasPrice, price)
			w.End("SupplyDetail")
		}
	}
	w.End("ProductSupply")
}

func writeAvailabilityOrPrice(w *xmlw.Writer, hasPrice bool, price work.Price) {
	w.Elem("ProductAvailability", "99")
	if hasPrice {
		w.Start("Price")
		w.Elem("PriceType", "02")
		w.Elem("CurrencyCode", string(price.Currency))
		w.Start("Territory")
		w.Elem("RegionsIncluded", "WORLD")
		w.End("Territory")
		w.End("Price")
		return
	}
	w.Elem("UnpricedItemType", "01")
}
