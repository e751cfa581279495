package onix3

import (
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/generate/xmlw"
	"github.com/oabooks/exportcore/work"
)

// JSTOR requires a canonical PDF publication with a landing page and at
// least one BISAC subject, and rejects a Work missing either with
// IncompleteMetadataRecord — seed test (b).
func JSTOR(senderName, senderEmail string) *Generator {
	return New(Variant{
		SpecID: "onix_3.0::jstor",
		Preconditions: func(w *work.Work) error {
			pub, ok := w.CanonicalPublication(work.PublicationPDF)
			if !ok {
				return exporterrors.IncompleteMetadataRecord("onix_3.0::jstor", "Missing PDF URL")
			}
			loc, ok := pub.CanonicalLocation()
			if !ok || loc.LandingPage == "" {
				return exporterrors.IncompleteMetadataRecord("onix_3.0::jstor", "Missing PDF URL")
			}
			for _, s := range w.Subjects {
				if s.SubjectType == work.SubjectBISAC {
					return nil
				}
			}
			return exporterrors.IncompleteMetadataRecord("onix_3.0::jstor", "Missing BISAC subject")
		},
		KeepSubject:   func(s work.Subject) bool { return true },
		SubjectScheme: generate.SubjectSchemeIdentifierCode,
		ProductFormDetail: func(w *work.Work) (string, work.PublicationType, bool) {
			if _, ok := w.CanonicalPublication(work.PublicationPDF); ok {
				return "E107", work.PublicationPDF, true
			}
			return "", "", false
		},
		WriteRelatedMaterial: func(w *xmlw.Writer, wk *work.Work) {
			for _, p := range wk.Publications {
				isPrint := p.PublicationType == work.PublicationPaperback || p.PublicationType == work.PublicationHardback
				if !isPrint || p.ISBN.IsZero() {
					continue
				}
				w.Start("RelatedMaterial")
				w.Start("RelatedProduct")
				w.Elem("ProductRelationCode", "13")
				w.Start("ProductIdentifier")
				w.Elem("ProductIDType", "15")
				w.Elem("IDValue", p.ISBN.ToHyphenlessString())
				w.End("ProductIdentifier")
				w.End("RelatedProduct")
				w.End("RelatedMaterial")
				return
			}
		},
	}, senderName, senderEmail, nil)
}
