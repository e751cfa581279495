package onix3

import (
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/generate/xmlw"
	"github.com/oabooks/exportcore/work"
)

// OAPEN (serving OAPEN/DOAB) requires a canonical PDF and adds an Audience
// block, since DOAB's harvester expects one to route a title correctly, plus
// a Publisher block (role 16, funding body) per Work.Funding.
func OAPEN(senderName, senderEmail string) *Generator {
	return New(Variant{
		SpecID: "onix_3.0::oapen",
		Preconditions: func(w *work.Work) error {
			if _, ok := w.CanonicalPublication(work.PublicationPDF); !ok {
				return exporterrors.IncompleteMetadataRecord("onix_3.0::oapen", "Missing PDF URL")
			}
			return nil
		},
		KeepSubject:   func(s work.Subject) bool { return true },
		SubjectScheme: generate.SubjectSchemeIdentifierCode,
		ProductFormDetail: func(w *work.Work) (string, work.PublicationType, bool) {
			if _, ok := w.CanonicalPublication(work.PublicationPDF); ok {
				return "E107", work.PublicationPDF, true
			}
			return "", "", false
		},
		WriteDescriptiveExtra: func(w *xmlw.Writer, wk *work.Work) {
			w.Start("Audience")
			w.Elem("AudienceCodeType", "01")
			w.Elem("AudienceCodeValue", "06")
			w.End("Audience")
			for _, f := range wk.Fundings {
				if f.FunderName == "" {
					continue
				}
				w.Start("Publisher")
				w.Elem("PublishingRole", "16")
				w.Elem("PublisherName", f.FunderName)
				if !f.FunderDOI.IsZero() {
					w.Start("Funding")
					w.Elem("FundingIdentifier", f.FunderDOI.Display())
					w.End("Funding")
				}
				w.End("Publisher")
			}
		},
	}, senderName, senderEmail, nil)
}
