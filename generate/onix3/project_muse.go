package onix3

import (
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/generate/xmlw"
	"github.com/oabooks/exportcore/work"
)

// ProjectMUSE requires a canonical PDF publication plus at least one BIC
// or BISAC subject, and always renders an open-access marker in
// CollateralDetail. ProductFormDetail is E101 when the Work also has a
// canonical HTML publication, E107 otherwise.
func ProjectMUSE(senderName, senderEmail string) *Generator {
	return New(Variant{
		SpecID: "onix_3.0::project_muse",
		Preconditions: func(w *work.Work) error {
			if _, ok := w.CanonicalPublication(work.PublicationPDF); !ok {
				return exporterrors.IncompleteMetadataRecord("onix_3.0::project_muse", "Missing PDF URL")
			}
			for _, s := range w.Subjects {
				if s.SubjectType == work.SubjectBIC || s.SubjectType == work.SubjectBISAC {
					return nil
				}
			}
			return exporterrors.IncompleteMetadataRecord("onix_3.0::project_muse", "Missing BIC or BISAC subject")
		},
		KeepSubject:   func(s work.Subject) bool { return s.SubjectType != work.SubjectKeyword },
		SubjectScheme: generate.SubjectSchemeIdentifierCode,
		ProductFormDetail: func(w *work.Work) (string, work.PublicationType, bool) {
			if _, ok := w.CanonicalPublication(work.PublicationHTML); ok {
				return "E101", work.PublicationHTML, true
			}
			if _, ok := w.CanonicalPublication(work.PublicationPDF); ok {
				return "E107", work.PublicationPDF, true
			}
			return "", "", false
		},
		WriteCollateralExtra: func(w *xmlw.Writer, wk *work.Work) {
			w.Start("TextContent")
			w.Elem("TextType", "20")
			w.Elem("ContentAudience", "00")
			w.Start("Text")
			w.Text("Open access license: " + wk.License)
			w.End("Text")
			w.End("TextContent")
		},
	}, senderName, senderEmail, nil)
}
