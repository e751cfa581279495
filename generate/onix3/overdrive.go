package onix3

import (
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/work"
)

// OverDrive requires a canonical PDF publication. Each supplied
// publication carries its USD price when it has one and is reported
// unpriced otherwise.
func OverDrive(senderName, senderEmail string) *Generator {
	return New(Variant{
		SpecID: "onix_3.0::overdrive",
		Preconditions: func(w *work.Work) error {
			if _, ok := w.CanonicalPublication(work.PublicationPDF); ok {
				return nil
			}
			return exporterrors.IncompleteMetadataRecord("onix_3.0::overdrive", "Missing PDF URL")
		},
		KeepSubject:   func(s work.Subject) bool { return true },
		SubjectScheme: generate.SubjectSchemeIdentifierCode,
		ProductFormDetail: func(w *work.Work) (string, work.PublicationType, bool) {
			if _, ok := w.CanonicalPublication(work.PublicationEPUB); ok {
				return "E101", work.PublicationEPUB, true
			}
			if _, ok := w.CanonicalPublication(work.PublicationPDF); ok {
				return "E107", work.PublicationPDF, true
			}
			return "", "", false
		},
		CanonicalPriceCurrency: work.CurrencyUSD,
	}, senderName, senderEmail, nil)
}
