package onix21

import (
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/work"
)

// EBSCOHost requires a canonical EPUB or PDF publication and carries a
// cover MediaFile block when the Work has one.
func EBSCOHost(senderName, senderEmail string) *Generator {
	return New(Variant{
		SpecID: "onix_2.1::ebsco_host",
		Preconditions: func(w *work.Work) error {
			if _, ok := w.CanonicalPublication(work.PublicationEPUB); ok {
				return nil
			}
			if _, ok := w.CanonicalPublication(work.PublicationPDF); ok {
				return nil
			}
			return exporterrors.IncompleteMetadataRecord("onix_2.1::ebsco_host", "Missing EPUB or PDF URL")
		},
		EpubTypeCode: func(w *work.Work) (string, bool) {
			if _, ok := w.CanonicalPublication(work.PublicationEPUB); ok {
				return "029", true
			}
			if _, ok := w.CanonicalPublication(work.PublicationPDF); ok {
				return "002", true
			}
			return "", false
		},
		WriteMediaFile: true,
	}, senderName, senderEmail, nil)
}
