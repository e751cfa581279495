package onix21

import (
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/work"
)

// ProQuestEbrary is the restricted-field ONIX 2.1 profile supplemented
// from original_source/ (§4.4.3a): EpubType is always 002, territory is
// always WORLD with no per-country rights, and no cover MediaFile block is
// emitted — ProQuest Ebrary's own ingest pipeline sources cover images out
// of band.
func ProQuestEbrary(senderName, senderEmail string) *Generator {
	return New(Variant{
		SpecID: "onix_2.1::proquest_ebrary",
		Preconditions: func(w *work.Work) error {
			if _, ok := w.CanonicalPublication(work.PublicationEPUB); !ok {
				return exporterrors.IncompleteMetadataRecord("onix_2.1::proquest_ebrary", "Missing EPUB URL")
			}
			return nil
		},
		EpubTypeCode: func(w *work.Work) (string, bool) {
			return "002", true
		},
		WriteMediaFile:       false,
		SalesRightsTerritory: "WORLD",
	}, senderName, senderEmail, nil)
}
