package onix3

import (
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/work"
)

// GoogleBooks requires a canonical EPUB (preferred) or PDF publication, at
// least one BIC/BISAC/LCC subject, a publication date, and at least one
// contributor. It collapses Keyword/Custom subjects into scheme code 23,
// skips THEMA subjects entirely, omits SoftwareBy/ResearchBy/Indexer/
// MusicEditor contributors, re-labels the first main contributor as an
// Author (ContributorRole A01) when the Work carries no Author, and uses
// GBP as its canonical derived
// price — a Work with no GBP price is reported unpriced.
func GoogleBooks(senderName, senderEmail string) *Generator {
	return New(Variant{
		SpecID: "onix_3.0::google_books",
		Preconditions: func(w *work.Work) error {
			_, hasEPUB := w.CanonicalPublication(work.PublicationEPUB)
			_, hasPDF := w.CanonicalPublication(work.PublicationPDF)
			if !hasEPUB && !hasPDF {
				return exporterrors.IncompleteMetadataRecord("onix_3.0::google_books", "Missing EPUB or PDF URL")
			}
			if w.PublicationDate.IsZero() {
				return exporterrors.IncompleteMetadataRecord("onix_3.0::google_books", "Missing publication date")
			}
			if len(w.MainContributions()) == 0 {
				return exporterrors.IncompleteMetadataRecord("onix_3.0::google_books", "Missing contributor")
			}
			for _, s := range w.Subjects {
				if s.SubjectType == work.SubjectBIC || s.SubjectType == work.SubjectBISAC || s.SubjectType == work.SubjectLCC {
					return nil
				}
			}
			return exporterrors.IncompleteMetadataRecord("onix_3.0::google_books", "Missing BIC, BISAC, or LCC subject")
		},
		KeepSubject: func(s work.Subject) bool { return s.SubjectType != work.SubjectTHEMA },
		SubjectScheme: func(t work.SubjectType) (string, bool) {
			if t == work.SubjectKeyword || t == work.SubjectCustom {
				return "23", true
			}
			return generate.SubjectSchemeIdentifierCode(t)
		},
		ProductFormDetail: func(w *work.Work) (string, work.PublicationType, bool) {
			if _, ok := w.CanonicalPublication(work.PublicationEPUB); ok {
				return "E101", work.PublicationEPUB, true
			}
			if _, ok := w.CanonicalPublication(work.PublicationPDF); ok {
				return "E107", work.PublicationPDF, true
			}
			return "", "", false
		},
		AdjustContributors: func(w *work.Work, contribs []work.Contribution) []work.Contribution {
			hasAuthor := false
			for _, c := range contribs {
				if c.ContributionType == work.ContributionAuthor {
					hasAuthor = true
					break
				}
			}
			if hasAuthor || len(contribs) == 0 {
				return contribs
			}
			adjusted := append([]work.Contribution(nil), contribs...)
			adjusted[0].ContributionType = work.ContributionAuthor
			return adjusted
		},
		SkipContributionType: func(t work.ContributionType) bool {
			switch t {
			case work.ContributionSoftwareBy, work.ContributionResearchBy, work.ContributionIndexer, work.ContributionMusicEditor:
				return true
			default:
				return false
			}
		},
		CanonicalPriceCurrency: work.CurrencyGBP,
	}, senderName, senderEmail, nil)
}
