package bibtex

import "github.com/oabooks/exportcore/work"

// Thoth is the full-detail bibtex::thoth specification: every populated
// field is carried through, and book chapters entry-type as "inbook".
func Thoth() *Generator {
	return New(Variant{
		SpecID: "bibtex::thoth",
		EntryType: func(w *work.Work) string {
			if w.WorkType == work.WorkTypeBookChapter {
				return "inbook"
			}
			return "book"
		},
		IncludeField: func(field string) bool { return true },
	})
}

// CrossRef is the leaner bibtex::crossref specification, omitting fields
// CrossRef's own deposit record already carries (address, edition).
func CrossRef() *Generator {
	return New(Variant{
		SpecID: "bibtex::crossref",
		EntryType: func(w *work.Work) string {
			if w.WorkType == work.WorkTypeBookChapter {
				return "inbook"
			}
			return "book"
		},
		IncludeField: func(field string) bool {
			return field != "address" && field != "edition"
		},
	})
}
