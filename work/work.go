// Package work defines the normalized bibliographic aggregate every record
// generator reads: the Work entity together with its transitively owned
// children (publications, contributions, languages, subjects, issues,
// fundings, relations, references, abstracts, titles, imprint).
//
// The Work aggregate is a tree (no cycles); WorkRelations reference related
// Works by id only, never by embedded graph.
package work

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/identifier"
)

// Work is the root entity. All fields are immutable once constructed via
// New; callers that need to change a Work build a new one.
type Work struct {
	WorkID   string // stable uuid, canonical lowercase form
	WorkType WorkType
	Status   WorkStatus

	Title    string
	Subtitle string
	// FullTitle is derived: Title, plus ": "+Subtitle when Subtitle is set.
	FullTitle string

	Edition int // 0 means absent; forbidden for chapters

	DOI identifier.DOI // zero value means absent

	PublicationDate Timestamp
	WithdrawnDate   Timestamp

	License string // URL, optional
	Place   string

	PageCount      int
	PageBreakdown  string
	FirstPage      string // chapters only
	LastPage       string // chapters only
	PageInterval   string // chapters only

	ImageCount int
	TableCount int
	AudioCount int
	VideoCount int

	LandingPage  string
	LCCN         string // forbidden for chapters
	OCLC         string // forbidden for chapters
	CoverURL     string
	CoverCaption string

	TOC string // forbidden for chapters

	CopyrightHolder string

	Imprint Imprint

	Publications  []Publication
	Contributions []Contribution
	Languages     []Language
	Subjects      []Subject
	Issues        []Issue
	Fundings      []Funding
	Relations     []WorkRelation
	References    []Reference
	Abstracts     []Abstract
	Titles        []Title
}

// Timestamp is a local alias so callers of this package don't need to
// import identifier directly for the common case.
type Timestamp = identifier.Timestamp

// Imprint is the Work's owning imprint and, transitively, publisher.
type Imprint struct {
	Name      string
	URL       string
	Publisher Publisher
}

type Publisher struct {
	Name      string
	ShortName string
	URL       string
}

// New constructs a Work and enforces the construction-time invariants
// named in the data model: date requirements by status, chapter field
// restrictions, and full-title derivation. It does not validate children
// (publications, contributions, ...) — those are validated by the
// generator that consumes them, per-specification.
func New(w Work) (*Work, error) {
	if w.WorkID == "" {
		return nil, exporterrors.InvalidUUID(w.WorkID)
	}
	parsed, err := uuid.Parse(w.WorkID)
	if err != nil {
		return nil, exporterrors.InvalidUUID(w.WorkID)
	}
	w.WorkID = parsed.String()
	if w.Status.RequiresPublicationDate() && w.PublicationDate.IsZero() {
		return nil, exporterrors.Internal(fmt.Sprintf("work %s: status %s requires a publication date", w.WorkID, w.Status))
	}
	if w.Status.RequiresWithdrawnDate() && w.WithdrawnDate.IsZero() {
		return nil, exporterrors.Internal(fmt.Sprintf("work %s: status %s requires a withdrawn date", w.WorkID, w.Status))
	}
	if !w.Status.RequiresWithdrawnDate() && !w.WithdrawnDate.IsZero() {
		return nil, exporterrors.Internal(fmt.Sprintf("work %s: withdrawn date set but status %s does not permit one", w.WorkID, w.Status))
	}
	if !w.WithdrawnDate.IsZero() && !w.PublicationDate.IsZero() && !w.WithdrawnDate.After(w.PublicationDate) {
		return nil, exporterrors.Internal(fmt.Sprintf("work %s: withdrawn date must be after publication date", w.WorkID))
	}
	if w.WorkType == WorkTypeBookChapter {
		if w.Edition != 0 {
			return nil, exporterrors.Internal(fmt.Sprintf("work %s: chapters may not carry an edition", w.WorkID))
		}
		if w.LCCN != "" || w.OCLC != "" {
			return nil, exporterrors.Internal(fmt.Sprintf("work %s: chapters may not carry LCCN/OCLC", w.WorkID))
		}
		if w.TOC != "" {
			return nil, exporterrors.Internal(fmt.Sprintf("work %s: chapters may not carry a table of contents", w.WorkID))
		}
	} else {
		if w.FirstPage != "" || w.LastPage != "" || w.PageInterval != "" {
			return nil, exporterrors.Internal(fmt.Sprintf("work %s: first/last page and page interval are chapter-only fields", w.WorkID))
		}
	}
	w.FullTitle = deriveFullTitle(w.Title, w.Subtitle)
	return &w, nil
}

func deriveFullTitle(title, subtitle string) string {
	if subtitle == "" {
		return title
	}
	return title + ": " + subtitle
}

// CanonicalPublication returns the first Publication of the given type that
// carries a canonical Location, or false if none exists.
func (w *Work) CanonicalPublication(t PublicationType) (Publication, bool) {
	for _, p := range w.Publications {
		if p.PublicationType != t {
			continue
		}
		if _, ok := p.CanonicalLocation(); ok {
			return p, true
		}
	}
	return Publication{}, false
}

// MainContributions returns contributions flagged MainContribution, sorted
// by ContributionOrdinal.
func (w *Work) MainContributions() []Contribution {
	var out []Contribution
	for _, c := range w.Contributions {
		if c.MainContribution {
			out = append(out, c)
		}
	}
	sortContributionsByOrdinal(out)
	return out
}

// ContributionsByType returns contributions of the given type, sorted by
// ContributionOrdinal.
func (w *Work) ContributionsByType(t ContributionType) []Contribution {
	var out []Contribution
	for _, c := range w.Contributions {
		if c.ContributionType == t {
			out = append(out, c)
		}
	}
	sortContributionsByOrdinal(out)
	return out
}

func sortContributionsByOrdinal(cs []Contribution) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && cs[j-1].ContributionOrdinal > cs[j].ContributionOrdinal; j-- {
			cs[j-1], cs[j] = cs[j], cs[j-1]
		}
	}
}

// SubjectsByType returns subjects of the given type, sorted by ordinal.
func (w *Work) SubjectsByType(t SubjectType) []Subject {
	var out []Subject
	for _, s := range w.Subjects {
		if s.SubjectType == t {
			out = append(out, s)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].SubjectOrdinal > out[j].SubjectOrdinal; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// CanonicalAbstract returns the canonical abstract of the given type.
func (w *Work) CanonicalAbstract(t AbstractType) (Abstract, bool) {
	for _, a := range w.Abstracts {
		if a.AbstractType == t && a.Canonical {
			return a, true
		}
	}
	return Abstract{}, false
}
