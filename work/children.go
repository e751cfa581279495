package work

import "github.com/oabooks/exportcore/identifier"

// Publication is one physical/digital manifestation of a Work.
type Publication struct {
	PublicationID   string
	PublicationType PublicationType

	ISBN identifier.ISBN // zero value means absent

	// Dimensions are present as matched metric/imperial pairs or both
	// absent; the generators never mix the two systems for one field.
	WidthMM    float64
	WidthIn    float64
	HeightMM   float64
	HeightIn   float64
	DepthMM    float64
	DepthIn    float64
	WeightG    float64
	WeightOz   float64

	Prices    []Price
	Locations []Location
}

// Price is a positive amount in a closed currency enum. Absence of a price
// in a given currency is represented by its absence from the slice, never
// by a zero-valued Price.
type Price struct {
	Currency Currency
	Amount   float64
}

// CanonicalPrice returns the Price in the given currency, if present.
func (p Publication) CanonicalPrice(c Currency) (Price, bool) {
	for _, pr := range p.Prices {
		if pr.Currency == c {
			return pr, true
		}
	}
	return Price{}, false
}

// Location is a platform-hosted URL for a Publication. Exactly one
// Location per Publication is canonical.
type Location struct {
	Platform    string
	LandingPage string
	FullTextURL string
	Canonical   bool
}

// CanonicalLocation returns the Publication's canonical Location.
func (p Publication) CanonicalLocation() (Location, bool) {
	for _, l := range p.Locations {
		if l.Canonical {
			return l, true
		}
	}
	return Location{}, false
}

// Contributor is the person or organization behind a Contribution.
type Contributor struct {
	ORCID   identifier.ORCID
	Website string
}

// Contribution relates a Work to a Contributor with a role.
type Contribution struct {
	ContributionType    ContributionType
	MainContribution    bool
	ContributionOrdinal int // densely numbered from 1 per Work

	FirstName string // optional
	LastName  string
	FullName  string

	Contributor Contributor
}

// DisplayName renders "First Last" when FirstName is known, else FullName.
func (c Contribution) DisplayName() string {
	if c.FirstName != "" {
		return c.FirstName + " " + c.LastName
	}
	return c.FullName
}

type Language struct {
	Code             string // ISO 639-2/B three-letter
	LanguageRelation LanguageRelation
	MainLanguage     bool
}

type Subject struct {
	SubjectType    SubjectType
	SubjectCode    string
	SubjectOrdinal int
}

type Series struct {
	SeriesType  SeriesType
	SeriesName  string
	ISSNPrint   string
	ISSNDigital string
}

type Issue struct {
	Series       Series
	IssueOrdinal int
}

type Funding struct {
	FunderName    string
	FunderDOI     identifier.DOI
	Program       string
	ProjectName   string
	GrantNumber   string
}

type WorkRelationType string

const (
	RelationHasChild       WorkRelationType = "has-child"
	RelationIsChildOf      WorkRelationType = "is-child-of"
	RelationHasTranslation WorkRelationType = "has-translation"
	RelationIsTranslationOf WorkRelationType = "is-translation-of"
	RelationReplaces       WorkRelationType = "replaces"
	RelationIsReplacedBy   WorkRelationType = "is-replaced-by"
	RelationHasPartOf      WorkRelationType = "has-part"
	RelationIsPartOf       WorkRelationType = "is-part-of"
)

// WorkRelation references a related Work by id only, never by embedded
// graph, to keep the aggregate a tree.
type WorkRelation struct {
	RelationType    WorkRelationType
	RelationOrdinal int
	RelatedWorkID   string
}

type Reference struct {
	ReferenceOrdinal int
	DOI              identifier.DOI
	UnstructuredCitation string
}

type Abstract struct {
	AbstractType AbstractType
	Locale       string
	Canonical    bool
	Content      string // markup content in whatever surface syntax was stored
}

type Title struct {
	Locale    string
	Canonical bool
	Content   string
}
