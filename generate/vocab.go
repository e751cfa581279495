package generate

import "github.com/oabooks/exportcore/work"

// PublishingStatusCode maps WorkStatus -> ONIX PublishingStatus.
func PublishingStatusCode(s work.WorkStatus) (string, bool) {
	switch s {
	case work.StatusActive:
		return "04", true
	case work.StatusForthcoming:
		return "02", true
	case work.StatusCancelled:
		return "01", true
	case work.StatusPostponedIndefinitely:
		return "03", true
	case work.StatusSuperseded:
		return "08", true
	case work.StatusWithdrawn:
		return "11", true
	case work.StatusNoLongerOurProduct:
		return "05", true
	case work.StatusOutOfStockIndefinitely:
		return "06", true
	case work.StatusOutOfPrint:
		return "07", true
	case work.StatusInactive:
		return "08", true
	case work.StatusUnknown:
		return "09", true
	case work.StatusRemaindered:
		return "10", true
	case work.StatusWithdrawnFromSale:
		return "11", true
	case work.StatusRecalled:
		return "15", true
	default:
		return "", false
	}
}

// ContributorRoleCode maps ContributionType -> ONIX ContributorRole.
func ContributorRoleCode(c work.ContributionType) (string, bool) {
	switch c {
	case work.ContributionAuthor:
		return "A01", true
	case work.ContributionEditor:
		return "B01", true
	case work.ContributionTranslator:
		return "B06", true
	case work.ContributionIllustrator:
		return "A12", true
	case work.ContributionPhotographer:
		return "A13", true
	case work.ContributionPrefaceBy:
		return "A15", true
	case work.ContributionAfterwordBy:
		return "A19", true
	case work.ContributionForewordBy:
		return "A23", true
	case work.ContributionIntroductionBy:
		return "A24", true
	case work.ContributionMusicEditor:
		return "B25", true
	case work.ContributionSoftwareBy:
		return "A30", true
	case work.ContributionContributionsBy:
		return "A32", true
	case work.ContributionIndexer:
		return "A34", true
	case work.ContributionResearchBy:
		return "A51", true
	default:
		return "", false
	}
}

// SubjectSchemeIdentifierCode maps SubjectType -> ONIX SubjectSchemeIdentifier.
func SubjectSchemeIdentifierCode(s work.SubjectType) (string, bool) {
	switch s {
	case work.SubjectLCC:
		return "04", true
	case work.SubjectBISAC:
		return "10", true
	case work.SubjectBIC:
		return "12", true
	case work.SubjectKeyword:
		return "20", true
	case work.SubjectTHEMA:
		return "93", true
	case work.SubjectCustom:
		return "B2", true
	default:
		return "", false
	}
}

// GoogleBooksSubjectSchemeIdentifierCode is Google Books' collapse of
// Keyword and Custom into a single scheme code 23.
func GoogleBooksSubjectSchemeIdentifierCode(s work.SubjectType) (string, bool) {
	if s == work.SubjectKeyword || s == work.SubjectCustom {
		return "23", true
	}
	return SubjectSchemeIdentifierCode(s)
}

// LanguageRoleCode maps LanguageRelation -> ONIX LanguageRole.
func LanguageRoleCode(r work.LanguageRelation) (string, bool) {
	switch r {
	case work.LanguageOriginal, work.LanguageTranslatedInto:
		return "01", true
	case work.LanguageTranslatedFrom:
		return "02", true
	default:
		return "", false
	}
}
