package onix21

import (
	"strings"
	"testing"

	"github.com/oabooks/exportcore/identifier"
	"github.com/oabooks/exportcore/work"
)

func baseWork(t *testing.T) *work.Work {
	t.Helper()
	w, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000001",
		WorkType:        work.WorkTypeMonograph,
		Status:          work.StatusActive,
		Title:           "Open Access Book",
		CoverURL:        "https://example.com/cover.jpg",
		PublicationDate: identifier.NewTimestampFromDate(2020, 6, 1),
		Contributions: []work.Contribution{
			{ContributionType: work.ContributionAuthor, MainContribution: true, ContributionOrdinal: 1, FullName: "Jane Doe"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	w.Publications = append(w.Publications, work.Publication{
		PublicationType: work.PublicationEPUB,
		Locations:       []work.Location{{Canonical: true, FullTextURL: "https://ebsco.example/book.epub"}},
	})
	return w
}

func TestEBSCOHostIncludesCoverMediaFile(t *testing.T) {
	out, err := EBSCOHost("OA Editions", "[email protected]").Generate([]*work.Work{baseWork(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "MediaFile") {
		t.Errorf("expected cover MediaFile block, got:\n%s", doc)
	}
	if !strings.Contains(doc, "<EpubType>029</EpubType>") {
		t.Errorf("expected EpubType 029 for an EPUB publication")
	}
}

func TestProQuestEbraryOmitsCoverAndFixesTerritory(t *testing.T) {
	out, err := ProQuestEbrary("OA Editions", "[email protected]").Generate([]*work.Work{baseWork(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if strings.Contains(doc, "MediaFile") {
		t.Errorf("ProQuest Ebrary must not carry a cover MediaFile block, got:\n%s", doc)
	}
	if !strings.Contains(doc, "WORLD") {
		t.Errorf("expected fixed WORLD territory")
	}
}

func TestProQuestEbraryRejectsMissingEPUB(t *testing.T) {
	w, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000002",
		WorkType:        work.WorkTypeMonograph,
		Status:          work.StatusActive,
		Title:           "No EPUB",
		PublicationDate: identifier.NewTimestampFromDate(2020, 6, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ProQuestEbrary("OA Editions", "[email protected]").Generate([]*work.Work{w}); err == nil {
		t.Fatal("expected error for missing EPUB")
	}
}
