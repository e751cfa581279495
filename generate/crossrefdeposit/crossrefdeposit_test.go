package crossrefdeposit

import (
	"strings"
	"testing"

	"github.com/oabooks/exportcore/identifier"
	"github.com/oabooks/exportcore/work"
)

func fixedBatchID() string { return "batch-001" }

func TestGenerateWritesDOIAndContributors(t *testing.T) {
	doi, err := identifier.ParseDOI("10.1000/182")
	if err != nil {
		t.Fatal(err)
	}
	w, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000001",
		WorkType:        work.WorkTypeMonograph,
		Status:          work.StatusActive,
		Title:           "Open Access Book",
		DOI:             doi,
		PublicationDate: identifier.NewTimestampFromDate(2020, 6, 1),
		Imprint:         work.Imprint{Publisher: work.Publisher{Name: "OA Editions Press"}},
		Contributions: []work.Contribution{
			{ContributionType: work.ContributionAuthor, MainContribution: true, ContributionOrdinal: 1, FirstName: "Jane", LastName: "Doe"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	out, err := New("OA Editions", "[email protected]", "OA Editions Press", fixedBatchID).Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "10.1000/182") {
		t.Errorf("expected DOI in output, got:\n%s", doc)
	}
	if !strings.Contains(doc, "<surname>Doe</surname>") {
		t.Errorf("expected contributor surname, got:\n%s", doc)
	}
	if !strings.Contains(doc, "batch-001") {
		t.Errorf("expected batch id")
	}
}

func TestGenerateRejectsWorkWithoutDOI(t *testing.T) {
	w, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000002",
		WorkType:        work.WorkTypeMonograph,
		Status:          work.StatusActive,
		Title:           "No DOI",
		PublicationDate: identifier.NewTimestampFromDate(2020, 6, 1),
		Contributions: []work.Contribution{
			{ContributionType: work.ContributionAuthor, MainContribution: true, ContributionOrdinal: 1, FullName: "Jane Doe"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New("OA Editions", "[email protected]", "OA Editions Press", fixedBatchID).Generate([]*work.Work{w}); err == nil {
		t.Fatal("expected IncompleteMetadataRecord for missing DOI")
	}
}
