package work

import (
	"testing"

	"github.com/oabooks/exportcore/identifier"
)

func minimalWork(t *testing.T) Work {
	t.Helper()
	return Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000001",
		WorkType:        WorkTypeMonograph,
		Status:          StatusActive,
		Title:           "Book Title",
		PublicationDate: identifier.NewTimestampFromDate(1999, 12, 31),
		Imprint: Imprint{
			Publisher: Publisher{Name: "OA Editions"},
		},
	}
}

func TestNewDerivesFullTitle(t *testing.T) {
	w := minimalWork(t)
	w.Subtitle = "Book Subtitle"
	got, err := New(w)
	if err != nil {
		t.Fatal(err)
	}
	if got.FullTitle != "Book Title: Book Subtitle" {
		t.Errorf("FullTitle = %q", got.FullTitle)
	}
}

func TestNewRejectsMalformedWorkID(t *testing.T) {
	w := minimalWork(t)
	w.WorkID = "not-a-uuid"
	if _, err := New(w); err == nil {
		t.Fatal("expected error for malformed work id")
	}
}

func TestNewCanonicalizesWorkID(t *testing.T) {
	w := minimalWork(t)
	w.WorkID = "00000000-0000-0000-AAAA-000000000001"
	got, err := New(w)
	if err != nil {
		t.Fatal(err)
	}
	if got.WorkID != "00000000-0000-0000-aaaa-000000000001" {
		t.Errorf("WorkID = %q, want lowercase canonical form", got.WorkID)
	}
}

func TestNewRequiresPublicationDateForActive(t *testing.T) {
	w := minimalWork(t)
	w.PublicationDate = Timestamp{}
	if _, err := New(w); err == nil {
		t.Fatal("expected error for missing publication date")
	}
}

func TestNewRejectsWithdrawnDateWithoutStatus(t *testing.T) {
	w := minimalWork(t)
	w.WithdrawnDate = identifier.NewTimestampFromDate(2000, 1, 1)
	if _, err := New(w); err == nil {
		t.Fatal("expected error for withdrawn date on active work")
	}
}

func TestNewRequiresWithdrawnDateAfterPublication(t *testing.T) {
	w := minimalWork(t)
	w.Status = StatusWithdrawn
	w.WithdrawnDate = identifier.NewTimestampFromDate(1990, 1, 1)
	if _, err := New(w); err == nil {
		t.Fatal("expected error for withdrawn date before publication date")
	}
}

func TestNewRejectsEditionOnChapter(t *testing.T) {
	w := minimalWork(t)
	w.WorkType = WorkTypeBookChapter
	w.Edition = 1
	if _, err := New(w); err == nil {
		t.Fatal("expected error for edition on chapter")
	}
}

func TestNewRejectsPageIntervalOnNonChapter(t *testing.T) {
	w := minimalWork(t)
	w.PageInterval = "1-10"
	if _, err := New(w); err == nil {
		t.Fatal("expected error for page interval on non-chapter")
	}
}

func TestMainContributionsSortedByOrdinal(t *testing.T) {
	w := minimalWork(t)
	w.Contributions = []Contribution{
		{ContributionType: ContributionAuthor, MainContribution: true, ContributionOrdinal: 2, FullName: "Author 2"},
		{ContributionType: ContributionAuthor, MainContribution: true, ContributionOrdinal: 1, FullName: "Author 1"},
	}
	got, err := New(w)
	if err != nil {
		t.Fatal(err)
	}
	main := got.MainContributions()
	if len(main) != 2 || main[0].FullName != "Author 1" || main[1].FullName != "Author 2" {
		t.Errorf("MainContributions() = %+v", main)
	}
}
