package csvexport

import (
	"strings"
	"testing"

	"github.com/oabooks/exportcore/identifier"
	"github.com/oabooks/exportcore/work"
)

func TestGenerateWritesHeaderAndJoinedMultiValueColumns(t *testing.T) {
	w, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000001",
		WorkType:        work.WorkTypeEditedBook,
		Status:          work.StatusActive,
		Title:           "Edited Collection",
		PublicationDate: identifier.NewTimestampFromDate(2020, 6, 1),
		Contributions: []work.Contribution{
			{ContributionType: work.ContributionEditor, MainContribution: true, ContributionOrdinal: 1, FullName: "Editor One"},
			{ContributionType: work.ContributionEditor, MainContribution: true, ContributionOrdinal: 2, FullName: "Editor Two"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	out, err := New().Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Editor One;Editor Two") {
		t.Errorf("expected semicolon-joined editors, got: %s", lines[1])
	}
}

func TestGenerateOmitsHeaderWhenDisabled(t *testing.T) {
	w, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000002",
		WorkType:        work.WorkTypeMonograph,
		Status:          work.StatusActive,
		Title:           "Book",
		PublicationDate: identifier.NewTimestampFromDate(2020, 1, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	g := New()
	g.IncludeHeader = false
	out, err := g.Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly 1 row with header disabled, got %d", len(lines))
	}
}
