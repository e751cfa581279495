package onix3

import (
	"strings"
	"testing"
	"time"

	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/identifier"
	"github.com/oabooks/exportcore/work"
)

func fixedNow() time.Time {
	return time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
}

func baseWork(t *testing.T) *work.Work {
	t.Helper()
	w, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000001",
		WorkType:        work.WorkTypeMonograph,
		Status:          work.StatusActive,
		Title:           "Open Access Book",
		PublicationDate: identifier.NewTimestampFromDate(2020, 6, 1),
		Imprint: work.Imprint{
			Name:      "OA Editions",
			Publisher: work.Publisher{Name: "OA Editions Press"},
		},
		Contributions: []work.Contribution{
			{ContributionType: work.ContributionAuthor, MainContribution: true, ContributionOrdinal: 1, FullName: "Jane Doe"},
		},
		Subjects: []work.Subject{
			{SubjectType: work.SubjectBISAC, SubjectCode: "LIT004000", SubjectOrdinal: 1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func withPDFLanding(w *work.Work, url string) *work.Work {
	w.Publications = append(w.Publications, work.Publication{
		PublicationType: work.PublicationPDF,
		Locations: []work.Location{
			{Platform: "jstor", LandingPage: url, Canonical: true},
		},
	})
	return w
}

func withEPUB(w *work.Work, url string) *work.Work {
	w.Publications = append(w.Publications, work.Publication{
		PublicationType: work.PublicationEPUB,
		Locations: []work.Location{
			{Platform: "google-books", LandingPage: url, Canonical: true},
		},
	})
	return w
}

func TestJSTORSucceedsWithCanonicalPDF(t *testing.T) {
	w := withPDFLanding(baseWork(t), "https://www.jstor.org/stable/1")
	out, err := JSTOR("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "E107") {
		t.Errorf("expected ProductFormDetail E107, got:\n%s", doc)
	}
	if !strings.Contains(doc, "jstor.org/stable/1") {
		t.Errorf("expected landing page URL in output")
	}
}

func TestJSTORRejectsMissingPDF(t *testing.T) {
	w := baseWork(t)
	_, err := JSTOR("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err == nil {
		t.Fatal("expected IncompleteMetadataRecord error")
	}
	var expErr *exporterrors.Error
	if !asExportError(err, &expErr) || expErr.Kind != exporterrors.KindIncompleteMetadataRecord {
		t.Fatalf("expected IncompleteMetadataRecord, got %v", err)
	}
	if expErr.Reason != "Missing PDF URL" {
		t.Errorf("Reason = %q", expErr.Reason)
	}
}

func TestJSTORRejectsMissingBISACSubject(t *testing.T) {
	w := withPDFLanding(baseWork(t), "https://www.jstor.org/stable/1")
	w.Subjects = nil
	_, err := JSTOR("OA Editions", "[email protected]").Generate([]*work.Work{w})
	var expErr *exporterrors.Error
	if !asExportError(err, &expErr) || expErr.Kind != exporterrors.KindIncompleteMetadataRecord {
		t.Fatalf("expected IncompleteMetadataRecord, got %v", err)
	}
	if expErr.Reason != "Missing BISAC subject" {
		t.Errorf("Reason = %q", expErr.Reason)
	}
}

func TestJSTOREmitsRelatedProductForPrintISBN(t *testing.T) {
	w := withPDFLanding(baseWork(t), "https://www.jstor.org/stable/1")
	isbn, err := identifier.ParseISBN("978-0-596-52068-7")
	if err != nil {
		t.Fatal(err)
	}
	w.Publications = append(w.Publications, work.Publication{
		PublicationType: work.PublicationHardback,
		ISBN:            isbn,
	})
	out, err := JSTOR("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "<RelatedProduct>") {
		t.Errorf("expected RelatedProduct block, got:\n%s", doc)
	}
	if !strings.Contains(doc, "<ProductRelationCode>13</ProductRelationCode>") {
		t.Errorf("expected relation code 13 (epub-based-on-print), got:\n%s", doc)
	}
	if !strings.Contains(doc, isbn.ToHyphenlessString()) {
		t.Errorf("expected print ISBN in RelatedProduct, got:\n%s", doc)
	}
}

func asExportError(err error, target **exporterrors.Error) bool {
	e, ok := err.(*exporterrors.Error)
	if ok {
		*target = e
	}
	return ok
}

func TestGoogleBooksRelabelsSoleEditorAsAuthor(t *testing.T) {
	w := baseWork(t)
	w.Contributions = []work.Contribution{
		{ContributionType: work.ContributionEditor, MainContribution: true, ContributionOrdinal: 1, FullName: "Jane Editor"},
	}
	w = withEPUB(w, "https://books.google.com/1")

	gen := GoogleBooks("OA Editions", "[email protected]")
	gen.Now = fixedNow

	out, err := gen.Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "A01") {
		t.Errorf("expected re-labelled ContributorRole A01, got:\n%s", doc)
	}
	if strings.Contains(doc, "B01") {
		t.Errorf("did not expect original Editor role B01 to survive")
	}
}

func TestGoogleBooksVariantReportsNoPriceWithoutGBP(t *testing.T) {
	w := withEPUB(baseWork(t), "https://books.google.com/1")
	w.Publications[0].Prices = []work.Price{{Currency: work.CurrencyUSD, Amount: 19.99}}
	w.Publications[0].Locations[0].FullTextURL = "https://books.google.com/1/read"

	out, err := GoogleBooks("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if strings.Contains(doc, "19.99") {
		t.Errorf("a non-GBP price must not appear, got:\n%s", doc)
	}
	if !strings.Contains(doc, "UnpricedItemType") {
		t.Errorf("expected UnpricedItemType marker")
	}
}

func TestGoogleBooksVariantReportsCanonicalGBPPrice(t *testing.T) {
	w := withEPUB(baseWork(t), "https://books.google.com/1")
	w.Publications[0].Prices = []work.Price{
		{Currency: work.CurrencyUSD, Amount: 19.99},
		{Currency: work.CurrencyGBP, Amount: 14.99},
	}
	w.Publications[0].Locations[0].FullTextURL = "https://books.google.com/1/read"

	out, err := GoogleBooks("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "<CurrencyCode>GBP</CurrencyCode>") {
		t.Errorf("expected canonical GBP price, got:\n%s", doc)
	}
}

func TestGoogleBooksRejectsMissingSubject(t *testing.T) {
	w := withEPUB(baseWork(t), "https://books.google.com/1")
	w.Subjects = nil
	_, err := GoogleBooks("OA Editions", "[email protected]").Generate([]*work.Work{w})
	var expErr *exporterrors.Error
	if !asExportError(err, &expErr) || expErr.Kind != exporterrors.KindIncompleteMetadataRecord {
		t.Fatalf("expected IncompleteMetadataRecord, got %v", err)
	}
}

func TestGoogleBooksRejectsMissingContributor(t *testing.T) {
	w := withEPUB(baseWork(t), "https://books.google.com/1")
	w.Contributions = nil
	_, err := GoogleBooks("OA Editions", "[email protected]").Generate([]*work.Work{w})
	var expErr *exporterrors.Error
	if !asExportError(err, &expErr) || expErr.Kind != exporterrors.KindIncompleteMetadataRecord {
		t.Fatalf("expected IncompleteMetadataRecord, got %v", err)
	}
}

func TestGoogleBooksSkipsTHEMASubjectAndDisallowedContributors(t *testing.T) {
	w := withEPUB(baseWork(t), "https://books.google.com/1")
	w.Subjects = append(w.Subjects, work.Subject{SubjectType: work.SubjectTHEMA, SubjectCode: "FBA"})
	w.Contributions = append(w.Contributions, work.Contribution{
		ContributionType: work.ContributionIndexer, MainContribution: true, ContributionOrdinal: 2, FullName: "An Indexer",
	})

	out, err := GoogleBooks("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if strings.Contains(doc, "FBA") {
		t.Errorf("expected THEMA subject to be skipped, got:\n%s", doc)
	}
	if strings.Contains(doc, "An Indexer") {
		t.Errorf("expected Indexer contributor to be skipped, got:\n%s", doc)
	}
}

func TestGoogleBooksFallsBackToPDF(t *testing.T) {
	w := baseWork(t)
	w = withPDFLanding(w, "https://books.google.com/1")
	out, err := GoogleBooks("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "E107") {
		t.Errorf("expected PDF fallback ProductFormDetail E107")
	}
}

func TestMultiWorkModeSkipsBookChapters(t *testing.T) {
	monograph := withPDFLanding(baseWork(t), "https://www.jstor.org/stable/1")
	chapter, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000002",
		WorkType:        work.WorkTypeBookChapter,
		Status:          work.StatusActive,
		Title:           "A Chapter",
		PublicationDate: identifier.NewTimestampFromDate(2020, 6, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	chapter = withPDFLanding(chapter, "https://www.jstor.org/stable/2")

	out, err := JSTOR("OA Editions", "[email protected]").Generate([]*work.Work{monograph, chapter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if strings.Count(doc, "<Product>") != 1 {
		t.Errorf("expected exactly one Product (chapter skipped), got:\n%s", doc)
	}
}
