package onix3

import (
	"strings"
	"testing"

	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/work"
)

func TestProjectMUSESkipsKeywordSubjectAndEmitsOAStatementUnconditionally(t *testing.T) {
	w := withPDFLanding(baseWork(t), "https://muse.jhu.edu/book/1")
	w.Subjects = append(w.Subjects, work.Subject{SubjectType: work.SubjectKeyword, SubjectCode: "literary criticism"})
	w.License = ""

	out, err := ProjectMUSE("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if strings.Contains(doc, "literary criticism") {
		t.Errorf("expected Keyword subject to be skipped, got:\n%s", doc)
	}
	if !strings.Contains(doc, "Open access license:") {
		t.Errorf("expected OA statement regardless of License, got:\n%s", doc)
	}
}

func TestProjectMUSERejectsMissingBICOrBISACSubject(t *testing.T) {
	w := withPDFLanding(baseWork(t), "https://muse.jhu.edu/book/1")
	w.Subjects = nil
	_, err := ProjectMUSE("OA Editions", "[email protected]").Generate([]*work.Work{w})
	var expErr *exporterrors.Error
	if !asExportError(err, &expErr) || expErr.Kind != exporterrors.KindIncompleteMetadataRecord {
		t.Fatalf("expected IncompleteMetadataRecord, got %v", err)
	}
}

func TestOAPENEmitsFunderBlock(t *testing.T) {
	w := withPDFLanding(baseWork(t), "https://library.oapen.org/1")
	w.Fundings = []work.Funding{{FunderName: "Research Council"}}

	out, err := OAPEN("OA Editions", "[email protected]").Generate([]*work.Work{w})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "<PublishingRole>16</PublishingRole>") {
		t.Errorf("expected funder Publisher role 16, got:\n%s", doc)
	}
	if !strings.Contains(doc, "Research Council") {
		t.Errorf("expected funder name, got:\n%s", doc)
	}
}
