package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oabooks/exportcore/cache"
	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/generate/kbart"
	"github.com/oabooks/exportcore/identifier"
	"github.com/oabooks/exportcore/registry"
	"github.com/oabooks/exportcore/store"
	"github.com/oabooks/exportcore/work"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	reg, err := registry.LoadEmbedded()
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.Validate(); err != nil {
		t.Fatal(err)
	}

	gens := generate.NewRegistry()
	gens.Register("kbart::oclc", kbart.New())

	c, err := cache.NewMemory(64)
	if err != nil {
		t.Fatal(err)
	}

	st := store.NewMemory()
	w, err := work.New(work.Work{
		WorkID:          "00000000-0000-0000-aaaa-000000000001",
		WorkType:        work.WorkTypeMonograph,
		Status:          work.StatusActive,
		Title:           "Test Book",
		PublicationDate: identifier.NewTimestampFromDate(2020, 1, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	st.Put("pub-1", w, "2020-01-01T00:00:00Z")

	return New(reg, gens, c, st)
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGenerateForWorkSucceeds(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specifications/kbart::oclc/work/00000000-0000-0000-aaaa-000000000001", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Test Book") {
		t.Errorf("expected title in body, got: %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestGenerateForWorkReturns404ForUnknownWork(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specifications/kbart::oclc/work/does-not-exist", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGenerateForWorkReturns400ForUnknownSpecification(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specifications/does-not-exist/work/00000000-0000-0000-aaaa-000000000001", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListSpecificationsReturnsRegistryData(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specifications", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "kbart::oclc") {
		t.Errorf("expected kbart::oclc in specifications list, got: %s", rec.Body.String())
	}
}
