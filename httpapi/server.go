// Package httpapi is the thin REST surface (C6) over the export core:
// list/read the registry's catalogue, and request a generated record for
// a Work or a publisher's Works in one specification, routed through the
// export cache. Built on go-chi/chi, the teacher's own router choice.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oabooks/exportcore/cache"
	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/generate"
	"github.com/oabooks/exportcore/registry"
	"github.com/oabooks/exportcore/store"
	"github.com/oabooks/exportcore/work"
)

// Server wires the registry, generator dispatch, cache, and store into an
// http.Handler.
type Server struct {
	Registry   *registry.Registry
	Generators *generate.Registry
	Cache      cache.Cache
	Store      store.Store
	router     chi.Router
}

func New(reg *registry.Registry, gens *generate.Registry, c cache.Cache, st store.Store) *Server {
	s := &Server{Registry: reg, Generators: gens, Cache: c, Store: st}
	s.router = s.buildRouter()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealthz)

	r.Get("/formats", s.handleListFormats)
	r.Get("/formats/{id}", s.handleGetFormat)
	r.Get("/platforms", s.handleListPlatforms)
	r.Get("/platforms/{id}", s.handleGetPlatform)
	r.Get("/specifications", s.handleListSpecifications)
	r.Get("/specifications/{id}", s.handleGetSpecification)
	r.Get("/specifications/{id}/work/{workID}", s.handleGenerateForWork)
	r.Get("/specifications/{id}/publisher/{publisherID}", s.handleGenerateForPublisher)

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Registry.ListFormats())
}

func (s *Server) handleGetFormat(w http.ResponseWriter, r *http.Request) {
	f, err := s.Registry.FindFormat(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Registry.ListPlatforms())
}

func (s *Server) handleGetPlatform(w http.ResponseWriter, r *http.Request) {
	p, err := s.Registry.FindPlatform(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListSpecifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Registry.ListSpecifications())
}

func (s *Server) handleGetSpecification(w http.ResponseWriter, r *http.Request) {
	spec, err := s.Registry.FindSpecification(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func (s *Server) handleGenerateForWork(w http.ResponseWriter, r *http.Request) {
	specID := chi.URLParam(r, "id")
	workID := chi.URLParam(r, "workID")

	spec, err := s.Registry.FindSpecification(specID)
	if err != nil {
		writeError(w, err)
		return
	}
	gen, ok := s.Generators.Get(specID)
	if !ok {
		writeError(w, exporterrors.InvalidMetadataSpecification(specID))
		return
	}

	wk, lastUpdated, err := s.Store.GetWork(r.Context(), workID)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := s.Cache.LoadOrGenerate(r.Context(), cache.Key{
		SpecificationID:     specID,
		EntityID:            workID,
		UpstreamLastUpdated: lastUpdated,
	}, func(ctx context.Context) ([]byte, error) {
		return gen.Generate([]*work.Work{wk})
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", registry.ContentTypeForFormat(spec.FormatID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleGenerateForPublisher(w http.ResponseWriter, r *http.Request) {
	specID := chi.URLParam(r, "id")
	publisherID := chi.URLParam(r, "publisherID")

	spec, err := s.Registry.FindSpecification(specID)
	if err != nil {
		writeError(w, err)
		return
	}
	gen, ok := s.Generators.Get(specID)
	if !ok {
		writeError(w, exporterrors.InvalidMetadataSpecification(specID))
		return
	}

	works, lastUpdated, err := s.Store.GetWorksByPublisher(r.Context(), publisherID)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := s.Cache.LoadOrGenerate(r.Context(), cache.Key{
		SpecificationID:     specID,
		EntityID:            publisherID,
		UpstreamLastUpdated: lastUpdated,
	}, func(ctx context.Context) ([]byte, error) {
		return gen.Generate(works)
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", registry.ContentTypeForFormat(spec.FormatID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a component error to a status code per §6: 400 for a
// request the caller can fix (invalid/empty identifier or uuid, unknown
// specification, unsupported format, incomplete metadata), 401 for auth
// errors, 404 for an unknown entity, and 500 for everything else, store
// errors included.
func writeError(w http.ResponseWriter, err error) {
	var exportErr *exporterrors.Error
	if !errors.As(err, &exportErr) {
		slog.Error("unhandled error", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	status := http.StatusInternalServerError
	switch exportErr.Kind {
	case exporterrors.KindInvalidIdentifier, exporterrors.KindEmptyIdentifier,
		exporterrors.KindInvalidMetadataSpecification, exporterrors.KindInvalidUUID,
		exporterrors.KindUnsupportedFileFormat, exporterrors.KindIncompleteMetadataRecord:
		status = http.StatusBadRequest
	case exporterrors.KindEntityNotFound:
		status = http.StatusNotFound
	case exporterrors.KindDatabase, exporterrors.KindDatabaseConstraint:
		status = http.StatusInternalServerError
	case exporterrors.KindUnauthorised, exporterrors.KindInvalidToken:
		status = http.StatusUnauthorized
	case exporterrors.KindInternal:
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"error": exportErr.Error(), "kind": string(exportErr.Kind)})
}
