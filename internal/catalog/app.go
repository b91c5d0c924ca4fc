package catalog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"PrecisionWorks/pkg/kit"
)

type Server struct {
	Reader Reader
	Store  Source
	Log    *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)

	r.Get("/products", s.list)
	r.Get("/products/view", s.view)
	r.Get("/products/search", s.search)
	r.Get("/products/category/{category}", s.byCategory)
	r.Get("/products/{id}", s.get)

	return r
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Reader.GetAll(r.Context())
	if err != nil {
		s.writeReadError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := ViewStateFromParams(q.Get("q"), q.Get("category"), q.Get("sort"))

	products, err := s.Reader.GetAll(r.Context())
	if err != nil {
		s.writeReadError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, state.Render(products))
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	products, err := s.Reader.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeReadError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) byCategory(w http.ResponseWriter, r *http.Request) {
	c := Category(chi.URLParam(r, "category"))

	products, err := s.Reader.GetByCategory(r.Context(), c)
	if err != nil {
		s.writeReadError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.Reader.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
			return
		}
		s.writeReadError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) writeReadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", nil)
	case IsRetryable(err):
		kit.WriteRetryableError(w, r, "Failed to load products. Please try again.")
	case errors.Is(err, context.Canceled):
		// client went away
	default:
		if s.Log != nil {
			s.Log.Error("catalog read failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
