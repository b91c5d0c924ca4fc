package capability

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"PrecisionWorks/pkg/kit"
)

type Server struct {
	Service *Service
	Log     *zap.Logger
}

// Routes is meant to be mounted at /capabilities.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Get("/category/{category}", s.byCategory)
	r.Get("/{id}", s.get)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	var (
		items []Capability
		err   error
	)

	featured, _ := strconv.ParseBool(r.URL.Query().Get("featured"))
	if featured {
		items, err = s.Service.GetFeatured(r.Context())
	} else {
		items, err = s.Service.GetAll(r.Context())
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) byCategory(w http.ResponseWriter, r *http.Request) {
	items, err := s.Service.GetByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := s.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
			return
		}
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	if s.Log != nil {
		s.Log.Error("capability read failed", zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
