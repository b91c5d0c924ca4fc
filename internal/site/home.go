package site

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"PrecisionWorks/internal/capability"
	"PrecisionWorks/internal/catalog"
	"PrecisionWorks/pkg/kit"
)

// HighlightLimit caps how many products and capabilities the home page shows.
const HighlightLimit = 6

type Home struct {
	Products     []catalog.Product       `json:"products"`
	Capabilities []capability.Capability `json:"capabilities"`
}

type homeHandler struct {
	products     catalog.Reader
	capabilities *capability.Service
	log          *zap.Logger
}

func (h *homeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	home, err := h.load(r.Context())
	if err != nil {
		switch {
		case catalog.IsRetryable(err):
			kit.WriteRetryableError(w, r, "Failed to load home page. Please try again.")
		case errors.Is(err, context.Canceled):
		default:
			if h.log != nil {
				h.log.Error("load home failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		}
		return
	}
	kit.WriteJSON(w, http.StatusOK, home)
}

func (h *homeHandler) load(ctx context.Context) (Home, error) {
	var home Home

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ps, err := h.products.GetAll(ctx)
		if err != nil {
			return err
		}
		home.Products = first(ps, HighlightLimit)
		return nil
	})
	g.Go(func() error {
		cs, err := h.capabilities.GetAll(ctx)
		if err != nil {
			return err
		}
		home.Capabilities = first(cs, HighlightLimit)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Home{}, err
	}
	return home, nil
}

func first[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
