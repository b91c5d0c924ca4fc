package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"PrecisionWorks/pkg/kit"
)

func newTestServer(t *testing.T, opts StubOptions) *Server {
	t.Helper()
	opts.Log = zaptest.NewLogger(t)
	store := NewStore()
	return &Server{Reader: NewStub(store, opts), Store: store, Log: opts.Log}
}

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestServer_Health(t *testing.T) {
	h := newTestServer(t, StubOptions{}).Routes()

	assert.Equal(t, http.StatusOK, do(t, h, "/healthz").Code)
	assert.Equal(t, http.StatusOK, do(t, h, "/readyz").Code)
}

type downSource struct{ Source }

func (downSource) Ping(context.Context) error { return errors.New("db down") }

func TestServer_ReadyzReportsStoreFailure(t *testing.T) {
	s := newTestServer(t, StubOptions{})
	s.Store = downSource{s.Store}

	rr := do(t, s.Routes(), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "not ready", decode[kit.ErrorResponse](t, rr).Error)
}

func TestServer_ListProducts(t *testing.T) {
	rr := do(t, newTestServer(t, StubOptions{}).Routes(), "/products")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(decode[[]Product](t, rr)))
}

func TestServer_TransientFailureIsRetryable(t *testing.T) {
	rr := do(t, newTestServer(t, StubOptions{FailureRate: 1, Rand: always}).Routes(), "/products")

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))

	body := decode[kit.ErrorResponse](t, rr)
	assert.Equal(t, "Failed to load products. Please try again.", body.Error)
	assert.Equal(t, map[string]any{"retryable": true}, body.Details)
}

func TestServer_View(t *testing.T) {
	rr := do(t, newTestServer(t, StubOptions{}).Routes(), "/products/view?q=steel&category=all&sort=name")
	require.Equal(t, http.StatusOK, rr.Code)

	view := decode[View](t, rr)
	assert.Equal(t, []string{"5", "4", "2", "1", "6"}, ids(view.Products))
	assert.Equal(t, 5, view.Shown)
	assert.Equal(t, 6, view.Total)
	assert.Equal(t, []Filter{{Kind: FilterSearch, Label: `Search: "steel"`}}, view.ActiveFilters)
}

func TestServer_View_NoMatch(t *testing.T) {
	rr := do(t, newTestServer(t, StubOptions{}).Routes(), "/products/view?q=unobtainium")
	require.Equal(t, http.StatusOK, rr.Code)

	view := decode[View](t, rr)
	assert.Empty(t, view.Products)
	assert.Equal(t, EmptyNoMatch, view.EmptyReason)
}

func TestServer_Search(t *testing.T) {
	rr := do(t, newTestServer(t, StubOptions{}).Routes(), "/products/search?q=marine")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"2"}, ids(decode[[]Product](t, rr)))
}

func TestServer_ByCategory(t *testing.T) {
	h := newTestServer(t, StubOptions{}).Routes()

	rr := do(t, h, "/products/category/precision")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"1", "6"}, ids(decode[[]Product](t, rr)))

	rr = do(t, h, "/products/category/all")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]Product](t, rr), 6)
}

func TestServer_GetByID(t *testing.T) {
	h := newTestServer(t, StubOptions{}).Routes()

	rr := do(t, h, "/products/3")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Custom Manufacturing Solutions", decode[Product](t, rr).Name)

	rr = do(t, h, "/products/404")
	require.Equal(t, http.StatusNotFound, rr.Code)
	body := decode[kit.ErrorResponse](t, rr)
	assert.Equal(t, "not found", body.Error)
	assert.Equal(t, map[string]any{"id": "404"}, body.Details)
}

type brokenReader struct{ Reader }

func (brokenReader) GetAll(context.Context) ([]Product, error) {
	return nil, errors.New("disk on fire")
}

func TestServer_UnexpectedErrorIs500(t *testing.T) {
	s := newTestServer(t, StubOptions{})
	s.Reader = brokenReader{s.Reader}

	rr := do(t, s.Routes(), "/products")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "server error", decode[kit.ErrorResponse](t, rr).Error)
}
