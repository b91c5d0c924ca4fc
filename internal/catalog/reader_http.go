package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPReader reads the catalog from a remote catalog service.
type HTTPReader struct {
	BaseURL string
	Client  *http.Client
}

var _ Reader = (*HTTPReader)(nil)

func NewHTTPReader(baseURL string) *HTTPReader {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &HTTPReader{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *HTTPReader) GetAll(ctx context.Context) ([]Product, error) {
	var out []Product
	err := c.get(ctx, "/products", nil, &out)
	return out, err
}

func (c *HTTPReader) GetByID(ctx context.Context, id string) (Product, error) {
	var p Product
	if err := c.get(ctx, "/products/"+url.PathEscape(id), nil, &p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Product{}, fmt.Errorf("%w: id=%s", ErrNotFound, id)
		}
		return Product{}, err
	}
	return p, nil
}

func (c *HTTPReader) GetByCategory(ctx context.Context, category Category) ([]Product, error) {
	var out []Product
	err := c.get(ctx, "/products/category/"+url.PathEscape(string(category)), nil, &out)
	return out, err
}

func (c *HTTPReader) Search(ctx context.Context, term string) ([]Product, error) {
	var out []Product
	err := c.get(ctx, "/products/search", url.Values{"q": {term}}, &out)
	return out, err
}

func (c *HTTPReader) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		// Timeouts and refused connections are worth a retry.
		return fmt.Errorf("%w: %v", ErrTransientFetch, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case http.StatusServiceUnavailable, http.StatusTooManyRequests, http.StatusGatewayTimeout:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrTransientFetch, resp.StatusCode)
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return nil
}
