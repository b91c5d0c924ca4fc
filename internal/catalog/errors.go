package catalog

import (
	"context"
	"errors"
)

var (
	// ErrTransientFetch is a synthetic network failure. Retrying the same call may succeed.
	ErrTransientFetch = errors.New("network error: unable to fetch products")
	ErrNotFound       = errors.New("product not found")
	ErrUpstream       = errors.New("catalog upstream error")
	ErrDuplicateID    = errors.New("duplicate product id")
)

// IsRetryable reports whether err is worth retrying by re-invoking the same read.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransientFetch) || errors.Is(err, context.DeadlineExceeded)
}
