package catalog

import "context"

// Source yields the product collection in display order.
type Source interface {
	Ping(ctx context.Context) error
	ListProducts(ctx context.Context) ([]Product, error)
}

// Reader is the asynchronous catalog read API consumed by the presentation layer.
// Implementations return copies the caller may freely mutate.
type Reader interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	GetByCategory(ctx context.Context, category Category) ([]Product, error)
	Search(ctx context.Context, term string) ([]Product, error)
}
