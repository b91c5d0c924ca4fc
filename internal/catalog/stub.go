package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultFailureRate = 0.05

type Latency struct {
	GetAll        time.Duration
	GetByID       time.Duration
	GetByCategory time.Duration
	Search        time.Duration
}

func DefaultLatency() Latency {
	return Latency{
		GetAll:        800 * time.Millisecond,
		GetByID:       400 * time.Millisecond,
		GetByCategory: 500 * time.Millisecond,
		Search:        300 * time.Millisecond,
	}
}

type StubOptions struct {
	Latency Latency
	// FailureRate is the probability in [0,1] that GetAll fails with ErrTransientFetch.
	FailureRate float64

	Log     *zap.Logger
	Metrics *StubMetrics

	// Rand and Sleep default to math/rand/v2 and a context-aware timer.
	Rand  func() float64
	Sleep func(ctx context.Context, d time.Duration) error
}

func DefaultStubOptions() StubOptions {
	return StubOptions{Latency: DefaultLatency(), FailureRate: DefaultFailureRate}
}

// Stub simulates a remote catalog API over a local Source.
type Stub struct {
	src  Source
	opts StubOptions
}

var _ Reader = (*Stub)(nil)

func NewStub(src Source, opts StubOptions) *Stub {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	if opts.Sleep == nil {
		opts.Sleep = sleep
	}
	return &Stub{src: src, opts: opts}
}

const (
	opGetAll        = "get_all"
	opGetByID       = "get_by_id"
	opGetByCategory = "get_by_category"
	opSearch        = "search"
)

func (s *Stub) GetAll(ctx context.Context) (out []Product, err error) {
	defer s.observe(opGetAll, time.Now(), &err)
	return s.fetchAll(ctx)
}

func (s *Stub) fetchAll(ctx context.Context) ([]Product, error) {
	if err := s.opts.Sleep(ctx, s.opts.Latency.GetAll); err != nil {
		return nil, err
	}
	if s.opts.FailureRate > 0 && s.opts.Rand() < s.opts.FailureRate {
		return nil, ErrTransientFetch
	}
	return s.src.ListProducts(ctx)
}

func (s *Stub) GetByID(ctx context.Context, id string) (p Product, err error) {
	defer s.observe(opGetByID, time.Now(), &err)

	if err := s.opts.Sleep(ctx, s.opts.Latency.GetByID); err != nil {
		return Product{}, err
	}

	if g, ok := s.src.(interface {
		Get(ctx context.Context, id string) (Product, bool, error)
	}); ok {
		p, found, err := g.Get(ctx, id)
		if err != nil {
			return Product{}, err
		}
		if !found {
			return Product{}, fmt.Errorf("%w: id=%s", ErrNotFound, id)
		}
		return p, nil
	}

	all, err := s.src.ListProducts(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: id=%s", ErrNotFound, id)
}

// GetByCategory returns the products in category. CategoryAll behaves exactly like
// GetAll, including its latency and failure injection.
func (s *Stub) GetByCategory(ctx context.Context, category Category) (out []Product, err error) {
	defer s.observe(opGetByCategory, time.Now(), &err)

	if err := s.opts.Sleep(ctx, s.opts.Latency.GetByCategory); err != nil {
		return nil, err
	}
	if category.IsAll() {
		return s.fetchAll(ctx)
	}

	all, err := s.src.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out = make([]Product, 0, len(all))
	for _, p := range all {
		if inCategory(p, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search returns products whose name, description, materials or applications contain
// term. A blank term behaves exactly like GetAll.
func (s *Stub) Search(ctx context.Context, term string) (out []Product, err error) {
	defer s.observe(opSearch, time.Now(), &err)

	if err := s.opts.Sleep(ctx, s.opts.Latency.Search); err != nil {
		return nil, err
	}
	if strings.TrimSpace(term) == "" {
		return s.fetchAll(ctx)
	}

	all, err := s.src.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	match := newTermMatcher(term)
	out = make([]Product, 0, len(all))
	for _, p := range all {
		if match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Stub) observe(op string, start time.Time, errp *error) {
	err := *errp
	s.opts.Metrics.observe(op, start, err)
	if err != nil {
		s.opts.Log.Warn("catalog read failed",
			zap.String("op", op),
			zap.Bool("retryable", IsRetryable(err)),
			zap.Error(err),
		)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
