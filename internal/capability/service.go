package capability

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

type Latency struct {
	GetAll        time.Duration
	GetByID       time.Duration
	GetFeatured   time.Duration
	GetByCategory time.Duration
}

func DefaultLatency() Latency {
	return Latency{
		GetAll:        500 * time.Millisecond,
		GetByID:       300 * time.Millisecond,
		GetFeatured:   400 * time.Millisecond,
		GetByCategory: 350 * time.Millisecond,
	}
}

// Service is a read-only capability catalog with simulated API latency.
type Service struct {
	items   []Capability
	latency Latency
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewService(items []Capability, latency Latency) *Service {
	return &Service{items: slices.Clone(items), latency: latency, sleep: sleep}
}

func (s *Service) GetAll(ctx context.Context) ([]Capability, error) {
	if err := s.sleep(ctx, s.latency.GetAll); err != nil {
		return nil, err
	}
	return slices.Clone(s.items), nil
}

// GetByID accepts the id as it arrives in a URL; a non-numeric id is never found.
func (s *Service) GetByID(ctx context.Context, id string) (Capability, error) {
	if err := s.sleep(ctx, s.latency.GetByID); err != nil {
		return Capability{}, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err == nil {
		for _, c := range s.items {
			if c.ID == n {
				return c, nil
			}
		}
	}
	return Capability{}, fmt.Errorf("%w: id=%s", ErrNotFound, id)
}

func (s *Service) GetFeatured(ctx context.Context) ([]Capability, error) {
	if err := s.sleep(ctx, s.latency.GetFeatured); err != nil {
		return nil, err
	}
	return s.filter(func(c Capability) bool { return c.Featured }), nil
}

func (s *Service) GetByCategory(ctx context.Context, category string) ([]Capability, error) {
	if err := s.sleep(ctx, s.latency.GetByCategory); err != nil {
		return nil, err
	}
	return s.filter(func(c Capability) bool { return strings.EqualFold(c.Category, category) }), nil
}

func (s *Service) filter(keep func(Capability) bool) []Capability {
	out := make([]Capability, 0, len(s.items))
	for _, c := range s.items {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
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
