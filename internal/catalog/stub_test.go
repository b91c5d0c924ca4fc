package catalog

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingSleep records requested delays without waiting.
type recordingSleep struct {
	mu    sync.Mutex
	delay []time.Duration
}

func (r *recordingSleep) Sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.delay = append(r.delay, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *recordingSleep) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.delay...)
}

func newTestStub(t *testing.T, rnd func() float64) (*Stub, *recordingSleep) {
	t.Helper()
	rs := &recordingSleep{}
	opts := DefaultStubOptions()
	opts.Log = zaptest.NewLogger(t)
	opts.Sleep = rs.Sleep
	opts.Rand = rnd
	return NewStub(NewStore(), opts), rs
}

func never() float64  { return 0.99 }
func always() float64 { return 0.0 }

func TestStub_GetAll(t *testing.T) {
	s, rs := newTestStub(t, never)

	got, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(got))
	assert.Equal(t, []time.Duration{800 * time.Millisecond}, rs.Delays())
}

func TestStub_GetAll_TransientFailure(t *testing.T) {
	s, _ := newTestStub(t, always)

	got, err := s.GetAll(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrTransientFetch)
	assert.True(t, IsRetryable(err))
}

func TestStub_GetAll_ReturnsDefensiveCopies(t *testing.T) {
	s, _ := newTestStub(t, never)
	ctx := context.Background()

	first, err := s.GetAll(ctx)
	require.NoError(t, err)
	first[0].Name = "tampered"
	first[0].Materials[0] = "tampered"
	first[0].Specifications["tolerance"] = "tampered"

	second, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Precision CNC Machined Parts", second[0].Name)
	assert.Equal(t, "Aluminum", second[0].Materials[0])
	assert.Equal(t, `±0.001"`, second[0].Specifications["tolerance"])
}

func TestStub_GetAll_FailureRateIsRoughlyFivePercent(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	opts := StubOptions{FailureRate: DefaultFailureRate, Rand: r.Float64}
	s := NewStub(NewStore(), opts)

	const trials = 20000
	failures := 0
	for i := 0; i < trials; i++ {
		_, err := s.GetAll(context.Background())
		if err != nil {
			require.ErrorIs(t, err, ErrTransientFetch)
			failures++
		}
	}

	rate := float64(failures) / trials
	assert.InDelta(t, 0.05, rate, 0.01, "observed failure rate %.4f", rate)
}

func TestStub_ZeroFailureRateNeverFails(t *testing.T) {
	s := NewStub(NewStore(), StubOptions{Rand: always})
	for i := 0; i < 100; i++ {
		_, err := s.GetAll(context.Background())
		require.NoError(t, err)
	}
}

func TestStub_GetByID(t *testing.T) {
	s, rs := newTestStub(t, always)

	p, err := s.GetByID(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "Automotive Components", p.Name)
	assert.Equal(t, []time.Duration{400 * time.Millisecond}, rs.Delays())
}

func TestStub_GetByID_NotFound(t *testing.T) {
	s, _ := newTestStub(t, never)

	p, err := s.GetByID(context.Background(), "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, IsRetryable(err))
	assert.Zero(t, p)
}

func TestStub_GetByID_CopyIsDetached(t *testing.T) {
	s, _ := newTestStub(t, never)
	ctx := context.Background()

	p, err := s.GetByID(ctx, "1")
	require.NoError(t, err)
	p.Features[0] = "tampered"

	again, err := s.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "High precision machining", again.Features[0])
}

// listOnlySource hides MemStore.Get so the stub falls back to scanning.
type listOnlySource struct{ Source }

func TestStub_GetByID_ScansWhenSourceHasNoGetter(t *testing.T) {
	s := NewStub(listOnlySource{NewStore()}, StubOptions{})

	p, err := s.GetByID(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, "Precision Tooling", p.Name)

	_, err = s.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStub_GetByCategory(t *testing.T) {
	s, rs := newTestStub(t, always)

	got, err := s.GetByCategory(context.Background(), "Precision")
	require.NoError(t, err, "category reads never inject failures")
	assert.Equal(t, []string{"1", "6"}, ids(got))
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, rs.Delays())
}

func TestStub_GetByCategory_AllBehavesLikeGetAll(t *testing.T) {
	s, rs := newTestStub(t, never)

	got, err := s.GetByCategory(context.Background(), CategoryAll)
	require.NoError(t, err)
	assert.Len(t, got, 6)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 800 * time.Millisecond}, rs.Delays())

	failing, _ := newTestStub(t, always)
	_, err = failing.GetByCategory(context.Background(), CategoryAll)
	assert.ErrorIs(t, err, ErrTransientFetch)
}

func TestStub_Search(t *testing.T) {
	s, rs := newTestStub(t, always)

	got, err := s.Search(context.Background(), "MARINE")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(got))
	assert.Equal(t, []time.Duration{300 * time.Millisecond}, rs.Delays())
}

func TestStub_Search_BlankBehavesLikeGetAll(t *testing.T) {
	for _, term := range []string{"", "   ", "\t"} {
		s, rs := newTestStub(t, never)

		got, err := s.Search(context.Background(), term)
		require.NoError(t, err)
		assert.Len(t, got, 6)
		assert.Equal(t, []time.Duration{300 * time.Millisecond, 800 * time.Millisecond}, rs.Delays())
	}
}

func TestStub_CancelledContext(t *testing.T) {
	s := NewStub(NewStore(), DefaultStubOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.GetByID(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStub_RealSleepHonoursLatency(t *testing.T) {
	opts := StubOptions{Latency: Latency{GetByID: 20 * time.Millisecond}}
	s := NewStub(NewStore(), opts)

	start := time.Now()
	_, err := s.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestStub_ConcurrentReadsAreIndependent(t *testing.T) {
	s := NewStub(NewStore(), StubOptions{})

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ps, err := s.GetAll(context.Background())
			if err != nil {
				errs <- err
				return
			}
			ps[0].Materials[0] = "mine"
			if len(ps) != 6 {
				errs <- errors.New("short read")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}

	p, err := s.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Aluminum", p.Materials[0])
}

func TestStub_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStubMetrics(reg)

	calls := 0
	flaky := func() float64 {
		calls++
		if calls == 1 {
			return 0
		}
		return 1
	}
	s := NewStub(NewStore(), StubOptions{FailureRate: 0.5, Rand: flaky, Metrics: m})
	ctx := context.Background()

	_, _ = s.GetAll(ctx)
	_, _ = s.GetAll(ctx)
	_, _ = s.GetByID(ctx, "missing")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reads.WithLabelValues(opGetAll, outcomeTransient)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reads.WithLabelValues(opGetAll, outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Reads.WithLabelValues(opGetByID, outcomeNotFound)))
}
