package bench_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bimatch/bench"
	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/matching"
)

// mockMatcher is a testify double for matching.Matcher.
type mockMatcher struct {
	mock.Mock
}

func (m *mockMatcher) Name() string {
	return m.Called().String(0)
}

func (m *mockMatcher) MaximumMatching(adj core.Adjacency) (matching.Matching, error) {
	args := m.Called(adj)
	if mm, ok := args.Get(0).(matching.Matching); ok {
		return mm, args.Error(1)
	}
	return nil, args.Error(1)
}

func newMock(name string) *mockMatcher {
	m := &mockMatcher{}
	m.On("Name").Return(name)
	return m
}

func seed(v int64) *int64 { return &v }

// adjOfLen matches adjacencies with exactly n keys.
func adjOfLen(n int) interface{} {
	return mock.MatchedBy(func(adj core.Adjacency) bool { return len(adj) == n })
}

func TestRunPair_CallsEachMatcherPerSize(t *testing.T) {
	t.Parallel()

	first, second := newMock("first"), newMock("second")
	for _, m := range []*mockMatcher{first, second} {
		m.On("MaximumMatching", adjOfLen(2)).Return(matching.Matching{}, nil).Once()
		m.On("MaximumMatching", adjOfLen(4)).Return(matching.Matching{}, nil).Once()
	}

	opts := bench.Options{Sizes: []int{2, 4}, P: 1.0, Seed: seed(7)}
	a, b, err := bench.RunPair(context.Background(), opts, first, second)
	require.NoError(t, err)
	require.Len(t, a, 2)
	require.Len(t, b, 2)
	for _, d := range append(a, b...) {
		assert.GreaterOrEqual(t, int64(d), int64(0))
	}

	first.AssertNumberOfCalls(t, "MaximumMatching", 2)
	second.AssertNumberOfCalls(t, "MaximumMatching", 2)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestRun_CompleteGraphAdjacency(t *testing.T) {
	t.Parallel()

	var seen []core.Adjacency
	spy := matching.Func{
		Label: "spy",
		Fn: func(adj core.Adjacency) (matching.Matching, error) {
			seen = append(seen, adj)
			return matching.Matching{}, nil
		},
	}

	_, err := bench.Run(context.Background(), bench.Options{Sizes: []int{2}, P: 1.0}, spy)
	require.NoError(t, err)
	require.Len(t, seen, 1)

	full := map[int]struct{}{2: {}, 3: {}}
	want := core.Adjacency{0: full, 1: full}
	if diff := cmp.Diff(want, seen[0]); diff != "" {
		t.Fatalf("adjacency mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_RealMatchers(t *testing.T) {
	t.Parallel()

	hk, ff := matching.NewHopcroftKarp(), matching.NewFordFulkerson()
	opts := bench.Options{Sizes: []int{10, 40, 80}, P: 0.1, Seed: seed(42)}

	res, err := bench.Run(context.Background(), opts, hk, ff)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, res.RunID)
	require.Equal(t, []string{"Hopcroft Karp", "Ford Fulkerson"}, res.Algorithms)
	require.Equal(t, opts.Sizes, res.Sizes)
	require.Len(t, res.Records, 6)

	for i := 0; i < len(res.Records); i += 2 {
		a, b := res.Records[i], res.Records[i+1]
		require.Equal(t, a.Size, b.Size)
		require.Equal(t, opts.Sizes[i/2], a.Size)
		require.Equal(t, a.Matched, b.Matched, "size %d", a.Size)
	}
	require.Len(t, res.Durations("Hopcroft Karp"), 3)
	require.Len(t, res.Durations("Ford Fulkerson"), 3)
	require.Empty(t, res.Durations("missing"))
}

// TestRun_SeedReappliedPerSize: with a seed, equal sizes give equal graphs.
func TestRun_SeedReappliedPerSize(t *testing.T) {
	t.Parallel()

	var seen []core.Adjacency
	spy := matching.Func{
		Label: "spy",
		Fn: func(adj core.Adjacency) (matching.Matching, error) {
			seen = append(seen, adj)
			return matching.Matching{}, nil
		},
	}

	opts := bench.Options{Sizes: []int{30, 30}, P: 0.2, Seed: seed(9)}
	_, err := bench.Run(context.Background(), opts, spy)
	require.NoError(t, err)
	require.Len(t, seen, 2)
	if diff := cmp.Diff(seen[0], seen[1]); diff != "" {
		t.Fatalf("same seed and size produced different graphs (-first +second):\n%s", diff)
	}
}

func TestRun_MatcherErrorAbortsWithPartialResult(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	first, second := newMock("first"), newMock("second")
	first.On("MaximumMatching", adjOfLen(2)).Return(matching.Matching{}, nil)
	first.On("MaximumMatching", adjOfLen(4)).Return(nil, boom)
	second.On("MaximumMatching", adjOfLen(2)).Return(matching.Matching{}, nil)

	opts := bench.Options{Sizes: []int{2, 4, 8}, P: 0.5, Seed: seed(1)}
	res, err := bench.Run(context.Background(), opts, first, second)
	require.Error(t, err)
	require.True(t, errors.Is(err, boom), "got %v", err)
	require.Contains(t, err.Error(), "first")

	require.NotNil(t, res)
	require.Len(t, res.Records, 2)
	first.AssertNumberOfCalls(t, "MaximumMatching", 2)
	second.AssertNumberOfCalls(t, "MaximumMatching", 1)

	a, b, err := bench.RunPair(context.Background(), opts, first, second)
	require.True(t, errors.Is(err, boom))
	require.Len(t, a, 1)
	require.Len(t, b, 1)
}

func TestRun_Validation(t *testing.T) {
	t.Parallel()

	hk := matching.NewHopcroftKarp()
	ctx := context.Background()

	_, err := bench.Run(ctx, bench.Options{Sizes: []int{10, 0}, P: 0.5}, hk)
	require.True(t, errors.Is(err, bench.ErrInvalidSize), "got %v", err)

	_, err = bench.Run(ctx, bench.Options{Sizes: []int{-3}, P: 0.5}, hk)
	require.True(t, errors.Is(err, bench.ErrInvalidSize), "got %v", err)

	_, err = bench.Run(ctx, bench.Options{Sizes: []int{10}, P: 0.5})
	require.True(t, errors.Is(err, bench.ErrNoMatchers), "got %v", err)

	_, err = bench.Run(ctx, bench.Options{Sizes: []int{10}, P: 0.5}, hk, nil)
	require.True(t, errors.Is(err, bench.ErrNoMatchers), "got %v", err)

	_, _, err = bench.RunPair(ctx, bench.Options{Sizes: []int{10}, P: 0.5}, hk, nil)
	require.True(t, errors.Is(err, bench.ErrNoMatchers), "got %v", err)

	// generator errors surface with the size attached
	_, err = bench.Run(ctx, bench.Options{Sizes: []int{10}, P: 1.5}, hk)
	require.Error(t, err)
	require.Contains(t, err.Error(), "size 10")
}

func TestRun_EmptySweep(t *testing.T) {
	t.Parallel()

	a, b, err := bench.RunPair(context.Background(), bench.Options{P: 0.5},
		matching.NewHopcroftKarp(), matching.NewFordFulkerson())
	require.NoError(t, err)
	require.Empty(t, a)
	require.Empty(t, b)
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := newMock("never")
	res, err := bench.Run(ctx, bench.Options{Sizes: []int{5}, P: 0.5}, m)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
	require.NotNil(t, res)
	require.Empty(t, res.Records)
	m.AssertNotCalled(t, "MaximumMatching", mock.Anything)
}

func TestRun_Logging(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	opts := bench.Options{
		Sizes:  []int{3, 6},
		P:      0.5,
		Seed:   seed(2),
		Logger: zap.New(obs),
	}
	_, err := bench.Run(context.Background(), opts, matching.NewHopcroftKarp())
	require.NoError(t, err)

	require.Equal(t, 2, logs.FilterMessage("Generated graph").Len())
	timed := logs.FilterMessage("Timed matcher").All()
	require.Len(t, timed, 2)
	require.Equal(t, "Hopcroft Karp", timed[0].ContextMap()["algorithm"])
	require.Contains(t, timed[0].ContextMap(), "runID")
}
