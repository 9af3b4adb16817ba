package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/builder"
	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/matching"
)

// Run benchmarks every matcher on one generated graph per size.
//
// Steps per size s:
//  1. Check ctx; a cancelled context stops the sweep before the next step.
//  2. Generate a random bipartite graph with s vertices on each side.
//  3. Project it with aSize = s.
//  4. For each matcher, time MaximumMatching and append a Record.
//
// Returns ErrInvalidSize or ErrNoMatchers before doing any work. A matcher
// error aborts the sweep; the partial Result is returned with it.
func Run(ctx context.Context, opts Options, matchers ...matching.Matcher) (*Result, error) {
	if err := validate(opts, matchers); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	res := &Result{
		RunID:      uuid.New(),
		Sizes:      append([]int(nil), opts.Sizes...),
		Algorithms: make([]string, len(matchers)),
		Records:    make([]Record, 0, len(opts.Sizes)*len(matchers)),
	}
	for i, m := range matchers {
		res.Algorithms[i] = m.Name()
	}
	log = log.With(zap.String("runID", res.RunID.String()))

	// Without a seed one stream serves the whole sweep.
	var shared *rand.Rand
	if opts.Seed == nil {
		shared = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for _, size := range opts.Sizes {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		var rngOpt builder.BuilderOption
		if opts.Seed != nil {
			rngOpt = builder.WithSeed(*opts.Seed)
		} else {
			rngOpt = builder.WithRand(shared)
		}
		g, err := builder.Generate(size, size, opts.P, opts.Directed, rngOpt)
		if err != nil {
			return res, fmt.Errorf("bench: generate size %d: %w", size, err)
		}
		adj, err := core.Project(g, size)
		if err != nil {
			return res, fmt.Errorf("bench: project size %d: %w", size, err)
		}
		st := g.Stats()
		log.Debug("Generated graph",
			zap.String("name", st.Name),
			zap.Int("size", size),
			zap.Int("edges", st.EdgeCount),
			zap.Float64("density", st.Density),
			zap.Bool("directed", st.Directed),
		)

		for _, m := range matchers {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}

			rec, mErr := measure(m, size, adj)
			if mErr != nil {
				log.Error("Matcher failed",
					zap.Int("size", size),
					zap.String("algorithm", m.Name()),
					zap.Error(mErr),
				)
				return res, mErr
			}
			res.Records = append(res.Records, rec)
			log.Info("Timed matcher",
				zap.Int("size", size),
				zap.String("algorithm", rec.Algorithm),
				zap.Duration("elapsed", rec.Elapsed),
				zap.Int("matched", rec.Matched),
			)
		}
	}

	return res, nil
}

// RunPair is the two-algorithm form of Run: it returns the timings of first
// and second as sequences ordered like opts.Sizes.
func RunPair(ctx context.Context, opts Options, first, second matching.Matcher) ([]time.Duration, []time.Duration, error) {
	if first == nil || second == nil {
		return nil, nil, ErrNoMatchers
	}
	res, err := Run(ctx, opts, first, second)
	if res == nil {
		return nil, nil, err
	}

	// Split by position rather than name so two matchers sharing a name
	// still land in separate sequences.
	a := make([]time.Duration, 0, len(opts.Sizes))
	b := make([]time.Duration, 0, len(opts.Sizes))
	for i, rec := range res.Records {
		if i%2 == 0 {
			a = append(a, rec.Elapsed)
		} else {
			b = append(b, rec.Elapsed)
		}
	}
	return a, b, err
}

// measure times one MaximumMatching call with the monotonic clock.
func measure(m matching.Matcher, size int, adj core.Adjacency) (Record, error) {
	start := time.Now()
	got, err := m.MaximumMatching(adj)
	elapsed := time.Since(start)
	if err != nil {
		return Record{}, fmt.Errorf("bench: %s on size %d: %w", m.Name(), size, err)
	}
	return Record{
		Size:      size,
		Algorithm: m.Name(),
		Elapsed:   elapsed,
		Matched:   got.Size(),
	}, nil
}

func validate(opts Options, matchers []matching.Matcher) error {
	if len(matchers) == 0 {
		return ErrNoMatchers
	}
	for i, m := range matchers {
		if m == nil {
			return fmt.Errorf("%w: matcher %d is nil", ErrNoMatchers, i)
		}
	}
	for _, s := range opts.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSize, s)
		}
	}
	return nil
}
