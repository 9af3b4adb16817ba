package bench

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configures one benchmark sweep.
type Options struct {
	// Sizes lists the per-side vertex counts, benchmarked in order.
	Sizes []int
	// P is the edge probability passed to the generator, in [0,1].
	P float64
	// Seed, when set, is re-applied for every size so each graph is
	// reproducible on its own. When nil one RNG seeded from the clock is
	// shared across the whole sweep.
	Seed *int64
	// Directed generates directed graphs (two independent passes).
	Directed bool
	// Logger receives progress; nil disables logging.
	Logger *zap.Logger
}

// Record is one timing: algorithm Algorithm on a graph with Size vertices per
// side took Elapsed and found a matching of size Matched.
type Record struct {
	Size      int
	Algorithm string
	Elapsed   time.Duration
	Matched   int
}

// Result is the outcome of Run.
type Result struct {
	RunID      uuid.UUID
	Sizes      []int
	Algorithms []string
	Records    []Record
}

// Durations returns the timings of one algorithm ordered like Sizes.
// Sizes not reached (partial sweep) are absent.
func (r *Result) Durations(algorithm string) []time.Duration {
	var out []time.Duration
	for _, rec := range r.Records {
		if rec.Algorithm == algorithm {
			out = append(out, rec.Elapsed)
		}
	}
	return out
}
