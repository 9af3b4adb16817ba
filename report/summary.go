package report

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bimatch/bench"
)

// Summary condenses the timings of one algorithm.
type Summary struct {
	Algorithm string
	Runs      int
	Mean      time.Duration
	StdDev    time.Duration
	Min, Max  time.Duration
	// Exponent is k in t ≈ c·size^k, fitted by least squares on
	// (ln size, ln seconds). NaN when fewer than two distinct sizes have a
	// positive timing.
	Exponent float64
}

// Summarize returns one Summary per algorithm, in res.Algorithms order.
// Algorithms without records get Runs == 0 and a NaN exponent.
func Summarize(res *bench.Result) ([]Summary, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	out := make([]Summary, 0, len(res.Algorithms))
	for _, name := range res.Algorithms {
		var secs, logSize, logSecs []float64
		s := Summary{Algorithm: name, Exponent: math.NaN()}
		for _, rec := range res.Records {
			if rec.Algorithm != name {
				continue
			}
			if s.Runs == 0 || rec.Elapsed < s.Min {
				s.Min = rec.Elapsed
			}
			if rec.Elapsed > s.Max {
				s.Max = rec.Elapsed
			}
			s.Runs++
			secs = append(secs, rec.Elapsed.Seconds())
			if rec.Elapsed > 0 {
				logSize = append(logSize, math.Log(float64(rec.Size)))
				logSecs = append(logSecs, math.Log(rec.Elapsed.Seconds()))
			}
		}

		switch s.Runs {
		case 0:
		case 1:
			s.Mean = s.Min
		default:
			mean, std := stat.MeanStdDev(secs, nil)
			s.Mean = seconds(mean)
			s.StdDev = seconds(std)
		}
		if distinct(logSize) >= 2 {
			_, beta := stat.LinearRegression(logSize, logSecs, nil, false)
			s.Exponent = beta
		}
		out = append(out, s)
	}
	return out, nil
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// distinct counts distinct values, enough to tell a fit is well-defined.
func distinct(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}
