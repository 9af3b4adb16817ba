// Package report turns a bench.Result into persisted artifacts:
//
//   - WriteCSV   : one row per timing (run id, size, algorithm, nanoseconds, matched).
//   - RenderSVG  : a "Running Time" line chart, #Vertex on x, Time on y,
//     one polyline per algorithm plus a legend.
//   - Summarize  : per-algorithm mean, standard deviation and the empirical
//     growth exponent k of t ≈ c·size^k (log-log least squares).
package report
