// Package bench times maximum-matching algorithms on random bipartite
// graphs of increasing size.
//
// For every size s of a sweep the harness
//
//  1. generates a random bipartite graph with s vertices on each side
//     (builder.Generate, edge probability p, optional seed),
//  2. projects it to an adjacency keyed by side A (core.Project),
//  3. times each matching.Matcher on that adjacency, in the order given.
//
// Only the MaximumMatching call is inside the timed interval; generation and
// projection are excluded. Every timing becomes a Record; Run collects them
// into a Result stamped with a random run id.
//
// The sweep is strictly sequential. The first collaborator error aborts it and
// the partial Result is returned together with the error.
package bench
