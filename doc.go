// Package bimatch generates random bipartite graphs at scale and benchmarks
// maximum-matching algorithms on them.
//
// 🚀 What is bimatch?
//
//	A small, thread-safe toolkit that brings together:
//		• Core primitives: a two-sided Graph over dense integer ids + adjacency projection
//		• Generators: random G(n, m, p) by geometric skipping, complete and empty K(n,m)
//		• Matching: Hopcroft–Karp and Ford–Fulkerson behind one Matcher interface
//		• Benchmarks: a sequential timing harness with structured logging
//		• Reports: CSV tables, SVG "Running Time" charts, growth-exponent summaries
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        — Graph, partition labels, Edge, Project → Adjacency
//	builder/     — BuildGraph orchestrator, RandomBipartite, Generate, options
//	matching/    — Matcher, Matching, HopcroftKarp, FordFulkerson, Validate
//	bench/       — Run, RunPair, Record, Result
//	report/      — WriteCSV, RenderSVG, Summarize
//	converters/  — gonum export/import
//	config/      — YAML + env configuration with validation
//	cmd/bipbench — the command-line driver
//
// Quick example:
//
//	g, _ := builder.Generate(1000, 1000, 0.01, false, builder.WithSeed(42))
//	adj, _ := core.Project(g, 1000)
//	m, _ := matching.NewHopcroftKarp().MaximumMatching(adj)
//
//	go install github.com/katalvlaran/bimatch/cmd/bipbench@latest
package bimatch
