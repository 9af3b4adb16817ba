// Package config loads benchmark settings for the bipbench command.
//
// Sources, lowest to highest priority:
//  1. Defaults in code (Default).
//  2. A YAML file (Load / Decode).
//  3. BIPBENCH_* environment variables (ApplyEnv).
//
// Command-line flags are applied by the caller on top of the result; Validate
// runs last.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/bench"
	"github.com/katalvlaran/bimatch/matching"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid benchmark configuration")

// Algorithm identifiers accepted in Benchmark.Algorithms.
const (
	AlgoHopcroftKarp  = "hopcroft-karp"
	AlgoFordFulkerson = "ford-fulkerson"
)

// Benchmark describes one sweep and where to put its report.
type Benchmark struct {
	Sizes      []int    `yaml:"sizes" validate:"required,min=1,dive,gt=0"`
	P          float64  `yaml:"p" validate:"gte=0,lte=1"`
	Seed       *int64   `yaml:"seed"`
	Directed   bool     `yaml:"directed"`
	Algorithms []string `yaml:"algorithms" validate:"required,min=1,dive,oneof=hopcroft-karp ford-fulkerson"`
	LogLevel   string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	Output     Output   `yaml:"output"`
}

// Output names the report files; empty paths are skipped.
type Output struct {
	CSV string `yaml:"csv"`
	SVG string `yaml:"svg"`
}

// Default reproduces the classic comparison: sizes 100..1000 step 100,
// p = 0.5, seed 42, both algorithms.
func Default() *Benchmark {
	seed := int64(42)
	sizes := make([]int, 0, 10)
	for s := 100; s <= 1000; s += 100 {
		sizes = append(sizes, s)
	}
	return &Benchmark{
		Sizes:      sizes,
		P:          0.5,
		Seed:       &seed,
		Algorithms: []string{AlgoHopcroftKarp, AlgoFordFulkerson},
		LogLevel:   "info",
		Output:     Output{SVG: "compare_algorithms.svg"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Benchmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	if err = cfg.Decode(f); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto b. Keys absent from the document keep
// their current values; unknown keys are rejected.
func (b *Benchmark) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(b); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv overlays BIPBENCH_SIZES, BIPBENCH_P, BIPBENCH_SEED,
// BIPBENCH_DIRECTED and BIPBENCH_LOG_LEVEL when set.
func (b *Benchmark) ApplyEnv() error {
	if v, ok := os.LookupEnv("BIPBENCH_SIZES"); ok {
		sizes, err := ParseSizes(v)
		if err != nil {
			return fmt.Errorf("config: BIPBENCH_SIZES: %w", err)
		}
		b.Sizes = sizes
	}
	if v, ok := os.LookupEnv("BIPBENCH_P"); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: BIPBENCH_P: %w", err)
		}
		b.P = p
	}
	if v, ok := os.LookupEnv("BIPBENCH_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: BIPBENCH_SEED: %w", err)
		}
		b.Seed = &seed
	}
	if v, ok := os.LookupEnv("BIPBENCH_DIRECTED"); ok {
		d, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: BIPBENCH_DIRECTED: %w", err)
		}
		b.Directed = d
	}
	if v, ok := os.LookupEnv("BIPBENCH_LOG_LEVEL"); ok {
		b.LogLevel = strings.ToLower(v)
	}
	return nil
}

// ParseSizes parses a comma-separated list such as "100,200,300".
func ParseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// Options converts b into harness options.
func (b *Benchmark) Options() bench.Options {
	return bench.Options{
		Sizes:    append([]int(nil), b.Sizes...),
		P:        b.P,
		Seed:     b.Seed,
		Directed: b.Directed,
	}
}

// Matchers instantiates the configured algorithms in order.
func (b *Benchmark) Matchers() ([]matching.Matcher, error) {
	out := make([]matching.Matcher, 0, len(b.Algorithms))
	for _, name := range b.Algorithms {
		switch name {
		case AlgoHopcroftKarp:
			out = append(out, matching.NewHopcroftKarp())
		case AlgoFordFulkerson:
			out = append(out, matching.NewFordFulkerson())
		default:
			return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, name)
		}
	}
	return out, nil
}
