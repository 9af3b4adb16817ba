package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_WritesReports(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	svgPath := filepath.Join(dir, "out.svg")

	var stdout bytes.Buffer
	err := run(context.Background(), []string{
		"-sizes", "10,20",
		"-p", "0.3",
		"-seed", "5",
		"-csv", csvPath,
		"-svg", svgPath,
		"-log-level", "error",
	}, &stdout)
	require.NoError(t, err)

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	// header plus 2 sizes × 2 algorithms
	require.Len(t, strings.Split(strings.TrimSpace(string(csvData)), "\n"), 5)

	svgData, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	require.Contains(t, string(svgData), "Running Time")

	require.Contains(t, stdout.String(), "Hopcroft Karp")
	require.Contains(t, stdout.String(), "Ford Fulkerson")
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bench.yaml")
	csvPath := filepath.Join(dir, "table.csv")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
sizes: [8]
p: 0.5
algorithms: [hopcroft-karp]
log_level: error
output:
  svg: ""
`), 0o600))

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-config", cfgPath, "-csv", csvPath, "-directed"}, &stdout)
	require.NoError(t, err)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "Hopcroft Karp")
	require.NotContains(t, stdout.String(), "Ford Fulkerson")
}

func TestRun_InvalidInput(t *testing.T) {
	var stdout bytes.Buffer
	ctx := context.Background()

	require.Error(t, run(ctx, []string{"-p", "2"}, &stdout))
	require.Error(t, run(ctx, []string{"-sizes", "10,abc"}, &stdout))
	require.Error(t, run(ctx, []string{"-sizes", "0"}, &stdout))
	require.Error(t, run(ctx, []string{"-log-level", "loud"}, &stdout))
	require.Error(t, run(ctx, []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &stdout))
	require.Error(t, run(ctx, []string{"stray"}, &stdout))
}

func TestRun_Help(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-h"}, &stdout)
	require.True(t, errors.Is(err, flag.ErrHelp))
	require.Contains(t, stdout.String(), "Usage: bipbench")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	err := run(ctx, []string{"-sizes", "10", "-log-level", "error", "-svg", ""}, &stdout)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
