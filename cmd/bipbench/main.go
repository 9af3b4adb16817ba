// Command bipbench generates random bipartite graphs of increasing size and
// times maximum-matching algorithms on them, writing a CSV table and an SVG
// "Running Time" chart.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bimatch/bench"
	"github.com/katalvlaran/bimatch/config"
	"github.com/katalvlaran/bimatch/report"
)

const helpMessage = `
bipbench times maximum bipartite matching algorithms on random graphs.

Usage: bipbench [options]

  -config    (string)  YAML configuration file
  -sizes     (string)  comma-separated vertices per side, e.g. 100,200,300
  -p         (float)   edge probability in [0,1]
  -seed      (int)     RNG seed, re-applied for every size
  -directed  (flag)    generate directed graphs
  -csv       (string)  CSV output path
  -svg       (string)  SVG chart output path
  -log-level (string)  debug, info, warn or error
  -h, -help  (flag)    show this message

Precedence: flags, then the configuration file, then BIPBENCH_* variables,
then built-in defaults.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "bipbench:", err)
		os.Exit(1)
	}
}

// run parses args, executes the sweep and writes the report. It is main
// without process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bipbench", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { fmt.Fprint(stdout, helpMessage) }

	var (
		configPath = fs.String("config", "", "")
		sizes      = fs.String("sizes", "", "")
		p          = fs.Float64("p", 0, "")
		seed       = fs.Int64("seed", 0, "")
		directed   = fs.Bool("directed", false, "")
		csvPath    = fs.String("csv", "", "")
		svgPath    = fs.String("svg", "", "")
		logLevel   = fs.String("log-level", "", "")
	)
	fs.Bool("h", false, "")
	fs.Bool("help", false, "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		err = cfg.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("config %s: %w", *configPath, err)
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "h", "help":
			flagErr = flag.ErrHelp
		case "sizes":
			s, err := config.ParseSizes(*sizes)
			if err != nil {
				flagErr = fmt.Errorf("-sizes: %w", err)
			}
			cfg.Sizes = s
		case "p":
			cfg.P = *p
		case "seed":
			v := *seed
			cfg.Seed = &v
		case "directed":
			cfg.Directed = *directed
		case "csv":
			cfg.Output.CSV = *csvPath
		case "svg":
			cfg.Output.SVG = *svgPath
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if errors.Is(flagErr, flag.ErrHelp) {
		fs.Usage()
		return flagErr
	}
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	matchers, err := cfg.Matchers()
	if err != nil {
		return err
	}
	opts := cfg.Options()
	opts.Logger = logger

	logger.Info("Starting sweep",
		zap.Ints("sizes", cfg.Sizes),
		zap.Float64("p", cfg.P),
		zap.Bool("directed", cfg.Directed),
		zap.Strings("algorithms", cfg.Algorithms),
	)
	res, runErr := bench.Run(ctx, opts, matchers...)
	if res == nil {
		return runErr
	}

	// A partial sweep is still worth persisting.
	if err = writeReports(res, cfg.Output); err != nil {
		return errors.Join(runErr, err)
	}
	if err = printSummary(stdout, res); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// newLogger builds a production zap logger at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

func writeReports(res *bench.Result, out config.Output) error {
	if out.CSV != "" {
		if err := writeFile(out.CSV, func(w io.Writer) error { return report.WriteCSV(w, res) }); err != nil {
			return err
		}
	}
	if out.SVG != "" && len(res.Records) > 0 {
		if err := writeFile(out.SVG, func(w io.Writer) error {
			return report.RenderSVG(w, res, report.DefaultChart())
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = render(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func printSummary(w io.Writer, res *bench.Result) error {
	sums, err := report.Summarize(res)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\n", res.RunID)
	fmt.Fprintln(tw, "algorithm\truns\tmean\tstddev\tmin\tmax\texponent")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%v\t%v\t%.2f\n",
			s.Algorithm, s.Runs, s.Mean, s.StdDev, s.Min, s.Max, s.Exponent)
	}
	return tw.Flush()
}
