// Command assocbench compares association lists with the built-in map on an
// insert-if-absent workload and prints a report.
//
// Configuration comes from the environment:
//
//	ASSOC_BENCH_SIZES   comma-separated key counts (default 8,16,32,64,128)
//	ASSOC_BENCH_ROUNDS  repetitions per structure and size (default 1000)
//	ASSOC_BENCH_FORMAT  text, json or yaml (default text)
//	LOG_JSON, LOG_LEVEL, LOG_OUTPUT  see the logger package
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/amp-labs/assoc/bench"
	"github.com/amp-labs/assoc/envutil"
	"github.com/amp-labs/assoc/logger"
)

const appName = "assocbench"

func main() {
	os.Exit(run(context.Background(), os.Stdout))
}

// run executes the benchmark and returns the process exit code.
func run(parent context.Context, stdout io.Writer) int {
	// Catch Ctrl+C and stop between rounds.
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)

	defer stop()

	if _, err := logger.ConfigureLogging(ctx, appName); err != nil {
		logger.Get(ctx).Error("error configuring logging", "error", err)

		return 1
	}

	log := logger.Get(ctx)

	cfg, format, err := loadConfig(ctx)
	if err != nil {
		log.Error("error reading configuration", "error", err)

		return 1
	}

	log.Info("running benchmark", "sizes", cfg.Sizes, "rounds", cfg.Rounds, "format", format)

	results, err := bench.Run(ctx, cfg)
	if err != nil {
		log.Error("error running benchmark", "error", err)

		return 1
	}

	if err := bench.Write(stdout, format, results); err != nil {
		log.Error("error writing report", "error", err)

		return 1
	}

	return 0
}

func loadConfig(ctx context.Context) (bench.Config, string, error) {
	sizes, err := envutil.IntList(ctx, "ASSOC_BENCH_SIZES",
		envutil.Default([]int{8, 16, 32, 64, 128})).Value()
	if err != nil {
		return bench.Config{}, "", err
	}

	rounds, err := envutil.Int(ctx, "ASSOC_BENCH_ROUNDS", envutil.Default(1000)).Value()
	if err != nil {
		return bench.Config{}, "", err
	}

	format, err := envutil.String(ctx, "ASSOC_BENCH_FORMAT",
		envutil.Default(bench.FormatText), envutil.Validate(bench.CheckFormat)).Value()
	if err != nil {
		return bench.Config{}, "", err
	}

	cfg := bench.Config{
		Sizes:  sizes,
		Rounds: rounds,
		Logger: logger.Get(logger.With(ctx, "component", "bench")),
	}

	if err := cfg.Validate(); err != nil {
		return bench.Config{}, "", err
	}

	return cfg, format, nil
}
