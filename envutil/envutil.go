// Package envutil reads typed configuration values from environment
// variables, with per-context overrides for tests.
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type envContextKey string

// WithEnvOverride returns a context in which key reads as value, regardless
// of the process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, envContextKey(key), value)
}

// get returns a Reader for the given key, preferring a context override.
func get(ctx context.Context, key string) Reader[string] {
	if ctx != nil {
		if val, ok := ctx.Value(envContextKey(key)).(string); ok {
			return Reader[string]{key: key, present: true, value: val}
		}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), strconv.ParseBool), opts)
}

// Int returns a Reader that parses the variable as a base-10 int.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(ctx, key), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}), opts)
}

// IntList returns a Reader that parses a comma-separated list of ints,
// e.g. "8, 16,32". Empty items are skipped.
func IntList(ctx context.Context, key string, opts ...Option[[]int]) Reader[[]int] {
	return apply(Map(get(ctx, key), parseIntList), opts)
}

// SlogLevel returns a Reader that parses debug, info, warn or error
// (case-insensitive) into a slog.Level.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), parseSlogLevel), opts)
}

func parseIntList(value string) ([]int, error) {
	var out []int

	for item := range strings.SplitSeq(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	return out, nil
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
