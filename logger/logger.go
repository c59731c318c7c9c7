// Package logger configures slog for the assoc tools and hands out loggers
// that carry a subsystem name and values stored in the context.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/assoc/envutil"
)

// Default subsystem name, set by ConfigureLoggingWithOptions.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes ConfigureLoggingWithOptions, which swaps global state.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application and
// returns the new default logger. The standard library's log package is
// redirected into the same handler at info level.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(handler, slog.LevelInfo).Writer())

	subsystem.Store(opts.Subsystem)

	return logger
}

// ConfigureLogging configures logging from the environment:
//
//	LOG_JSON    true for JSON output (default false)
//	LOG_LEVEL   debug, info, warn or error (default info)
//	LOG_OUTPUT  stdout or stderr (default stderr)
//
// Logs default to stderr so that command output on stdout stays clean.
func ConfigureLogging(ctx context.Context, app string) (*slog.Logger, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	output, err := envutil.Map(envutil.String(ctx, "LOG_OUTPUT", envutil.Default("stderr")),
		func(outName string) (*os.File, error) {
			switch outName {
			case "stdout":
				return os.Stdout, nil
			case "stderr":
				return os.Stderr, nil
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
			}
		}).Value()
	if err != nil {
		return nil, err
	}

	return ConfigureLoggingWithOptions(Options{
		Subsystem: app,
		JSON:      logJSON,
		MinLevel:  minLevel,
		Output:    output,
	}), nil
}

// WithSubsystem overrides the subsystem name for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), name)
}

// GetSubsystem returns the subsystem from the context, or the default one.
func GetSubsystem(ctx context.Context) string {
	if ctx != nil {
		if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
			return val
		}
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// With returns a new context with the given values added.
// The values are added to loggers obtained from it automatically.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(contextKey("loggerValues")).([]any)

	// Copy so that sibling contexts never share a backing array.
	return append([]any(nil), vals...)
}

// Get returns the default logger decorated with the subsystem and any values
// stored in the first non-nil context.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	logger := slog.Default().With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
