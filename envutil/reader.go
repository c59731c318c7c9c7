//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a value read from an environment variable. It carries whether the
// variable was set and any error raised while parsing it, so defaults and
// transformations can be chained before the value is finally extracted.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Value returns the value of the environment variable, or an error if the value
// is missing or if there was an error parsing it.
func (e Reader[A]) Value() (A, error) {
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrElse returns the value of the environment variable, or v if the value
// is missing or could not be parsed. Parse errors are logged.
func (e Reader[A]) ValueOrElse(v A) A {
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// HasValue returns true if the environment variable was set and parsed.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// WithDefault returns a Reader holding v if the original Reader has no value.
// A parse error is kept as is.
func (e Reader[A]) WithDefault(v A) Reader[A] {
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{
		key:     e.key,
		present: true,
		value:   v,
	}
}

// String returns a string representation of the Reader.
func (e Reader[A]) String() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	case e.present:
		return fmt.Sprintf("%s=%v", e.key, e.value)
	default:
		return e.key + "=<not set>"
	}
}

// Map returns a new Reader with the value transformed by the given function.
// Missing values and earlier errors pass through untouched.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{
			key:     env.key,
			present: env.present,
			err:     env.err,
		}
	}

	val, err := f(env.value)

	return Reader[B]{
		key:     env.key,
		present: true,
		err:     err,
		value:   val,
	}
}
