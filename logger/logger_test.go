package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/assoc/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastJSONLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &out))

	return out
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	entry := lastJSONLine(t, &buf)
	assert.Equal(t, "default subsystem", entry["msg"])
	assert.Equal(t, "test", entry["subsystem"])

	ctx := WithSubsystem(t.Context(), "overridden")
	Get(ctx).Info("overridden subsystem")

	entry = lastJSONLine(t, &buf)
	assert.Equal(t, "overridden", entry["subsystem"])

	ctx = With(ctx, "size", 8)
	ctx = With(ctx, "structure", "assoc")
	Get(ctx).Info("with values")

	entry = lastJSONLine(t, &buf)
	assert.Equal(t, "overridden", entry["subsystem"])
	assert.InDelta(t, 8, entry["size"], 0)
	assert.Equal(t, "assoc", entry["structure"])

	Get(nil, ctx).Info("first non-nil context") //nolint:staticcheck

	entry = lastJSONLine(t, &buf)
	assert.Equal(t, "assoc", entry["structure"])
}

func TestWith_SiblingsDoNotShareValues(t *testing.T) { //nolint:paralleltest
	parent := With(t.Context(), "a", 1)
	left := With(parent, "b", 2)
	right := With(parent, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	assert.Equal(t, parent, With(parent))
}

func TestMinLevel(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		MinLevel:  slog.LevelWarn,
		Output:    &buf,
	})

	Get().Info("dropped")
	assert.Empty(t, buf.String())

	Get().Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	log.Println("legacy line")

	entry := lastJSONLine(t, &buf)
	assert.Equal(t, "legacy line", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest
	t.Run("from environment", func(t *testing.T) {
		ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
		ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "debug")
		ctx = envutil.WithEnvOverride(ctx, "LOG_OUTPUT", "stderr")

		l, err := ConfigureLogging(ctx, "assocbench")
		require.NoError(t, err)
		assert.True(t, l.Enabled(ctx, slog.LevelDebug))
		assert.Equal(t, "assocbench", GetSubsystem(t.Context()))
	})

	t.Run("bad output", func(t *testing.T) {
		ctx := envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "syslog")

		_, err := ConfigureLogging(ctx, "assocbench")
		require.ErrorIs(t, err, ErrInvalidLogOutput)
	})

	t.Run("bad level", func(t *testing.T) {
		ctx := envutil.WithEnvOverride(t.Context(), "LOG_LEVEL", "chatty")

		_, err := ConfigureLogging(ctx, "assocbench")
		require.ErrorIs(t, err, envutil.ErrInvalidLogLevel)
	})
}
