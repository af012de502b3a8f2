package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	want := []struct{ level, msg, key string }{
		{"debug", "dbg", "a"},
		{"info", "inf", "b"},
		{"warn", "wrn", "c"},
		{"error", "err", "d"},
	}
	for i, w := range want {
		assert.Equal(t, w.level, lines[i]["level"])
		assert.Equal(t, w.msg, lines[i]["message"])
		assert.EqualValues(t, i+1, lines[i][w.key])
	}
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("module", "reflections")
	log.Info(context.Background(), "saved", "week", "2024-01-07")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "reflections", lines[0]["module"])
	assert.Equal(t, "2024-01-07", lines[0]["week"])
}

func TestNew(t *testing.T) {
	for _, backend := range []string{"", BackendSlog, BackendZerolog} {
		var buf bytes.Buffer
		log, err := New(backend, &buf)
		require.NoError(t, err, backend)
		log.Info(context.Background(), "hello", "k", "v")

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1, backend)
		assert.Equal(t, "v", lines[0]["k"], backend)
	}

	_, err := New("log4j", &bytes.Buffer{})
	require.Error(t, err)
}
