package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitModule(t *testing.T) {
	tests := []struct {
		name       string
		parent     string
		args       []any
		wantModule string
		wantRest   []any
	}{
		{"no module", "", []any{"k", "v"}, "", []any{"k", "v"}},
		{"first module", "", []any{"module", "server"}, "server", []any{}},
		{"nested module", "server", []any{"module", "grpc", "k", 1}, "server.grpc", []any{"k", 1}},
		{"empty name ignored", "server", []any{"module", ""}, "server", []any{}},
		{"dangling key kept", "", []any{"k", "v", "odd"}, "", []any{"k", "v", "odd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module, rest := splitModule(tt.parent, tt.args)
			assert.Equal(t, tt.wantModule, module)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestContextWith_Accumulates(t *testing.T) {
	ctx := ContextWith(context.Background(), "method", "/Journal/Save")
	ctx = ContextWith(ctx, "user_id", "u-1")
	assert.Equal(t, []any{"method", "/Journal/Save", "user_id", "u-1"}, contextFields(ctx))

	same := ContextWith(ctx)
	assert.Equal(t, ctx, same)
	assert.Nil(t, contextFields(context.Background()))
}

func TestBackends_ModuleAndContextFields(t *testing.T) {
	for _, backend := range []string{BackendSlog, BackendZerolog} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			root, err := New(backend, &buf)
			require.NoError(t, err)

			log := root.With("module", "server").With("module", "reflections", "component", "store")
			ctx := ContextWith(context.Background(), "user_id", "u-7")
			log.Info(ctx, "saved", "week", "2024-01-07")

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "server.reflections", lines[0]["module"])
			assert.Equal(t, "store", lines[0]["component"])
			assert.Equal(t, "u-7", lines[0]["user_id"])
			assert.Equal(t, "2024-01-07", lines[0]["week"])
		})
	}
}

func TestBackends_ParentUnchangedByChild(t *testing.T) {
	for _, backend := range []string{BackendSlog, BackendZerolog} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			root, err := New(backend, &buf)
			require.NoError(t, err)

			parent := root.With("module", "client")
			_ = parent.With("module", "cli")
			parent.Warn(context.Background(), "offline")

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "client", lines[0]["module"])
		})
	}
}
