package strbuf

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRegistry returns a registry released when the test ends.
func newTestRegistry(t testing.TB, opts *Options) *Registry {
	t.Helper()
	r := NewRegistry(opts)
	t.Cleanup(func() { r.ReleaseAll() })
	return r
}

// mustFrom creates a buffer holding s or fails the test.
func mustFrom(t testing.TB, r *Registry, s string) *Buffer {
	t.Helper()
	b, err := r.From(s)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

// requireInvariants checks the size/capacity/terminator contract.
func requireInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	require.True(t, b.Valid(), "buffer should be valid")
	require.LessOrEqual(t, b.Len(), b.Cap())
	require.Len(t, b.value, b.Cap(), "storage should be exactly Cap() bytes")
	if b.size < b.reserved {
		require.Zero(t, b.value[b.size], "byte after content should be the terminator")
	}
}

// captureLogs routes the package logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, nil)))
	t.Cleanup(func() { SetLogger(nil) })
	return &out
}
