package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWatchedFiles(t *testing.T) {
	dir := t.TempDir()
	theme := filepath.Join(dir, "theme.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(theme, []byte("{}"), 0o644))

	w, err := New([]string{theme}, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(changed []string) { changes <- changed })
	}()

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(theme, []byte(`{"name": "x"}`), 0o644))

	select {
	case changed := <-changes:
		abs, _ := filepath.Abs(theme)
		assert.Equal(t, []string{abs}, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_CreatedLater(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "midnightdark.hcl")

	w, err := New([]string{config}, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan []string, 4)
	go w.Run(ctx, func(changed []string) { changes <- changed })

	require.NoError(t, os.WriteFile(config, []byte("type = \"dark\"\n"), 0o644))

	select {
	case changed := <-changes:
		require.Len(t, changed, 1)
		assert.Equal(t, "midnightdark.hcl", filepath.Base(changed[0]))
	case <-time.After(5 * time.Second):
		t.Fatal("creation not reported")
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "gone", "theme.json")}, DefaultDebounce)
	assert.Error(t, err)
}
