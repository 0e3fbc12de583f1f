package watch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ValidatesOnStartAndChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte("# Changelog\n"), 0o644))

	runs := make(chan struct{}, 16)
	w := New(path, func() bool {
		runs <- struct{}{}
		return true
	}, io.Discard, WithDebounce(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	// Initial pass runs immediately.
	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		t.Fatal("initial validation never ran")
	}

	// A write triggers a re-validation after the debounce period.
	require.NoError(t, os.WriteFile(path, []byte("# Changelog\nchanged\n"), 0o644))

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("change did not trigger re-validation")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatcher_UnrelatedFilesIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte("# Changelog\n"), 0o644))

	runs := make(chan struct{}, 16)
	w := New(path, func() bool {
		runs <- struct{}{}
		return true
	}, io.Discard, WithDebounce(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	<-runs // initial pass

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0o644))

	select {
	case <-runs:
		t.Fatal("unrelated file change triggered validation")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	t.Parallel()

	w := New(filepath.Join(t.TempDir(), "nope", "CHANGELOG.md"), func() bool { return true }, io.Discard)
	err := w.Run(context.Background())
	assert.Error(t, err)
}
