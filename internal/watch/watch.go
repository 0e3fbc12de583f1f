// Package watch re-runs changelog validation whenever the file changes.
// It uses fsnotify for efficient file change detection.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Validator runs one validation pass and reports whether it passed.
type Validator func() bool

// Watcher re-validates a changelog file whenever it is written.
type Watcher struct {
	path     string
	validate Validator
	out      io.Writer
	debounce time.Duration
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period between a change event and the
// re-validation it triggers.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a Watcher for path. Each change triggers validate; progress
// and error lines go to out.
func New(path string, validate Validator, out io.Writer, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		validate: validate,
		out:      out,
		debounce: 200 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run validates once immediately, then blocks re-validating on each change
// until the context is cancelled. Editors typically replace files on save,
// so the parent directory is watched and events filtered by name.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	w.validate()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.out, "watch error: %v\n", err)
		case <-timer.C:
			fmt.Fprintln(w.out)
			w.validate()
		}
	}
}
