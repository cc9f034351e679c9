// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icongen

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

// Hooks used in tests: called when Watch started watching and after each
// regeneration.
var (
	watchReadyHook     func()
	watchGeneratedHook func()
)

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

// newDebouncer creates a new debouncer.
func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Watch generates icons and then regenerates them each time the source
// image changes, until ctx is canceled.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()

	logger.Info(ctx, "performing an initial generation")
	if err := Generate(ctx, c); err != nil {
		logger.Error(ctx, "initial generation failed", slog.Any("err", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the containing directory, not the file itself: most editors
	// replace the file on save, which would invalidate a watch placed
	// directly on it.
	if err := watcher.Add(filepath.Dir(c.Src)); err != nil {
		return err
	}

	regenerate := func() {
		logger.Info(ctx, "source image changed, regenerating")
		if err := Generate(ctx, c); err != nil {
			logger.Error(ctx, "failed to regenerate icons", slog.Any("err", err))
		}
		if watchGeneratedHook != nil {
			watchGeneratedHook()
		}
	}
	// It's better to have a bit of delay, so that we don't regenerate
	// while the source file is still being written.
	debouncer := newDebouncer(250*time.Millisecond, regenerate)

	logger.Info(ctx, "started watching for changes", slog.String("path", c.Src))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case event := <-watcher.Events:
			if !shouldRegenerate(c.Src, event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling generation",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err := <-watcher.Errors:
			return err
		case <-ctx.Done():
			logger.Info(ctx, "gracefully shutting down")
			return nil
		}
	}
}

func shouldRegenerate(src, path string, op fsnotify.Op) bool {
	base := filepath.Base(path)

	// A special case, but ignore events on files that look like Vim
	// backups.
	if strings.HasSuffix(base, "~") {
		return false
	}

	// Only the source image itself is interesting; everything else in the
	// watched directory is noise.
	if base != filepath.Base(src) {
		return false
	}

	// Create covers editors that save by renaming a temporary file over
	// the original. Chmod won't affect the generated icons, and rename
	// produces a following create event, so just listen for that instead.
	return op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove) != 0
}
