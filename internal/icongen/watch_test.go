// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icongen

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatch(t *testing.T) {
	srcDir, dstDir := t.TempDir(), t.TempDir()
	src := filepath.Join(srcDir, "icon.png")
	writePNGFile(t, src, uniformNRGBA(color.NRGBA{R: 255, A: 255}, 64, 64))

	ready := make(chan struct{})
	watchReadyHook = func() {
		ready <- struct{}{}
	}
	generated := make(chan struct{}, 1)
	watchGeneratedHook = func() {
		select {
		case generated <- struct{}{}:
		default:
		}
	}
	t.Cleanup(func() {
		watchReadyHook, watchGeneratedHook = nil, nil
	})

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := Watch(ctx, &Config{Src: src, Dst: dstDir}); err != nil {
			errCh <- err
		}
	}()

	// Wait until the watcher is ready.
	select {
	case err := <-errCh:
		t.Fatalf("Watch crashed during startup: %v", err)
	case <-ready:
	}

	// The initial generation should have already happened.
	for _, s := range DefaultSizes {
		if _, err := os.Stat(filepath.Join(dstDir, s.Name)); err != nil {
			t.Fatalf("missing %s after initial generation: %v", s.Name, err)
		}
	}

	// Change the source image and wait for a regeneration.
	green := color.NRGBA{G: 255, A: 255}
	writePNGFile(t, src, uniformNRGBA(green, 64, 64))
	select {
	case <-generated:
	case err := <-errCh:
		t.Fatalf("Watch crashed: %v", err)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for a regeneration")
	}

	assertUniform(t, decodePNGFile(t, filepath.Join(dstDir, "pwa-192x192.png")), green)

	// Try to gracefully shut down the watcher.
	cancel()
	wg.Wait()
	select {
	case err := <-errCh:
		t.Fatalf("Watch crashed during shutdown: %v", err)
	default:
	}
}

func TestShouldRegenerate(t *testing.T) {
	// Events on unrelated files and editor backups must not trigger a
	// regeneration. See the fsnotify cases in Watch.
	for _, tc := range []struct {
		path string
		want bool
	}{
		{path: "assets/icon.png", want: true},
		{path: "assets/icon.png~", want: false},
		{path: "assets/other.png", want: false},
		{path: "assets/.DS_Store", want: false},
	} {
		got := shouldRegenerate("assets/icon.png", tc.path, fsnotify.Write)
		if got != tc.want {
			t.Errorf("shouldRegenerate(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
