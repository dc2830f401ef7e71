// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "driftview.toml")
	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(path, []byte("[view]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 8)
	w, err := NewWatcher([]string{path, ""}, func(p string) { changed <- p })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[view]\nstatus_line = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case got := <-changed:
		t.Errorf("expected a single debounced notification, got extra %s", got)
	case <-time.After(3 * WatchDebounce):
	}
}
