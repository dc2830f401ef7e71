// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/viewer/runner_test.go
// Summary: Exercises the viewer run loop against a simulation screen.

package viewer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldrift/overscroll"
)

func writeDocument(t *testing.T, lines int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&sb, "fmt.Println(%d)\n", i)
	}
	path := filepath.Join(t.TempDir(), "doc.go")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func startRun(t *testing.T, ctx context.Context, opts Options) (tcell.SimulationScreen, <-chan error) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	SetScreenFactory(func() (tcell.Screen, error) { return screen, nil })
	ready := make(chan struct{})
	readyHook = func(tcell.Screen) { close(ready) }
	t.Cleanup(func() {
		SetScreenFactory(nil)
		readyHook = nil
	})

	errCh := make(chan error, 1)
	go func() { errCh <- Run(ctx, opts) }()

	select {
	case <-ready:
	case err := <-errCh:
		t.Fatalf("run exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("viewer never drew its first frame")
	}
	return screen, errCh
}

func waitExit(t *testing.T, errCh <-chan error) {
	t.Helper()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not exit")
	}
}

func TestRunHandlesInputAndQuits(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	screen, errCh := startRun(t, context.Background(), Options{File: writeDocument(t, 200)})

	screen.PostEvent(tcell.NewEventMouse(5, 5, tcell.WheelDown, 0))
	screen.PostEvent(tcell.NewEventMouse(5, 10, tcell.Button1, 0))
	screen.PostEvent(tcell.NewEventMouse(5, 8, tcell.Button1, 0))
	screen.PostEvent(tcell.NewEventMouse(5, 8, tcell.ButtonNone, 0))
	screen.PostEvent(tcell.NewEventResize(60, 20))
	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0))

	waitExit(t, errCh)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, errCh := startRun(t, ctx, Options{File: writeDocument(t, 10)})
	cancel()
	waitExit(t, errCh)
}

func TestRunMissingFile(t *testing.T) {
	err := Run(context.Background(), Options{File: filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil || !strings.Contains(err.Error(), "missing.txt") {
		t.Fatalf("expected read error naming the file, got %v", err)
	}
}

func TestStatusText(t *testing.T) {
	got := statusText(statusInfo{
		file:    "main.go",
		lexer:   "Go",
		left:    0,
		top:     41.6,
		lines:   200,
		phase:   overscroll.PhaseSettling,
		drag:    true,
		drifts:  3,
		clicked: -1,
	})
	want := " main.go [Go] | ln 42/200 col 1 | settling | dragging | drifts 3"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

type rowCanvas map[int]rune

func (c rowCanvas) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	c[x] = mainc
}

func TestDrawStatusTruncatesAndPads(t *testing.T) {
	c := rowCanvas{}
	drawStatus(c, 0, 8, "0123456789")
	if len(c) != 8 {
		t.Fatalf("expected 8 cells, got %d", len(c))
	}
	if c[7] != '…' {
		t.Errorf("expected ellipsis at the edge, got %q", c[7])
	}

	c = rowCanvas{}
	drawStatus(c, 0, 6, "ab")
	if c[5] != ' ' {
		t.Errorf("expected padding, got %q", c[5])
	}
}
