// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/viewer/runner.go
// Summary: Terminal run loop hosting one momentum-scrolled document view.
// Usage: Used by cmd/driftview; all engine calls and timer callbacks run on the PollEvent goroutine.

package viewer

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldrift/anim"
	"github.com/framegrace/texeldrift/config"
	"github.com/framegrace/texeldrift/overscroll"
	"github.com/framegrace/texeldrift/termview"
)

// Options selects what to show and where settings come from.
type Options struct {
	// File is the document to display.
	File string
	// ConfigPath is the driftview.toml to load; empty uses built-in defaults.
	ConfigPath string
	// Watch reloads the document and config when they change on disk.
	Watch bool
}

var screenFactory = tcell.NewScreen

// readyHook, when set, is called once the first frame is on screen.
var readyHook func(tcell.Screen)

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

type reloadRequest struct{ path string }

type quitRequest struct{}

// Run displays opts.File until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Printf("Viewer: %v; using defaults", err)
	}
	doc, lexer, err := loadDocument(opts.File, cfg.View.Style)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	s := &session{
		screen: screen,
		sched:  termview.NewLoopScheduler(screen),
		opts:   opts,
		cfg:    cfg,
		lexer:  lexer,
	}
	s.view = s.newView(doc)
	defer func() { s.view.Close() }()
	s.layout()

	if opts.Watch {
		w, err := config.NewWatcher([]string{opts.ConfigPath, opts.File}, func(path string) {
			_ = screen.PostEvent(tcell.NewEventInterrupt(reloadRequest{path: path}))
		})
		if err != nil {
			log.Printf("Viewer: watch disabled: %v", err)
		} else {
			defer w.Close()
			go func() { _ = w.Run(ctx) }()
		}
	}

	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
	}()

	s.draw()
	if readyHook != nil {
		readyHook(screen)
	}

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if s.sched.Dispatch(tev) {
				s.draw()
				continue
			}
			switch data := tev.Data().(type) {
			case quitRequest:
				return nil
			case reloadRequest:
				s.reload(data.path)
			}
			s.draw()
		case *tcell.EventResize:
			s.layout()
			screen.Sync()
			s.draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC || tev.Key() == tcell.KeyEscape ||
				(tev.Key() == tcell.KeyRune && tev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventMouse:
			if s.view.HandleMouse(tev) {
				s.draw()
			}
		}
	}
}

// session is the state of one Run.
type session struct {
	screen tcell.Screen
	sched  *termview.LoopScheduler
	opts   Options
	cfg    config.File
	lexer  string
	view   *termview.View

	drifts  int
	clicked int
	frame   anim.Timer
}

func (s *session) newView(doc *termview.Document) *termview.View {
	opts := s.cfg.Overscroll.Options()
	opts.OnDriftEnd = func(overscroll.State) { s.drifts++ }

	v := termview.NewView(doc, opts, s.sched)
	v.Viewport.Style = termview.BaseStyle(s.cfg.View.Style)
	if c := tcell.GetColor(s.cfg.View.ThumbColor); c != tcell.ColorDefault {
		v.Viewport.ThumbColor = c
	}
	s.clicked = -1
	v.OnClick = func(_, row int) { s.clicked = row }
	return v
}

func (s *session) layout() {
	w, h := s.screen.Size()
	if s.cfg.View.StatusLine && h > 1 {
		h--
	}
	s.view.Resize(0, 0, w, h)
}

func (s *session) reload(path string) {
	switch filepath.Clean(path) {
	case cleanAbs(s.opts.File):
		doc, lexer, err := loadDocument(s.opts.File, s.cfg.View.Style)
		if err != nil {
			log.Printf("Viewer: reload %s: %v", path, err)
			return
		}
		s.lexer = lexer
		s.view.SetDocument(doc)
	case cleanAbs(s.opts.ConfigPath):
		cfg, err := config.Load(s.opts.ConfigPath)
		if err != nil {
			log.Printf("Viewer: reload %s: %v", path, err)
			return
		}
		s.cfg = cfg
		doc, lexer, err := loadDocument(s.opts.File, cfg.View.Style)
		if err != nil {
			log.Printf("Viewer: reload %s: %v", s.opts.File, err)
			return
		}
		left := s.view.Viewport.ScrollOffset(overscroll.AxisX)
		top := s.view.Viewport.ScrollOffset(overscroll.AxisY)
		s.view.Close()
		s.lexer = lexer
		s.view = s.newView(doc)
		s.layout()
		s.view.Viewport.SetScrollOffset(overscroll.AxisX, left)
		s.view.Viewport.SetScrollOffset(overscroll.AxisY, top)
	}
}

func (s *session) draw() {
	s.screen.Clear()
	s.view.Draw(s.screen)
	if s.cfg.View.StatusLine {
		w, h := s.screen.Size()
		drawStatus(s.screen, h-1, w, statusText(s.statusInfo()))
	}
	s.screen.Show()
	s.scheduleFrame()
}

// scheduleFrame keeps frames coming while fades or tweens run without input.
func (s *session) scheduleFrame() {
	if s.frame != nil || !s.view.Busy() {
		return
	}
	s.frame = s.sched.AfterFunc(s.view.Engine.Options().FrameInterval, func() {
		s.frame = nil
	})
}

func (s *session) statusInfo() statusInfo {
	st := s.view.Engine.State()
	return statusInfo{
		file:    filepath.Base(s.opts.File),
		lexer:   s.lexer,
		left:    st.ScrollLeft,
		top:     st.ScrollTop,
		lines:   s.view.Viewport.Document().Height(),
		phase:   st.Phase,
		drag:    st.Dragging,
		drifts:  s.drifts,
		clicked: s.clicked,
	}
}

func loadDocument(path, style string) (*termview.Document, string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return termview.Highlight(path, src, style)
}

func cleanAbs(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}
