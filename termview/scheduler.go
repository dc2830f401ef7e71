// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termview/scheduler.go
// Summary: anim.Scheduler that delivers timer callbacks through the tcell event queue.
// Notes: Callbacks run inside Dispatch, on the goroutine polling events, so the
// engine never sees concurrent calls.

package termview

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldrift/anim"
)

// Poster is the part of tcell.Screen the scheduler needs.
type Poster interface {
	PostEvent(ev tcell.Event) error
}

// LoopScheduler implements anim.Scheduler on top of a tcell event loop.
type LoopScheduler struct {
	poster Poster
}

// NewLoopScheduler returns a scheduler posting into poster.
func NewLoopScheduler(poster Poster) *LoopScheduler {
	return &LoopScheduler{poster: poster}
}

type loopTimer struct {
	timer   *time.Timer
	fn      func()
	stopped atomic.Bool
	fired   atomic.Bool
}

func (t *loopTimer) Stop() bool {
	if t.fired.Load() || !t.stopped.CompareAndSwap(false, true) {
		return false
	}
	t.timer.Stop()
	return true
}

func (s *LoopScheduler) Now() time.Time {
	return time.Now()
}

func (s *LoopScheduler) AfterFunc(d time.Duration, fn func()) anim.Timer {
	t := &loopTimer{fn: fn}
	t.timer = time.AfterFunc(d, func() {
		_ = s.poster.PostEvent(tcell.NewEventInterrupt(t))
	})
	return t
}

// Dispatch runs the callback carried by ev if it came from this scheduler.
// Callbacks whose timer was stopped after posting are dropped.
func (s *LoopScheduler) Dispatch(ev *tcell.EventInterrupt) bool {
	t, ok := ev.Data().(*loopTimer)
	if !ok {
		return false
	}
	if t.stopped.Load() || !t.fired.CompareAndSwap(false, true) {
		return true
	}
	t.fn()
	return true
}
