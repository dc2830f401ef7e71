// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/engine.go
// Summary: Per-surface overscroll engine: attach/detach, resize, scroll sync and drift lifecycle.
// Notes: Single-threaded. Call every method, and run every Scheduler callback, on one goroutine.

package overscroll

import (
	"log"

	"github.com/framegrace/texeldrift/anim"
)

// State is the snapshot handed to OnDriftEnd.
type State struct {
	ScrollLeft float64
	ScrollTop  float64
	Dragging   bool
	Phase      Phase
	Sizing     Sizing
}

// Engine converts pointer and wheel input into scroll offsets for one surface.
// At most one of {drag session, drift, settle} drives the offset at a time.
type Engine struct {
	surface   Surface
	sched     anim.Scheduler
	opts      Options
	oobEasing anim.EasingFunc

	sizing     Sizing
	indicators indicators

	session  *DragSession
	task     *anim.Task
	wheel    *wheelCapture
	phase    Phase
	dragging bool

	measuring     bool
	resizePending bool
	detached      bool
}

// Attach binds an engine to surface, measures it and creates its thumbs.
func Attach(surface Surface, opts Options, sched anim.Scheduler) *Engine {
	opts = opts.normalized()
	e := &Engine{
		surface:   surface,
		sched:     sched,
		opts:      opts,
		oobEasing: anim.ByName(opts.OOBEasing),
	}
	if dm, ok := surface.(DragModeSetter); ok {
		dm.SetDragMode(false)
	}
	e.measure()
	log.Printf("Overscroll: attached (direction=%s, extent=%.0fx%.0f, thumbs=%d, relative=%v)",
		opts.Direction, e.sizing.ScrollWidth, e.sizing.ScrollHeight, e.indicators.count(), e.sizing.Relative)
	return e
}

// Detach cancels any motion, removes the thumbs and stops reacting to input.
// A gesture still held down is ended as if released in place without drift:
// a confirmed drag reports OnDriftEnd, an armed press reports nothing.
func (e *Engine) Detach() {
	if e.detached {
		return
	}
	e.cancelMotion()
	if e.session != nil {
		e.session = nil
		e.resizePending = false
		if e.dragging {
			e.finishDrift()
		} else {
			e.phase = PhaseIdle
			e.setDragMode(false)
		}
	}
	e.indicators.remove()
	e.surface.SetContentOffset(AxisX, 0)
	e.surface.SetContentOffset(AxisY, 0)
	e.detached = true
}

// Options returns the normalised options in effect.
func (e *Engine) Options() Options {
	return e.opts
}

// IsDragging reports whether a drag, drift or wheel burst is in progress.
// Hosts use it to swallow clicks on interactive children mid-drag.
func (e *Engine) IsDragging() bool {
	return e.dragging
}

// Phase returns the drag state machine's current state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Sizing returns the latest measurement.
func (e *Engine) Sizing() Sizing {
	return e.sizing
}

// Session returns a copy of the active gesture, if any.
func (e *Engine) Session() (DragSession, bool) {
	if e.session == nil {
		return DragSession{}, false
	}
	s := *e.session
	if s.Margins != nil {
		m := *s.Margins
		s.Margins = &m
	}
	return s, true
}

// Animating reports whether a drift or settle tween is running.
func (e *Engine) Animating() bool {
	return e.task != nil && !e.task.Done()
}

// State returns a snapshot of the surface and engine.
func (e *Engine) State() State {
	return State{
		ScrollLeft: e.surface.ScrollOffset(AxisX),
		ScrollTop:  e.surface.ScrollOffset(AxisY),
		Dragging:   e.dragging,
		Phase:      e.phase,
		Sizing:     e.sizing,
	}
}

// HandleScroll repositions the thumbs after the surface scrolled.
// Scroll notifications raised by the engine's own measurement probes are ignored.
func (e *Engine) HandleScroll() {
	if e.detached || e.measuring {
		return
	}
	e.indicators.sync(e.surface, e.sizing)
}

// Resize re-measures the surface and rebuilds its thumbs. A running drift or
// settle is cancelled. During a gesture the measurement waits for pointer-up,
// and a Resize raised from inside a measurement is dropped.
func (e *Engine) Resize() {
	if e.detached {
		return
	}
	if e.measuring {
		log.Printf("Overscroll: re-entrant resize ignored")
		return
	}
	e.cancelTask()
	if e.session != nil {
		e.resizePending = true
		return
	}
	e.measure()
}

func (e *Engine) measure() {
	e.measuring = true
	defer func() { e.measuring = false }()

	sizing := Measure(e.surface, e.opts.ThumbThickness)
	e.indicators.rebuild(e.surface, &sizing, e.opts)
	e.sizing = sizing
	e.indicators.sync(e.surface, e.sizing)
	if e.dragging {
		e.indicators.fade(true, e.opts)
	}
}

// cancelMotion stops every driver except an active gesture.
func (e *Engine) cancelMotion() {
	e.cancelTask()
	e.endWheel()
}

func (e *Engine) cancelTask() {
	if e.task == nil {
		return
	}
	t := e.task
	e.task = nil
	t.Cancel()
}

// finishDrift returns the engine to rest and notifies the host.
func (e *Engine) finishDrift() {
	e.task = nil
	if e.session == nil {
		e.phase = PhaseIdle
	}
	e.dragging = false
	if e.opts.OnDriftEnd != nil {
		e.opts.OnDriftEnd(e.State())
	}
	e.setDragMode(false)
}

func (e *Engine) setDragMode(dragging bool) {
	if dm, ok := e.surface.(DragModeSetter); ok {
		dm.SetDragMode(dragging)
	}
	e.indicators.fade(dragging, e.opts)
}
