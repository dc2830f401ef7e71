// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/drag.go
// Summary: Pointer-down/move/up handling: Idle -> Armed -> Dragging -> Settling -> Idle.

package overscroll

// PointerDown arms a new gesture at (x, y). Any drift, settle or wheel burst
// in flight is cancelled first.
func (e *Engine) PointerDown(x, y float64) {
	if e.detached {
		return
	}
	e.cancelMotion()

	e.dragging = false
	e.session = newDragSession(Point{X: x, Y: y}, e.opts.CaptureThreshold, e.opts.OOB)
	e.phase = PhaseArmed
	e.setDragMode(true)
}

// PointerMove feeds a pointer position into the active gesture.
// Moves without a preceding PointerDown are ignored.
func (e *Engine) PointerMove(x, y float64) {
	s := e.session
	if s == nil {
		return
	}
	p := Point{X: x, Y: y}

	moved := false
	for _, axis := range []Axis{AxisX, AxisY} {
		if e.opts.Direction.Allows(axis) && e.dragAxis(axis, p.axis(axis)-s.Position.axis(axis)) {
			moved = true
		}
	}

	if s.advance(p, e.opts.CaptureThreshold) {
		e.dragging = true
		e.phase = PhaseDragging
	}
	if moved {
		e.indicators.sync(e.surface, e.sizing)
	}
}

// dragAxis routes one axis delta to the boundary tracker or the native scroll.
// Returns true when the native scroll was written.
func (e *Engine) dragAxis(axis Axis, delta float64) bool {
	scroll := e.surface.ScrollOffset(axis) - delta

	if m := e.session.Margins; m != nil {
		if offset, handled := m.Track(axis, delta, scroll, e.sizing.Extent(axis)); handled {
			e.surface.SetContentOffset(axis, offset)
			return false
		}
	}

	e.surface.SetScrollOffset(axis, scroll)
	return true
}

// PointerUp ends the gesture at (x, y). It returns true when the gesture
// never became a drag, so the host may let a click through. A confirmed drag
// suppresses the click even when the release starts no drift.
func (e *Engine) PointerUp(x, y float64) bool {
	s := e.session
	if s == nil {
		return !e.dragging
	}
	e.session = nil
	clickable := !e.dragging

	switch {
	case s.Margins.Active():
		e.settle(s.Margins)
	case e.dragging:
		e.drift(s.Capture.Point, Point{X: x, Y: y})
	default:
		e.phase = PhaseIdle
		e.setDragMode(false)
	}

	if e.resizePending {
		e.resizePending = false
		e.measure()
	}
	return clickable
}
