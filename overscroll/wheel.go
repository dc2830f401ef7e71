// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/wheel.go
// Summary: Wheel tick normalisation and the debounced "dragging" window for wheel bursts.

package overscroll

import "github.com/framegrace/texeldrift/anim"

// WheelEvent carries one wheel notification in whichever encoding the platform uses.
type WheelEvent struct {
	// Delta is a classic wheel delta in multiples of 120, positive away from the user.
	Delta float64
	// Inverted marks platforms that report Delta with the opposite sign.
	Inverted bool
	// Detail is a line-count encoding, 3 per notch, positive toward the user.
	Detail float64
	// Ticks is used as-is when Delta and Detail are zero.
	Ticks float64
}

// Normalize returns the signed tick count; positive scrolls back toward the origin.
func (ev WheelEvent) Normalize() float64 {
	ticks := ev.Ticks
	if ev.Delta != 0 {
		ticks = ev.Delta / 120
		if ev.Inverted {
			ticks = -ticks
		}
	}
	if ev.Detail != 0 {
		ticks = -ev.Detail / 3
	}
	return ticks
}

// wheelCapture lives for one burst of wheel ticks.
type wheelCapture struct {
	timer anim.Timer
}

// Wheel scrolls the configured wheel axis by ticks * WheelDelta. The first
// tick of a burst cancels motion and enters the dragging presentation; the
// burst ends WheelTimeout after the last tick.
func (e *Engine) Wheel(ev WheelEvent) {
	if e.detached {
		return
	}
	delta := ev.Normalize() * e.opts.WheelDelta
	axis := e.opts.wheelAxis()

	if e.session != nil {
		e.surface.SetScrollOffset(axis, e.surface.ScrollOffset(axis)-delta)
		e.indicators.sync(e.surface, e.sizing)
		return
	}

	if e.wheel == nil {
		e.cancelTask()
		e.wheel = &wheelCapture{}
		e.dragging = true
		e.setDragMode(true)
	}

	e.surface.SetScrollOffset(axis, e.surface.ScrollOffset(axis)-delta)
	e.indicators.sync(e.surface, e.sizing)

	if e.wheel.timer != nil {
		e.wheel.timer.Stop()
	}
	e.wheel.timer = e.sched.AfterFunc(e.opts.WheelTimeout, e.endWheel)
}

// endWheel closes the current burst.
func (e *Engine) endWheel() {
	if e.wheel == nil {
		return
	}
	if e.wheel.timer != nil {
		e.wheel.timer.Stop()
	}
	e.wheel = nil
	e.finishDrift()
}
