// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/momentum.go
// Summary: Release velocity and the eased post-release drift.

package overscroll

import "github.com/framegrace/texeldrift/anim"

// Velocity returns the drift distance per axis for a release at release
// after the last capture at capture.
func Velocity(scrollDelta float64, capture, release Point) Point {
	return Point{
		X: scrollDelta * (release.X - capture.X),
		Y: scrollDelta * (release.Y - capture.Y),
	}
}

// drift starts the momentum tween. With zero velocity on every enabled
// axis there is nothing to animate and the drift ends immediately.
func (e *Engine) drift(capture, release Point) {
	v := Velocity(e.opts.ScrollDelta, capture, release)

	var axes []Axis
	from := map[Axis]float64{}
	to := map[Axis]float64{}
	for _, axis := range []Axis{AxisX, AxisY} {
		if !e.opts.Direction.Allows(axis) || v.axis(axis) == 0 {
			continue
		}
		axes = append(axes, axis)
		from[axis] = e.surface.ScrollOffset(axis)
		to[axis] = from[axis] - v.axis(axis)
	}
	if len(axes) == 0 {
		e.finishDrift()
		return
	}

	e.phase = PhaseSettling
	e.task = anim.Start(e.sched, anim.TaskConfig{
		Duration: e.opts.ScrollDuration,
		Frame:    e.opts.FrameInterval,
		Easing:   anim.EaseOutCubic,
		Step: func(p float64) {
			for _, axis := range axes {
				e.surface.SetScrollOffset(axis, from[axis]+(to[axis]-from[axis])*p)
			}
			e.indicators.sync(e.surface, e.sizing)
		},
		Finalize: func(bool) {
			e.finishDrift()
		},
	})
}
