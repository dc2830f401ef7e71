// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/boundary.go
// Summary: Elastic overshoot tracking past the scrollable edges and the settle-back tween.

package overscroll

import "github.com/framegrace/texeldrift/anim"

// Margins is the accumulated overshoot past each edge. Values are never negative.
type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// edges returns the leading and trailing margin for axis.
func (m *Margins) edges(axis Axis) (leading, trailing *float64) {
	if axis == AxisX {
		return &m.Left, &m.Right
	}
	return &m.Top, &m.Bottom
}

// Active reports whether any edge has overshoot.
func (m *Margins) Active() bool {
	return m != nil && (m.Left > 0 || m.Top > 0 || m.Right > 0 || m.Bottom > 0)
}

// AxisActive reports whether axis has overshoot on either edge.
func (m *Margins) AxisActive(axis Axis) bool {
	if m == nil {
		return false
	}
	lead, trail := m.edges(axis)
	return *lead > 0 || *trail > 0
}

// ContentOffset returns the inline content offset implied by the margins on axis.
func (m *Margins) ContentOffset(axis Axis) float64 {
	if m == nil {
		return 0
	}
	lead, trail := m.edges(axis)
	if *lead > 0 {
		return *lead
	}
	return -*trail
}

// Track applies a pointer delta to the margins of axis.
// scroll is the tentative native scroll (current minus delta) and extent the
// maximum scroll offset. When handled is true the delta was absorbed as
// overshoot and must not reach the native scroll; offset is the content
// offset to display.
func (m *Margins) Track(axis Axis, delta, scroll, extent float64) (offset float64, handled bool) {
	lead, trail := m.edges(axis)

	if *trail == 0 && (scroll < 0 || *lead > 0) {
		*lead += delta
		if *lead < 0 {
			*lead = 0
		}
		return *lead, true
	}

	if *lead == 0 && (scroll > extent || *trail > 0) {
		*trail -= delta
		if *trail < 0 {
			*trail = 0
		}
		return -*trail, true
	}

	return 0, false
}

// settle animates the content offset of every overshooting axis back to 0.
// Teardown always clears the inline offset, whether the tween finished or was cut short.
func (e *Engine) settle(m *Margins) {
	var axes []Axis
	from := map[Axis]float64{}
	for _, axis := range []Axis{AxisX, AxisY} {
		if m.AxisActive(axis) {
			axes = append(axes, axis)
			from[axis] = m.ContentOffset(axis)
		}
	}

	e.phase = PhaseSettling
	e.task = anim.Start(e.sched, anim.TaskConfig{
		Duration: e.opts.OOBDuration,
		Frame:    e.opts.FrameInterval,
		Easing:   e.oobEasing,
		Step: func(p float64) {
			for _, axis := range axes {
				e.surface.SetContentOffset(axis, from[axis]*(1-p))
			}
		},
		Finalize: func(bool) {
			e.surface.SetContentOffset(AxisX, 0)
			e.surface.SetContentOffset(AxisY, 0)
			e.finishDrift()
		},
	})
}
