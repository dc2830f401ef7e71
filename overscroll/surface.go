// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/surface.go
// Summary: Contracts between the engine and the host's scrollable viewport.

package overscroll

import "time"

// Axis identifies a scroll axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Surface is the scrollable viewport. The host owns it; the engine only
// moves its scroll offset, its content inline offset and its thumbs.
type Surface interface {
	// Size returns the viewport length on axis.
	Size(axis Axis) float64
	// ScrollOffset returns the native scroll offset on axis.
	ScrollOffset(axis Axis) float64
	// SetScrollOffset moves the native scroll offset. The surface clamps it
	// to its real range, exactly like a platform scroll container.
	SetScrollOffset(axis Axis, offset float64)
	// SetContentOffset shifts the content inline without scrolling (rubber band).
	// Zero restores the content to its resting place.
	SetContentOffset(axis Axis, offset float64)
	// NewThumb creates an indicator element with the given initial geometry.
	NewThumb(axis Axis, geometry ThumbGeometry) Thumb
}

// Thumb is one indicator element owned by the engine.
type Thumb interface {
	// Offset returns where the thumb is rendered in the host's frame of reference.
	Offset() (x, y float64)
	// SetMargin positions the thumb relative to the viewport's origin.
	SetMargin(left, top float64)
	// FadeTo starts a non-blocking opacity transition.
	FadeTo(opacity float64, d time.Duration)
	// Remove detaches the thumb from the surface.
	Remove()
}

// DragModeSetter surfaces switch presentation (cursor, styling) between the
// open and pressed states.
type DragModeSetter interface {
	SetDragMode(dragging bool)
}
