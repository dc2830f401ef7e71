// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/indicators.go
// Summary: Owns the two proportional thumbs, their fades and their position sync.

package overscroll

// indicators manages the thumb elements of one surface.
type indicators struct {
	horizontal Thumb
	vertical   Thumb
}

func (in *indicators) thumb(axis Axis) Thumb {
	if axis == AxisX {
		return in.horizontal
	}
	return in.vertical
}

// count returns the number of live thumbs.
func (in *indicators) count() int {
	n := 0
	if in.horizontal != nil {
		n++
	}
	if in.vertical != nil {
		n++
	}
	return n
}

// rebuild replaces the thumbs for a fresh sizing and detects the Relative flag.
func (in *indicators) rebuild(surface Surface, sizing *Sizing, opts Options) {
	in.remove()
	sizing.Relative = false
	if !opts.ShowThumbs {
		return
	}

	if sizing.ScrollWidth > 0 && opts.Direction.Allows(AxisX) {
		in.horizontal = surface.NewThumb(AxisX, sizing.Horizontal)
		in.horizontal.FadeTo(0, 0)
	}
	if sizing.ScrollHeight > 0 && opts.Direction.Allows(AxisY) {
		in.vertical = surface.NewThumb(AxisY, sizing.Vertical)
		in.vertical.FadeTo(0, 0)
	}

	probe := in.vertical
	if probe == nil {
		probe = in.horizontal
	}
	if probe == nil {
		return
	}
	sizing.Relative = detectRelative(surface, probe)
}

// detectRelative checks whether the host moves thumbs along with scrolled
// content: the probe's rendered offset is compared before and after an
// extreme scroll. The scroll offset is restored afterwards.
func detectRelative(surface Surface, probe Thumb) bool {
	left := surface.ScrollOffset(AxisX)
	top := surface.ScrollOffset(AxisY)

	oldX, oldY := probe.Offset()
	surface.SetScrollOffset(AxisY, BoundingBox)
	surface.SetScrollOffset(AxisX, BoundingBox)
	newX, newY := probe.Offset()
	surface.SetScrollOffset(AxisY, top)
	surface.SetScrollOffset(AxisX, left)

	return oldX != newX || oldY != newY
}

// sync positions every thumb for the surface's current scroll offset.
func (in *indicators) sync(surface Surface, sizing Sizing) {
	left := surface.ScrollOffset(AxisX)
	top := surface.ScrollOffset(AxisY)

	if in.horizontal != nil {
		ml := ThumbPosition(left, sizing.Width, sizing.ScrollWidth)
		mt := sizing.Horizontal.Top
		if sizing.Relative {
			ml += left
			mt += top
		}
		in.horizontal.SetMargin(ml, mt)
	}
	if in.vertical != nil {
		ml := sizing.Vertical.Left
		mt := ThumbPosition(top, sizing.Height, sizing.ScrollHeight)
		if sizing.Relative {
			ml += left
			mt += top
		}
		in.vertical.SetMargin(ml, mt)
	}
}

// fade shows thumbs at partial opacity while dragging and hides them when idle.
func (in *indicators) fade(dragging bool, opts Options) {
	target := 0.0
	if dragging {
		target = opts.ThumbOpacity
	}
	for _, t := range []Thumb{in.horizontal, in.vertical} {
		if t != nil {
			t.FadeTo(target, opts.FadeDuration)
		}
	}
}

func (in *indicators) remove() {
	if in.horizontal != nil {
		in.horizontal.Remove()
		in.horizontal = nil
	}
	if in.vertical != nil {
		in.vertical.Remove()
		in.vertical = nil
	}
}
