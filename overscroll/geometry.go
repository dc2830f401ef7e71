// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/geometry.go
// Summary: Viewport/content measurement and proportional thumb geometry.

package overscroll

// BoundingBox is scrolled to when probing for the real scroll extent.
// It must exceed any realistic content size.
const BoundingBox = 1000000

// ThumbGeometry is the size and resting position of one thumb.
type ThumbGeometry struct {
	Width  float64
	Height float64
	Corner float64
	Left   float64
	Top    float64
}

// Length returns the thumb's extent along axis.
func (g ThumbGeometry) Length(axis Axis) float64 {
	if axis == AxisX {
		return g.Width
	}
	return g.Height
}

// Sizing is a measurement snapshot of a surface.
type Sizing struct {
	// Width and Height are the viewport size net of thumb thickness.
	Width  float64
	Height float64
	// ScrollWidth and ScrollHeight are the maximum scroll offsets; 0 means no overflow.
	ScrollWidth  float64
	ScrollHeight float64

	Horizontal ThumbGeometry
	Vertical   ThumbGeometry

	// Relative is true when thumbs move with the scrolled content and need
	// the scroll offset added back to stay put.
	Relative bool
}

// Container returns the net viewport length on axis.
func (s Sizing) Container(axis Axis) float64 {
	if axis == AxisX {
		return s.Width
	}
	return s.Height
}

// Extent returns the scrollable extent on axis.
func (s Sizing) Extent(axis Axis) float64 {
	if axis == AxisX {
		return s.ScrollWidth
	}
	return s.ScrollHeight
}

// Thumb returns the geometry of the thumb tracking axis.
func (s Sizing) Thumb(axis Axis) ThumbGeometry {
	if axis == AxisX {
		return s.Horizontal
	}
	return s.Vertical
}

// Measure reads the surface's size and probes its scroll extent by scrolling
// to BoundingBox on both axes. The scroll offset is put back afterwards.
func Measure(surface Surface, thickness float64) Sizing {
	width := surface.Size(AxisX)
	height := surface.Size(AxisY)

	left := surface.ScrollOffset(AxisX)
	top := surface.ScrollOffset(AxisY)
	surface.SetScrollOffset(AxisX, BoundingBox)
	surface.SetScrollOffset(AxisY, BoundingBox)
	scrollWidth := surface.ScrollOffset(AxisX)
	scrollHeight := surface.ScrollOffset(AxisY)
	surface.SetScrollOffset(AxisY, top)
	surface.SetScrollOffset(AxisX, left)

	return Sizing{
		Width:        width - thickness,
		Height:       height - thickness,
		ScrollWidth:  scrollWidth,
		ScrollHeight: scrollHeight,
		Horizontal: ThumbGeometry{
			Width:  ThumbLength(width, scrollWidth),
			Height: thickness,
			Corner: thickness / 2,
			Left:   0,
			Top:    height - thickness,
		},
		Vertical: ThumbGeometry{
			Width:  thickness,
			Height: ThumbLength(height, scrollHeight),
			Corner: thickness / 2,
			Left:   width - thickness,
			Top:    0,
		},
	}
}

// ThumbLength is the proportional thumb formula L*L/S, capped at L.
// It returns 0 when there is nothing to scroll.
func ThumbLength(container, extent float64) float64 {
	if extent <= 0 || container <= 0 {
		return 0
	}
	length := container * container / extent
	if length > container {
		return container
	}
	return length
}

// ThumbPosition maps a scroll offset to a thumb offset along the track.
func ThumbPosition(scroll, container, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return scroll * container / extent
}
