// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/overscrolltest/surface.go
// Summary: In-memory Surface for exercising the overscroll engine without a terminal.

package overscrolltest

import (
	"time"

	"github.com/framegrace/texeldrift/overscroll"
)

// Surface is a fake scroll container. Scroll offsets are clamped to
// [0, content-size] the way a platform container clamps them.
type Surface struct {
	Width, Height               float64
	ContentWidth, ContentHeight float64

	Left, Top          float64
	ContentX, ContentY float64

	// ThumbsFollowScroll makes thumbs report offsets that move with the
	// scrolled content, like absolutely positioned children inside a
	// positioned scroll container.
	ThumbsFollowScroll bool

	// OnScroll runs synchronously after every effective scroll change.
	OnScroll func()

	Thumbs    []*Thumb
	DragModes []bool
	// ScrollWrites counts SetScrollOffset calls.
	ScrollWrites int
}

// NewSurface returns a viewport of w x h over content of cw x ch.
func NewSurface(w, h, cw, ch float64) *Surface {
	return &Surface{Width: w, Height: h, ContentWidth: cw, ContentHeight: ch}
}

func (s *Surface) Size(axis overscroll.Axis) float64 {
	if axis == overscroll.AxisX {
		return s.Width
	}
	return s.Height
}

func (s *Surface) ScrollOffset(axis overscroll.Axis) float64 {
	if axis == overscroll.AxisX {
		return s.Left
	}
	return s.Top
}

func (s *Surface) SetScrollOffset(axis overscroll.Axis, offset float64) {
	s.ScrollWrites++
	limit := s.ContentHeight - s.Height
	cur := &s.Top
	if axis == overscroll.AxisX {
		limit = s.ContentWidth - s.Width
		cur = &s.Left
	}
	if limit < 0 {
		limit = 0
	}
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}
	if *cur == offset {
		return
	}
	*cur = offset
	if s.OnScroll != nil {
		s.OnScroll()
	}
}

func (s *Surface) SetContentOffset(axis overscroll.Axis, offset float64) {
	if axis == overscroll.AxisX {
		s.ContentX = offset
	} else {
		s.ContentY = offset
	}
}

func (s *Surface) NewThumb(axis overscroll.Axis, g overscroll.ThumbGeometry) overscroll.Thumb {
	t := &Thumb{Axis: axis, Geometry: g, MarginLeft: g.Left, MarginTop: g.Top, surface: s}
	s.Thumbs = append(s.Thumbs, t)
	return t
}

func (s *Surface) SetDragMode(dragging bool) {
	s.DragModes = append(s.DragModes, dragging)
}

// LiveThumb returns the most recent non-removed thumb for axis, or nil.
func (s *Surface) LiveThumb(axis overscroll.Axis) *Thumb {
	for i := len(s.Thumbs) - 1; i >= 0; i-- {
		t := s.Thumbs[i]
		if t.Axis == axis && !t.Removed {
			return t
		}
	}
	return nil
}

// LiveThumbs counts thumbs that have not been removed.
func (s *Surface) LiveThumbs() int {
	n := 0
	for _, t := range s.Thumbs {
		if !t.Removed {
			n++
		}
	}
	return n
}

// Fade is one recorded FadeTo call.
type Fade struct {
	Opacity  float64
	Duration time.Duration
}

// Thumb records everything the engine does to an indicator.
type Thumb struct {
	Axis       overscroll.Axis
	Geometry   overscroll.ThumbGeometry
	MarginLeft float64
	MarginTop  float64
	Fades      []Fade
	Removed    bool

	surface *Surface
}

func (t *Thumb) Offset() (float64, float64) {
	if t.surface.ThumbsFollowScroll {
		return t.MarginLeft - t.surface.Left, t.MarginTop - t.surface.Top
	}
	return t.MarginLeft, t.MarginTop
}

func (t *Thumb) SetMargin(left, top float64) {
	t.MarginLeft = left
	t.MarginTop = top
}

func (t *Thumb) FadeTo(opacity float64, d time.Duration) {
	t.Fades = append(t.Fades, Fade{Opacity: opacity, Duration: d})
}

func (t *Thumb) Remove() {
	t.Removed = true
}

// Opacity returns the target of the latest fade.
func (t *Thumb) Opacity() float64 {
	if len(t.Fades) == 0 {
		return 1
	}
	return t.Fades[len(t.Fades)-1].Opacity
}
