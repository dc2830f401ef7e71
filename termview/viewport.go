// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termview/viewport.go
// Summary: Terminal scroll surface: a window onto a Document plus fading thumb overlays.
// Notes: Thumbs are positioned relative to the viewport rect, never the content,
// so the engine detects them as non-relative.

package termview

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldrift/anim"
	"github.com/framegrace/texeldrift/overscroll"
)

// Canvas is the drawing target; tcell.Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Viewport implements overscroll.Surface over a Document.
type Viewport struct {
	X, Y, W, H int

	Style      tcell.Style
	ThumbColor tcell.Color

	// OnScroll runs after every effective scroll offset change.
	OnScroll func()

	doc      *Document
	left     float64
	top      float64
	shiftX   float64
	shiftY   float64
	thumbs   []*Thumb
	fades    *anim.Timeline
	dragging bool
}

// NewViewport creates a viewport over doc. clock drives thumb fades; nil means wall time.
func NewViewport(doc *Document, clock func() time.Time) *Viewport {
	return &Viewport{
		doc:        doc,
		Style:      tcell.StyleDefault,
		ThumbColor: tcell.ColorSilver,
		fades:      anim.NewTimeline(0, clock),
	}
}

// SetRect places the viewport on screen. Offsets are re-clamped to the new size.
func (v *Viewport) SetRect(x, y, w, h int) {
	v.X, v.Y, v.W, v.H = x, y, max(w, 0), max(h, 0)
	v.SetScrollOffset(overscroll.AxisX, v.left)
	v.SetScrollOffset(overscroll.AxisY, v.top)
}

// SetDocument swaps the content, keeping the scroll offset where possible.
func (v *Viewport) SetDocument(doc *Document) {
	v.doc = doc
	v.SetScrollOffset(overscroll.AxisX, v.left)
	v.SetScrollOffset(overscroll.AxisY, v.top)
}

// Document returns the displayed content.
func (v *Viewport) Document() *Document {
	return v.doc
}

// Contains reports whether the screen cell (x, y) lies inside the viewport.
func (v *Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

// DocumentPos maps a screen cell to document coordinates.
func (v *Viewport) DocumentPos(x, y int) (col, row int) {
	col = x - v.X + int(math.Floor(v.left)) - int(math.Round(v.shiftX))
	row = y - v.Y + int(math.Floor(v.top)) - int(math.Round(v.shiftY))
	return col, row
}

func (v *Viewport) Size(axis overscroll.Axis) float64 {
	if axis == overscroll.AxisX {
		return float64(v.W)
	}
	return float64(v.H)
}

func (v *Viewport) ScrollOffset(axis overscroll.Axis) float64 {
	if axis == overscroll.AxisX {
		return v.left
	}
	return v.top
}

func (v *Viewport) limit(axis overscroll.Axis) float64 {
	var n int
	if axis == overscroll.AxisX {
		n = v.doc.widthOrZero() - v.W
	} else {
		n = v.doc.Height() - v.H
	}
	return float64(max(n, 0))
}

func (v *Viewport) SetScrollOffset(axis overscroll.Axis, offset float64) {
	offset = math.Max(0, math.Min(offset, v.limit(axis)))
	cur := &v.top
	if axis == overscroll.AxisX {
		cur = &v.left
	}
	if *cur == offset {
		return
	}
	*cur = offset
	if v.OnScroll != nil {
		v.OnScroll()
	}
}

func (v *Viewport) SetContentOffset(axis overscroll.Axis, offset float64) {
	if axis == overscroll.AxisX {
		v.shiftX = offset
	} else {
		v.shiftY = offset
	}
}

// ContentOffset returns the rubber-band shift on axis.
func (v *Viewport) ContentOffset(axis overscroll.Axis) float64 {
	if axis == overscroll.AxisX {
		return v.shiftX
	}
	return v.shiftY
}

func (v *Viewport) NewThumb(axis overscroll.Axis, g overscroll.ThumbGeometry) overscroll.Thumb {
	t := &Thumb{axis: axis, geometry: g, left: g.Left, top: g.Top, vp: v}
	v.thumbs = append(v.thumbs, t)
	return t
}

func (v *Viewport) SetDragMode(dragging bool) {
	v.dragging = dragging
}

// Pressed reports the drag presentation state.
func (v *Viewport) Pressed() bool {
	return v.dragging
}

// Fading reports whether any thumb is mid-fade.
func (v *Viewport) Fading() bool {
	return v.fades.HasActiveAnimations()
}

// Thumbs returns the live thumbs.
func (v *Viewport) Thumbs() []*Thumb {
	return v.thumbs
}

// Draw paints the visible window of the document, then the thumbs.
func (v *Viewport) Draw(c Canvas) {
	for row := 0; row < v.H; row++ {
		for col := 0; col < v.W; col++ {
			ch, style := v.contentAt(col, row)
			if ch == 0 {
				continue
			}
			c.SetContent(v.X+col, v.Y+row, ch, nil, style)
		}
	}
	for _, t := range v.thumbs {
		t.draw(c)
	}
}

// contentAt resolves the rune and style shown at viewport cell (col, row).
// Returns 0 for the trailing half of a wide rune.
func (v *Viewport) contentAt(col, row int) (rune, tcell.Style) {
	dx, dy := v.DocumentPos(v.X+col, v.Y+row)
	cell, ok := v.doc.At(dx, dy)
	if !ok {
		return ' ', v.Style
	}
	if cell.Ch == 0 {
		if col == 0 {
			return ' ', cell.Style
		}
		return 0, cell.Style
	}
	return cell.Ch, cell.Style
}

func (v *Viewport) removeThumb(t *Thumb) {
	for i, cur := range v.thumbs {
		if cur == t {
			v.thumbs = append(v.thumbs[:i], v.thumbs[i+1:]...)
			break
		}
	}
	v.fades.Reset(t)
}

func (d *Document) widthOrZero() int {
	if d == nil {
		return 0
	}
	return d.Width
}
