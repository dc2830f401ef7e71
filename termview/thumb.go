// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termview/thumb.go
// Summary: Scroll thumb overlay drawn as background-blended cells.

package termview

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldrift/overscroll"
)

// minVisibleOpacity is the opacity below which a thumb is not drawn at all.
const minVisibleOpacity = 0.05

// Thumb is an overscroll indicator living on a Viewport.
type Thumb struct {
	axis     overscroll.Axis
	geometry overscroll.ThumbGeometry
	left     float64
	top      float64
	vp       *Viewport
}

// Axis returns the scroll axis the thumb tracks.
func (t *Thumb) Axis() overscroll.Axis {
	return t.axis
}

func (t *Thumb) Offset() (float64, float64) {
	return t.left, t.top
}

func (t *Thumb) SetMargin(left, top float64) {
	t.left = left
	t.top = top
}

func (t *Thumb) FadeTo(opacity float64, d time.Duration) {
	t.vp.fades.AnimateTo(t, opacity, d)
}

// Opacity samples the current fade value.
func (t *Thumb) Opacity() float64 {
	return t.vp.fades.Get(t)
}

func (t *Thumb) Remove() {
	t.vp.removeThumb(t)
}

// Rect returns the thumb's cells relative to the viewport, clipped to it.
// A thumb running past the end of its track slides back to end flush with
// the viewport edge instead of shrinking.
func (t *Thumb) Rect() (x, y, w, h int) {
	x = int(math.Round(t.left))
	y = int(math.Round(t.top))
	w = max(1, int(math.Round(t.geometry.Width)))
	h = max(1, int(math.Round(t.geometry.Height)))
	if t.axis == overscroll.AxisX {
		x = min(x, t.vp.W-w)
	} else {
		y = min(y, t.vp.H-h)
	}
	if x+w > t.vp.W {
		w = t.vp.W - x
	}
	if y+h > t.vp.H {
		h = t.vp.H - y
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, max(w, 0), max(h, 0)
}

func (t *Thumb) draw(c Canvas) {
	alpha := t.Opacity()
	if alpha < minVisibleOpacity {
		return
	}
	x0, y0, w, h := t.Rect()
	for row := y0; row < y0+h; row++ {
		for col := x0; col < x0+w; col++ {
			ch, style := t.vp.contentAt(col, row)
			if ch == 0 {
				ch = ' '
			}
			_, bg, _ := style.Decompose()
			style = style.Background(blend(bg, t.vp.ThumbColor, alpha))
			c.SetContent(t.vp.X+col, t.vp.Y+row, ch, nil, style)
		}
	}
}

// blend mixes over onto base with the given alpha. Unset colours count as black.
func blend(base, over tcell.Color, alpha float64) tcell.Color {
	br, bg, bb := rgb(base)
	or, og, ob := rgb(over)
	mix := func(a, b int32) int32 {
		return int32(math.Round(float64(a) + (float64(b)-float64(a))*alpha))
	}
	return tcell.NewRGBColor(mix(br, or), mix(bg, og), mix(bb, ob))
}

func rgb(c tcell.Color) (int32, int32, int32) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return 0, 0, 0
	}
	return r, g, b
}
