// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termview/view.go
// Summary: Binds a Viewport to an overscroll engine and feeds it tcell mouse input.

package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldrift/anim"
	"github.com/framegrace/texeldrift/overscroll"
)

// View is a momentum-scrolled document pane.
type View struct {
	Viewport *Viewport
	Engine   *overscroll.Engine

	// OnClick receives the document cell under a press that never became a drag.
	OnClick func(col, row int)

	pressed bool
}

// NewView attaches an engine to a fresh viewport over doc.
func NewView(doc *Document, opts overscroll.Options, sched anim.Scheduler) *View {
	v := &View{Viewport: NewViewport(doc, sched.Now)}
	v.Engine = overscroll.Attach(v.Viewport, opts, sched)
	v.Viewport.OnScroll = v.Engine.HandleScroll
	return v
}

// Resize moves the view to a new screen rect and re-measures.
func (v *View) Resize(x, y, w, h int) {
	v.Viewport.SetRect(x, y, w, h)
	v.Engine.Resize()
}

// SetDocument replaces the content and re-measures.
func (v *View) SetDocument(doc *Document) {
	v.Viewport.SetDocument(doc)
	v.Engine.Resize()
}

// Close detaches the engine.
func (v *View) Close() {
	v.Engine.Detach()
}

// Busy reports whether frames are still changing without input.
func (v *View) Busy() bool {
	return v.Engine.Animating() || v.Viewport.Fading()
}

// Draw renders the view.
func (v *View) Draw(c Canvas) {
	v.Viewport.Draw(c)
}

// HandleMouse routes a tcell mouse event. Returns true if the view consumed it.
func (v *View) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	nowDown := buttons&tcell.Button1 != 0
	fx, fy := float64(x), float64(y)

	switch {
	case nowDown && !v.pressed:
		if !v.Viewport.Contains(x, y) {
			return false
		}
		v.pressed = true
		v.Engine.PointerDown(fx, fy)
		return true
	case nowDown:
		v.Engine.PointerMove(fx, fy)
		return true
	case v.pressed:
		v.pressed = false
		if v.Engine.PointerUp(fx, fy) && v.OnClick != nil {
			v.OnClick(v.Viewport.DocumentPos(x, y))
		}
		return true
	}

	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) == 0 {
		return false
	}
	if !v.Viewport.Contains(x, y) {
		return false
	}
	v.Engine.Wheel(overscroll.WheelEvent{Ticks: wheelTicks(buttons)})
	return true
}

// wheelTicks maps wheel buttons to signed ticks: up/left scroll toward the origin.
func wheelTicks(buttons tcell.ButtonMask) float64 {
	switch {
	case buttons&(tcell.WheelUp|tcell.WheelLeft) != 0:
		return 1
	case buttons&(tcell.WheelDown|tcell.WheelRight) != 0:
		return -1
	}
	return 0
}
