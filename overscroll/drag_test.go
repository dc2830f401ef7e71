// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package overscroll_test

import (
	"testing"
	"time"

	"github.com/framegrace/texeldrift/overscroll"
	"github.com/framegrace/texeldrift/overscroll/overscrolltest"
)

func TestDragMovesContentOppositeToPointer(t *testing.T) {
	surf := overscrolltest.NewSurface(200, 200, 1200, 1200)
	h := newHarness(surf, nil)
	surf.Left, surf.Top = 500, 500

	h.engine.PointerDown(100, 100)
	h.engine.PointerMove(90, 80)

	if surf.Left != 510 || surf.Top != 520 {
		t.Errorf("expected offsets (510, 520), got (%v, %v)", surf.Left, surf.Top)
	}
	if h.engine.Phase() != overscroll.PhaseArmed {
		t.Errorf("expected armed after one move, got %v", h.engine.Phase())
	}
}

func TestDirectionRestrictsDragAxes(t *testing.T) {
	surf := overscrolltest.NewSurface(200, 200, 1200, 1200)
	h := newHarness(surf, func(o *overscroll.Options) { o.Direction = overscroll.DirectionVertical })
	surf.Left, surf.Top = 500, 500

	h.engine.PointerDown(100, 100)
	h.engine.PointerMove(50, 50)

	if surf.Left != 500 {
		t.Errorf("expected horizontal offset untouched, got %v", surf.Left)
	}
	if surf.Top != 550 {
		t.Errorf("expected vertical offset 550, got %v", surf.Top)
	}
	if surf.LiveThumb(overscroll.AxisX) != nil {
		t.Error("expected no horizontal thumb for vertical direction")
	}
}

func TestDraggingFlagFollowsConfirmationThreshold(t *testing.T) {
	surf := overscrolltest.NewSurface(200, 200, 200, 2000)
	h := newHarness(surf, nil)
	surf.Top = 1000

	h.engine.PointerDown(50, 100)
	for i, y := range []float64{95, 90} {
		h.engine.PointerMove(50, y)
		if h.engine.IsDragging() {
			t.Fatalf("expected not dragging after %d moves", i+1)
		}
	}
	h.engine.PointerMove(50, 85)
	if !h.engine.IsDragging() {
		t.Fatal("expected dragging after 3 moves")
	}
	if h.engine.Phase() != overscroll.PhaseDragging {
		t.Errorf("expected dragging phase, got %v", h.engine.Phase())
	}

	if h.engine.PointerUp(50, 80) {
		t.Error("expected release of a drag to suppress the click")
	}
	if !h.engine.IsDragging() {
		t.Error("expected dragging to stay set while drifting")
	}
	if h.engine.Phase() != overscroll.PhaseSettling {
		t.Errorf("expected settling phase, got %v", h.engine.Phase())
	}

	flips := 0
	prev := h.engine.IsDragging()
	for i := 0; i < 100; i++ {
		h.sched.Advance(16 * time.Millisecond)
		if cur := h.engine.IsDragging(); cur != prev {
			flips++
			prev = cur
		}
	}
	if flips != 1 || prev {
		t.Errorf("expected dragging to drop to false exactly once, flips=%d final=%v", flips, prev)
	}
	if len(h.ends) != 1 {
		t.Fatalf("expected one drift end, got %d", len(h.ends))
	}
	if h.ends[0].Dragging {
		t.Error("expected drift end state to report not dragging")
	}
}

func TestClickPassesThrough(t *testing.T) {
	surf := overscrolltest.NewSurface(200, 200, 200, 2000)
	h := newHarness(surf, nil)

	h.engine.PointerDown(50, 100)
	h.engine.PointerMove(50, 99)
	if !h.engine.PointerUp(50, 99) {
		t.Error("expected click to pass through")
	}
	if h.sched.Pending() != 0 {
		t.Errorf("expected no animation for a click, %d timers pending", h.sched.Pending())
	}
	if len(h.ends) != 0 {
		t.Errorf("expected no drift end for a click, got %d", len(h.ends))
	}
	if h.engine.Phase() != overscroll.PhaseIdle {
		t.Errorf("expected idle, got %v", h.engine.Phase())
	}
	if last := surf.DragModes[len(surf.DragModes)-1]; last {
		t.Error("expected drag mode switched off")
	}
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	surf := overscrolltest.NewSurface(200, 200, 200, 2000)
	h := newHarness(surf, nil)
	surf.Top = 100
	writes := surf.ScrollWrites

	h.engine.PointerMove(10, 10)
	if surf.ScrollWrites != writes || surf.Top != 100 {
		t.Error("expected stray move to be ignored")
	}
	if !h.engine.PointerUp(10, 10) {
		t.Error("expected stray release to report clickable")
	}
}

func TestPressShowsThumbsAndClickHidesThem(t *testing.T) {
	surf := overscrolltest.NewSurface(200, 200, 200, 2000)
	h := newHarness(surf, nil)
	thumb := surf.LiveThumb(overscroll.AxisY)
	if thumb.Opacity() != 0 {
		t.Fatalf("expected hidden thumb at rest, got %v", thumb.Opacity())
	}

	h.engine.PointerDown(10, 10)
	last := thumb.Fades[len(thumb.Fades)-1]
	if last.Opacity != overscroll.DefaultThumbOpacity || last.Duration != overscroll.DefaultFadeDuration {
		t.Errorf("expected fade to %v over %v, got %+v", overscroll.DefaultThumbOpacity, overscroll.DefaultFadeDuration, last)
	}

	h.engine.PointerUp(10, 10)
	if thumb.Opacity() != 0 {
		t.Errorf("expected thumb hidden after click, got %v", thumb.Opacity())
	}
}

func TestCaptureRearmsAfterConfirmation(t *testing.T) {
	surf := overscrolltest.NewSurface(200, 200, 200, 5000)
	h := newHarness(surf, nil)
	surf.Top = 2000

	h.engine.PointerDown(0, 300)
	for _, y := range []float64{290, 280, 270, 260, 250, 240} {
		h.engine.PointerMove(0, y)
	}
	s, ok := h.engine.Session()
	if !ok {
		t.Fatal("expected active session")
	}
	if s.Capture.Y != 240 || s.Capture.Countdown != overscroll.DefaultCaptureThreshold {
		t.Errorf("expected capture re-armed at y=240, got %+v", s.Capture)
	}
}
