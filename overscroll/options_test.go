// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package overscroll_test

import (
	"testing"

	"github.com/framegrace/texeldrift/overscroll"
	"github.com/framegrace/texeldrift/overscroll/overscrolltest"
)

func TestDefaultOptions(t *testing.T) {
	o := overscroll.DefaultOptions()
	if !o.ShowThumbs || !o.OOB {
		t.Error("expected thumbs and oob on by default")
	}
	if o.Direction != overscroll.DirectionMulti || o.WheelDirection != overscroll.DirectionVertical {
		t.Errorf("unexpected directions %q/%q", o.Direction, o.WheelDirection)
	}
	if o.WheelDelta != 20 || o.ScrollDelta != 5.9 {
		t.Errorf("unexpected deltas %v/%v", o.WheelDelta, o.ScrollDelta)
	}
}

func TestOptionsNormalised(t *testing.T) {
	surf := overscrolltest.NewSurface(200, 200, 200, 2000)
	h := newHarness(surf, func(o *overscroll.Options) {
		o.WheelDelta = -20
		o.ScrollDelta = -3
		o.Direction = "diagonal"
		o.WheelDirection = ""
		o.OOBEasing = "wobble"
		o.ScrollDuration = 0
		o.CaptureThreshold = -1
		o.ThumbThickness = -4
		o.ThumbOpacity = 3
	})

	o := h.engine.Options()
	if o.WheelDelta != 20 || o.ScrollDelta != 3 {
		t.Errorf("expected absolute deltas, got %v/%v", o.WheelDelta, o.ScrollDelta)
	}
	if o.Direction != overscroll.DirectionMulti || o.WheelDirection != overscroll.DirectionVertical {
		t.Errorf("expected fallback directions, got %q/%q", o.Direction, o.WheelDirection)
	}
	if o.OOBEasing != overscroll.DefaultOOBEasing {
		t.Errorf("expected default easing, got %q", o.OOBEasing)
	}
	if o.ScrollDuration != overscroll.DefaultScrollDuration || o.CaptureThreshold != overscroll.DefaultCaptureThreshold {
		t.Errorf("expected default duration/threshold, got %v/%d", o.ScrollDuration, o.CaptureThreshold)
	}
	if o.ThumbThickness != 4 || o.ThumbOpacity != overscroll.DefaultThumbOpacity {
		t.Errorf("expected thickness 4 and default opacity, got %v/%v", o.ThumbThickness, o.ThumbOpacity)
	}

	surf.Top = 1000
	h.engine.Wheel(overscroll.WheelEvent{Ticks: 1})
	if surf.Top != 980 {
		t.Errorf("expected normalised wheel delta to scroll to 980, got %v", surf.Top)
	}
}

func TestDirectionAllows(t *testing.T) {
	if overscroll.DirectionVertical.Allows(overscroll.AxisX) || !overscroll.DirectionVertical.Allows(overscroll.AxisY) {
		t.Error("vertical should allow only y")
	}
	if !overscroll.DirectionHorizontal.Allows(overscroll.AxisX) || overscroll.DirectionHorizontal.Allows(overscroll.AxisY) {
		t.Error("horizontal should allow only x")
	}
	if !overscroll.DirectionMulti.Allows(overscroll.AxisX) || !overscroll.DirectionMulti.Allows(overscroll.AxisY) {
		t.Error("multi should allow both")
	}
}
