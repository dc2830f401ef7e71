// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"testing"
	"time"
)

func TestTimelineFade(t *testing.T) {
	s := NewManualScheduler(epoch)
	tl := NewTimeline(0, s.Now)

	tl.AnimateToWithOptions("thumb", 0.7, AnimateOptions{Duration: 200 * time.Millisecond, Easing: Linear})
	if !tl.IsAnimating("thumb") {
		t.Fatal("expected thumb to be animating")
	}
	s.Advance(100 * time.Millisecond)
	if got := tl.Get("thumb"); got < 0.34 || got > 0.36 {
		t.Errorf("expected ~0.35 halfway, got %v", got)
	}
	s.Advance(200 * time.Millisecond)
	if got := tl.Get("thumb"); got != 0.7 {
		t.Errorf("expected 0.7 at rest, got %v", got)
	}
	if tl.HasActiveAnimations() {
		t.Error("expected no active animations")
	}
}

func TestTimelineRetargetFromCurrent(t *testing.T) {
	s := NewManualScheduler(epoch)
	tl := NewTimeline(0, s.Now)
	tl.AnimateToWithOptions("k", 1, AnimateOptions{Duration: 100 * time.Millisecond, Easing: Linear})
	s.Advance(50 * time.Millisecond)

	start := tl.AnimateToWithOptions("k", 0, AnimateOptions{Duration: 100 * time.Millisecond, Easing: Linear})
	if start < 0.49 || start > 0.51 {
		t.Errorf("expected retarget to start from ~0.5, got %v", start)
	}
}

func TestTimelineInstantJump(t *testing.T) {
	tl := NewTimeline(0, nil)
	if got := tl.AnimateTo("k", 0.5, 0); got != 0.5 {
		t.Errorf("expected immediate jump to 0.5, got %v", got)
	}
	tl.Reset("k")
	if got := tl.Get("k"); got != 0 {
		t.Errorf("expected reset key to read initial value, got %v", got)
	}
}
