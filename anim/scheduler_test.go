// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package anim

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualSchedulerFiresInDeadlineOrder(t *testing.T) {
	s := NewManualScheduler(epoch)
	var order []int
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	s.AfterFunc(20*time.Millisecond, func() { order = append(order, 2) })

	s.Advance(15 * time.Millisecond)
	if len(order) != 1 || order[0] != 1 {
		t.Fatalf("expected only first timer to fire, got %v", order)
	}
	s.Advance(20 * time.Millisecond)
	if len(order) != 3 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected deadline order, got %v", order)
	}
	if !s.Now().Equal(epoch.Add(35 * time.Millisecond)) {
		t.Errorf("expected clock at +35ms, got %v", s.Now().Sub(epoch))
	}
}

func TestManualSchedulerStop(t *testing.T) {
	s := NewManualScheduler(epoch)
	fired := false
	timer := s.AfterFunc(time.Millisecond, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("expected first Stop to succeed")
	}
	if timer.Stop() {
		t.Error("expected second Stop to report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", s.Pending())
	}
}

func TestManualSchedulerChainedCallbacks(t *testing.T) {
	s := NewManualScheduler(epoch)
	count := 0
	var step func()
	step = func() {
		count++
		if count < 5 {
			s.AfterFunc(10*time.Millisecond, step)
		}
	}
	s.AfterFunc(10*time.Millisecond, step)
	s.Flush(time.Second)
	if count != 5 {
		t.Errorf("expected 5 chained callbacks, got %d", count)
	}
}
