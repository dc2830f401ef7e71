// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/scheduler.go
// Summary: Timer abstraction for cooperative, single-threaded animation.
// Notes: Hosts must run AfterFunc callbacks on the same goroutine that delivers input events.

package anim

import (
	"sort"
	"time"
)

// Timer is a pending callback that can be stopped before it fires.
type Timer interface {
	// Stop prevents the callback from running. Returns false if it already ran or was stopped.
	Stop() bool
}

// Scheduler supplies time and deferred callbacks to animations.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// ManualScheduler is a virtual clock. Time only moves when Advance is called,
// and due callbacks run synchronously inside Advance in deadline order.
type ManualScheduler struct {
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler creates a virtual clock starting at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Time {
	return s.now
}

// AfterFunc registers fn to run once the virtual clock passes now+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{at: s.now.Add(d), seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that becomes due.
// Callbacks scheduled by callbacks also fire if they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		if next.at.After(s.now) {
			s.now = next.at
		}
		next.fired = true
		next.fn()
	}
	s.now = target
}

// Pending returns the number of callbacks still waiting to fire.
func (s *ManualScheduler) Pending() int {
	s.compact()
	return len(s.timers)
}

// Flush advances until no callbacks remain, or until limit of virtual time has passed.
func (s *ManualScheduler) Flush(limit time.Duration) {
	deadline := s.now.Add(limit)
	for s.Pending() > 0 {
		sort.Slice(s.timers, func(i, j int) bool { return s.timers[i].at.Before(s.timers[j].at) })
		at := s.timers[0].at
		if at.After(deadline) {
			return
		}
		s.Advance(at.Sub(s.now))
	}
}

func (s *ManualScheduler) nextDue(target time.Time) *manualTimer {
	s.compact()
	var best *manualTimer
	for _, t := range s.timers {
		if t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *ManualScheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}
