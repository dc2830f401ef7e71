// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/timeline.go
// Summary: Per-key eased value timelines, used for fire-and-forget thumb fades.
// Usage: AnimateTo retargets a key from wherever it currently is; Get samples it.

package anim

import (
	"sync"
	"time"
)

// AnimateOptions configures a timeline transition.
type AnimateOptions struct {
	Duration time.Duration // 0 jumps straight to the target
	Easing   EasingFunc    // nil uses the timeline default
}

type keyState struct {
	start     float64
	target    float64
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

// Timeline holds independent animated values keyed by any comparable value.
type Timeline struct {
	mu             sync.Mutex
	states         map[interface{}]*keyState
	clock          func() time.Time
	defaultEasing  EasingFunc
	defaultInitial float64
}

// NewTimeline creates a timeline whose unknown keys read as initial.
// clock may be nil, in which case wall time is used.
func NewTimeline(initial float64, clock func() time.Time) *Timeline {
	if clock == nil {
		clock = time.Now
	}
	return &Timeline{
		states:         make(map[interface{}]*keyState),
		clock:          clock,
		defaultEasing:  Smoothstep,
		defaultInitial: initial,
	}
}

// AnimateTo starts a transition of key towards target and returns the value at this moment.
func (tl *Timeline) AnimateTo(key interface{}, target float64, duration time.Duration) float64 {
	return tl.AnimateToWithOptions(key, target, AnimateOptions{Duration: duration})
}

// AnimateToWithOptions starts a transition with a custom easing.
func (tl *Timeline) AnimateToWithOptions(key interface{}, target float64, opts AnimateOptions) float64 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	now := tl.clock()
	current := tl.defaultInitial
	if state := tl.states[key]; state != nil {
		current = tl.valueLocked(state, now)
	}

	easing := opts.Easing
	if easing == nil {
		easing = tl.defaultEasing
	}
	state := &keyState{
		start:     current,
		target:    target,
		startTime: now,
		duration:  opts.Duration,
		easing:    easing,
	}
	if opts.Duration <= 0 || current == target {
		state.start = target
		state.duration = 0
	}
	tl.states[key] = state
	return state.start
}

// Get samples the current value of key.
func (tl *Timeline) Get(key interface{}) float64 {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	state := tl.states[key]
	if state == nil {
		return tl.defaultInitial
	}
	return tl.valueLocked(state, tl.clock())
}

// IsAnimating reports whether key is still moving.
func (tl *Timeline) IsAnimating(key interface{}) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	state := tl.states[key]
	return state != nil && tl.movingLocked(state, tl.clock())
}

// HasActiveAnimations reports whether any key is still moving.
func (tl *Timeline) HasActiveAnimations() bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	now := tl.clock()
	for _, state := range tl.states {
		if tl.movingLocked(state, now) {
			return true
		}
	}
	return false
}

// Reset forgets key.
func (tl *Timeline) Reset(key interface{}) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}

// Clear forgets every key.
func (tl *Timeline) Clear() {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.states = make(map[interface{}]*keyState)
}

// Must be called with lock held.
func (tl *Timeline) movingLocked(state *keyState, now time.Time) bool {
	return state.duration > 0 && now.Sub(state.startTime) < state.duration
}

// Must be called with lock held.
func (tl *Timeline) valueLocked(state *keyState, now time.Time) float64 {
	if state.duration <= 0 {
		return state.target
	}
	if now.Before(state.startTime) {
		return state.start
	}
	elapsed := now.Sub(state.startTime)
	if elapsed >= state.duration {
		return state.target
	}
	progress := clamp01(float64(elapsed) / float64(state.duration))
	return state.start + (state.target-state.start)*state.easing(progress)
}
