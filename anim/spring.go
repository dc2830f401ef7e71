// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/spring.go
// Summary: Damped-spring easing sampled from a harmonica spring simulation.

package anim

import (
	"sync"

	"github.com/charmbracelet/harmonica"
)

const springSamples = 120

var (
	defaultSpringOnce sync.Once
	defaultSpring     EasingFunc
)

// DefaultSpring returns the shared under-damped spring used for "spring" settles.
func DefaultSpring() EasingFunc {
	defaultSpringOnce.Do(func() {
		defaultSpring = SpringEasing(8.0, 0.35)
	})
	return defaultSpring
}

// SpringEasing simulates a spring pulled from 0 to 1 over one second of
// simulated time and returns the trajectory as an easing curve.
// The last sample is pinned to 1 so animations always land on their target.
func SpringEasing(angularFrequency, dampingRatio float64) EasingFunc {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), angularFrequency, dampingRatio)

	table := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		t = clamp01(t)
		f := t * springSamples
		i := int(f)
		if i >= springSamples {
			return 1
		}
		frac := f - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}
