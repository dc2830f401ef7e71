// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/easing.go
// Summary: Easing curves shared by drift, settle and fade animations.
// Notes: Curves map time progress [0,1] to value progress; overshooting curves may leave [0,1].

package anim

import (
	"math"
	"sort"
	"strings"
)

// EasingFunc maps time progress t in [0,1] to value progress.
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// Linear - constant speed
	Linear EasingFunc = func(t float64) float64 { return t }

	// Swing - the classic half-cosine curve
	Swing EasingFunc = func(t float64) float64 {
		return 0.5 - math.Cos(t*math.Pi)/2
	}

	// Smoothstep - S-curve with zero slope at both ends
	Smoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3 - 2*t)
	}

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseOutCubic - (t-1)^3 + 1, used for momentum drift
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - accelerate then decelerate
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		t1 := 2*t - 2
		return 1 + t1*t1*t1/2
	}

	// EaseOutBack - slight overshoot then settle
	EaseOutBack EasingFunc = func(t float64) float64 {
		c1 := 1.70158
		c3 := c1 + 1
		return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
	}

	// EaseOutElastic - elastic wobble, the default rubber-band settle
	EaseOutElastic EasingFunc = func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		c4 := (2 * math.Pi) / 3
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
	}

	// EaseOutBounce - bouncing ball
	EaseOutBounce EasingFunc = func(t float64) float64 {
		n1 := 7.5625
		d1 := 2.75
		switch {
		case t < 1/d1:
			return n1 * t * t
		case t < 2/d1:
			t -= 1.5 / d1
			return n1*t*t + 0.75
		case t < 2.5/d1:
			t -= 2.25 / d1
			return n1*t*t + 0.9375
		default:
			t -= 2.625 / d1
			return n1*t*t + 0.984375
		}
	}
)

var easings = map[string]EasingFunc{
	"linear":         Linear,
	"swing":          Swing,
	"smoothstep":     Smoothstep,
	"easeoutquad":    EaseOutQuad,
	"easeoutcubic":   EaseOutCubic,
	"cubiceaseout":   EaseOutCubic,
	"easeinoutcubic": EaseInOutCubic,
	"easeoutback":    EaseOutBack,
	"easeoutelastic": EaseOutElastic,
	"easeoutbounce":  EaseOutBounce,
}

// ByName returns the easing registered under name (case-insensitive).
// "spring" resolves to DefaultSpring. Returns nil if the name is unknown.
func ByName(name string) EasingFunc {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "spring" {
		return DefaultSpring()
	}
	return easings[key]
}

// Names lists the identifiers accepted by ByName.
func Names() []string {
	names := make([]string, 0, len(easings)+1)
	for name := range easings {
		names = append(names, name)
	}
	names = append(names, "spring")
	sort.Strings(names)
	return names
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
