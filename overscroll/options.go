// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/options.go
// Summary: Per-surface overscroll configuration, defaults and normalisation.

package overscroll

import (
	"log"
	"math"
	"time"

	"github.com/framegrace/texeldrift/anim"
)

// Direction restricts which axes a gesture may move.
type Direction string

const (
	DirectionMulti      Direction = "multi"
	DirectionVertical   Direction = "vertical"
	DirectionHorizontal Direction = "horizontal"
)

// Allows reports whether drag input may move the given axis.
func (d Direction) Allows(axis Axis) bool {
	switch d {
	case DirectionVertical:
		return axis == AxisY
	case DirectionHorizontal:
		return axis == AxisX
	default:
		return true
	}
}

// Default tuning constants.
const (
	DefaultScrollDuration   = 800 * time.Millisecond
	DefaultWheelTimeout     = 400 * time.Millisecond
	DefaultOOBDuration      = 400 * time.Millisecond
	DefaultFadeDuration     = 200 * time.Millisecond
	DefaultCaptureThreshold = 3
	DefaultWheelDelta       = 20
	DefaultScrollDelta      = 5.9
	DefaultThumbThickness   = 8
	DefaultThumbOpacity     = 0.7
	DefaultOOBEasing        = "easeOutElastic"
)

// Options configures an Engine. Build from DefaultOptions and override fields.
type Options struct {
	// ShowThumbs creates the two indicator thumbs.
	ShowThumbs bool
	// Direction restricts drag axes; wheel input ignores it.
	Direction Direction
	// WheelDirection is the axis moved by wheel ticks (vertical or horizontal).
	WheelDirection Direction
	// WheelDelta is the distance moved per wheel tick.
	WheelDelta float64
	// ScrollDelta scales release velocity into drift distance.
	ScrollDelta float64
	// OOB enables elastic overshoot past the scrollable edges.
	OOB bool
	// OOBEasing names the curve used for the rubber-band settle (see anim.ByName).
	OOBEasing string
	// OnDriftEnd runs once per finished drift, wheel burst or cancelled animation.
	OnDriftEnd func(State)

	ScrollDuration   time.Duration
	WheelTimeout     time.Duration
	OOBDuration      time.Duration
	FadeDuration     time.Duration
	FrameInterval    time.Duration
	CaptureThreshold int
	ThumbThickness   float64
	ThumbOpacity     float64
}

// DefaultOptions returns the stock overscroll tuning.
func DefaultOptions() Options {
	return Options{
		ShowThumbs:       true,
		Direction:        DirectionMulti,
		WheelDirection:   DirectionVertical,
		WheelDelta:       DefaultWheelDelta,
		ScrollDelta:      DefaultScrollDelta,
		OOB:              true,
		OOBEasing:        DefaultOOBEasing,
		ScrollDuration:   DefaultScrollDuration,
		WheelTimeout:     DefaultWheelTimeout,
		OOBDuration:      DefaultOOBDuration,
		FadeDuration:     DefaultFadeDuration,
		FrameInterval:    anim.DefaultFrame,
		CaptureThreshold: DefaultCaptureThreshold,
		ThumbThickness:   DefaultThumbThickness,
		ThumbOpacity:     DefaultThumbOpacity,
	}
}

// normalized returns a copy with out-of-range values corrected instead of rejected.
func (o Options) normalized() Options {
	if o.WheelDelta < 0 || o.ScrollDelta < 0 {
		log.Printf("Overscroll: negative deltas normalised (wheel=%v scroll=%v)", o.WheelDelta, o.ScrollDelta)
	}
	o.WheelDelta = math.Abs(o.WheelDelta)
	o.ScrollDelta = math.Abs(o.ScrollDelta)

	switch o.Direction {
	case DirectionMulti, DirectionVertical, DirectionHorizontal:
	case "":
		o.Direction = DirectionMulti
	default:
		log.Printf("Overscroll: unknown direction %q, using %q", o.Direction, DirectionMulti)
		o.Direction = DirectionMulti
	}
	switch o.WheelDirection {
	case DirectionVertical, DirectionHorizontal:
	case "":
		o.WheelDirection = DirectionVertical
	default:
		log.Printf("Overscroll: unknown wheel direction %q, using %q", o.WheelDirection, DirectionVertical)
		o.WheelDirection = DirectionVertical
	}
	if o.OOBEasing == "" || anim.ByName(o.OOBEasing) == nil {
		if o.OOBEasing != "" {
			log.Printf("Overscroll: unknown easing %q, using %q", o.OOBEasing, DefaultOOBEasing)
		}
		o.OOBEasing = DefaultOOBEasing
	}

	if o.ScrollDuration <= 0 {
		o.ScrollDuration = DefaultScrollDuration
	}
	if o.WheelTimeout <= 0 {
		o.WheelTimeout = DefaultWheelTimeout
	}
	if o.OOBDuration <= 0 {
		o.OOBDuration = DefaultOOBDuration
	}
	if o.FadeDuration < 0 {
		o.FadeDuration = 0
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = anim.DefaultFrame
	}
	if o.CaptureThreshold <= 0 {
		o.CaptureThreshold = DefaultCaptureThreshold
	}
	o.ThumbThickness = math.Abs(o.ThumbThickness)
	if o.ThumbThickness == 0 {
		o.ThumbThickness = DefaultThumbThickness
	}
	if o.ThumbOpacity <= 0 || o.ThumbOpacity > 1 {
		o.ThumbOpacity = DefaultThumbOpacity
	}
	return o
}

func (o Options) wheelAxis() Axis {
	if o.WheelDirection == DirectionHorizontal {
		return AxisX
	}
	return AxisY
}
