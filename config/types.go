// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: TOML document layout and conversion to engine options.

package config

import (
	"time"

	"github.com/framegrace/texeldrift/overscroll"
)

// File is the whole driftview.toml document.
type File struct {
	Overscroll Overscroll `toml:"overscroll"`
	View       View       `toml:"view"`
}

// Overscroll mirrors overscroll.Options with TOML-friendly types.
type Overscroll struct {
	ShowThumbs       bool    `toml:"show_thumbs"`
	Direction        string  `toml:"direction"`
	WheelDirection   string  `toml:"wheel_direction"`
	WheelDelta       float64 `toml:"wheel_delta"`
	ScrollDelta      float64 `toml:"scroll_delta"`
	OOB              bool    `toml:"oob"`
	OOBEasing        string  `toml:"oob_easing"`
	ScrollDurationMS int     `toml:"scroll_duration_ms"`
	WheelTimeoutMS   int     `toml:"wheel_timeout_ms"`
	OOBDurationMS    int     `toml:"oob_duration_ms"`
	FadeDurationMS   int     `toml:"fade_duration_ms"`
	FrameIntervalMS  int     `toml:"frame_interval_ms"`
	CaptureThreshold int     `toml:"capture_threshold"`
	ThumbThickness   float64 `toml:"thumb_thickness"`
	ThumbOpacity     float64 `toml:"thumb_opacity"`
}

// View holds presentation settings for the terminal viewer.
type View struct {
	Style      string `toml:"style"`
	ThumbColor string `toml:"thumb_color"`
	StatusLine bool   `toml:"status_line"`
}

// Options converts the section into engine options. Range checks are left
// to the engine, which normalises rather than rejects.
func (o Overscroll) Options() overscroll.Options {
	return overscroll.Options{
		ShowThumbs:       o.ShowThumbs,
		Direction:        overscroll.Direction(o.Direction),
		WheelDirection:   overscroll.Direction(o.WheelDirection),
		WheelDelta:       o.WheelDelta,
		ScrollDelta:      o.ScrollDelta,
		OOB:              o.OOB,
		OOBEasing:        o.OOBEasing,
		ScrollDuration:   ms(o.ScrollDurationMS),
		WheelTimeout:     ms(o.WheelTimeoutMS),
		OOBDuration:      ms(o.OOBDurationMS),
		FadeDuration:     ms(o.FadeDurationMS),
		FrameInterval:    ms(o.FrameIntervalMS),
		CaptureThreshold: o.CaptureThreshold,
		ThumbThickness:   o.ThumbThickness,
		ThumbOpacity:     o.ThumbOpacity,
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
