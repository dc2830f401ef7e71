// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/task.go
// Summary: Frame-stepped eased tween with a cancel handle and an exactly-once finaliser.

package anim

import "time"

// DefaultFrame is the step interval used when TaskConfig.Frame is zero (~60 FPS).
const DefaultFrame = 16 * time.Millisecond

// TaskConfig describes a tween.
type TaskConfig struct {
	Duration time.Duration
	Frame    time.Duration
	Easing   EasingFunc
	// Step receives eased progress on every frame, including the final one.
	Step func(progress float64)
	// Finalize runs exactly once: completed is false when the task was cancelled.
	Finalize func(completed bool)
}

// Task is a running tween. It is driven entirely by its Scheduler.
type Task struct {
	sched  Scheduler
	cfg    TaskConfig
	start  time.Time
	timer  Timer
	done   bool
	frames int
}

// Start schedules the first frame of a tween and returns its handle.
// The first step happens one frame after Start, never synchronously.
func Start(s Scheduler, cfg TaskConfig) *Task {
	if cfg.Frame <= 0 {
		cfg.Frame = DefaultFrame
	}
	if cfg.Easing == nil {
		cfg.Easing = Linear
	}
	t := &Task{sched: s, cfg: cfg, start: s.Now()}
	t.timer = s.AfterFunc(cfg.Frame, t.tick)
	return t
}

// Cancel stops the tween where it is and runs the finaliser.
// Returns false if the task had already finished.
func (t *Task) Cancel() bool {
	if t == nil || t.done {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.finish(false)
	return true
}

// Done reports whether the finaliser has run.
func (t *Task) Done() bool {
	return t == nil || t.done
}

// Frames returns the number of steps applied so far.
func (t *Task) Frames() int {
	return t.frames
}

func (t *Task) tick() {
	if t.done {
		return
	}
	progress := 1.0
	if t.cfg.Duration > 0 {
		progress = clamp01(float64(t.sched.Now().Sub(t.start)) / float64(t.cfg.Duration))
	}
	if t.cfg.Step != nil {
		t.cfg.Step(t.cfg.Easing(progress))
	}
	t.frames++
	if t.done {
		return
	}
	if progress >= 1 {
		t.finish(true)
		return
	}
	t.timer = t.sched.AfterFunc(t.cfg.Frame, t.tick)
}

func (t *Task) finish(completed bool) {
	t.done = true
	if t.cfg.Finalize != nil {
		t.cfg.Finalize(completed)
	}
}
