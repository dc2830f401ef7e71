// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overscroll/session.go
// Summary: Per-gesture state, created on pointer-down and dropped on pointer-up.

package overscroll

// Phase is the drag state machine's state.
type Phase int

const (
	// PhaseIdle means nothing drives the offset.
	PhaseIdle Phase = iota
	// PhaseArmed means the pointer is down but the gesture is not yet a drag.
	PhaseArmed
	// PhaseDragging means the gesture crossed the confirmation threshold.
	PhaseDragging
	// PhaseSettling means a drift or rubber-band tween is running.
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Point is a pointer position.
type Point struct {
	X float64
	Y float64
}

func (p Point) axis(a Axis) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Capture is the sample velocity is measured from.
type Capture struct {
	Point
	// Countdown is the number of moves left before the next confirmation.
	Countdown int
}

// DragSession is the transient state of one pointer gesture.
type DragSession struct {
	Position Point
	Capture  Capture
	// Margins is nil unless elastic overshoot is enabled.
	Margins *Margins
}

func newDragSession(p Point, threshold int, oob bool) *DragSession {
	s := &DragSession{
		Position: p,
		Capture:  Capture{Point: p, Countdown: threshold},
	}
	if oob {
		s.Margins = &Margins{}
	}
	return s
}

// advance records a move and returns true when the countdown elapsed.
// The capture is then re-taken at p so velocity reflects the latest window.
func (s *DragSession) advance(p Point, threshold int) bool {
	s.Position = p
	s.Capture.Countdown--
	if s.Capture.Countdown > 0 {
		return false
	}
	s.Capture = Capture{Point: p, Countdown: threshold}
	return true
}
