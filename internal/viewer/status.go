// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/viewer/status.go
// Summary: One-line status bar: position, engine phase and drift counter.

package viewer

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeldrift/overscroll"
	"github.com/framegrace/texeldrift/termview"
)

type statusInfo struct {
	file    string
	lexer   string
	left    float64
	top     float64
	lines   int
	phase   overscroll.Phase
	drag    bool
	drifts  int
	clicked int
}

func statusText(si statusInfo) string {
	parts := []string{
		fmt.Sprintf(" %s [%s]", si.file, si.lexer),
		fmt.Sprintf("ln %d/%d col %d", int(si.top)+1, si.lines, int(si.left)+1),
		si.phase.String(),
	}
	if si.drag {
		parts = append(parts, "dragging")
	}
	parts = append(parts, fmt.Sprintf("drifts %d", si.drifts))
	if si.clicked >= 0 {
		parts = append(parts, fmt.Sprintf("clicked ln %d", si.clicked+1))
	}
	return strings.Join(parts, " | ")
}

var statusStyle = tcell.StyleDefault.Reverse(true)

func drawStatus(c termview.Canvas, y, width int, text string) {
	text = runewidth.Truncate(text, width, "…")
	x := 0
	for _, r := range text {
		c.SetContent(x, y, r, nil, statusStyle)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		c.SetContent(x, y, ' ', nil, statusStyle)
	}
}
