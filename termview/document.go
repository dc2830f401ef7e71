// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termview/document.go
// Summary: Styled cell grid scrolled by a Viewport.
// Notes: Wide runes occupy two cells; the second one is a continuation cell with Ch == 0.

package termview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TabWidth is the tab stop interval used when laying out text.
const TabWidth = 4

// Cell is one terminal cell of document content.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Document is immutable laid-out content.
type Document struct {
	Lines [][]Cell
	// Width is the widest line in cells.
	Width int
}

// NewDocument lays out plain text in a single style.
func NewDocument(text string, style tcell.Style) *Document {
	b := &docBuilder{}
	b.write(text, style)
	return b.finish()
}

// Height returns the number of lines.
func (d *Document) Height() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// At returns the cell at column x of line y.
func (d *Document) At(x, y int) (Cell, bool) {
	if d == nil || y < 0 || y >= len(d.Lines) || x < 0 {
		return Cell{}, false
	}
	line := d.Lines[y]
	if x >= len(line) {
		return Cell{}, false
	}
	return line[x], true
}

// Line returns line y as plain text.
func (d *Document) Line(y int) string {
	if d == nil || y < 0 || y >= len(d.Lines) {
		return ""
	}
	var sb strings.Builder
	for _, c := range d.Lines[y] {
		if c.Ch != 0 {
			sb.WriteRune(c.Ch)
		}
	}
	return sb.String()
}

// docBuilder accumulates styled runs into lines.
type docBuilder struct {
	lines [][]Cell
	cur   []Cell
}

func (b *docBuilder) write(text string, style tcell.Style) {
	for _, r := range text {
		switch r {
		case '\n':
			b.newline()
		case '\r':
		case '\t':
			n := TabWidth - len(b.cur)%TabWidth
			for i := 0; i < n; i++ {
				b.cur = append(b.cur, Cell{Ch: ' ', Style: style})
			}
		default:
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			b.cur = append(b.cur, Cell{Ch: r, Style: style})
			if w == 2 {
				b.cur = append(b.cur, Cell{Ch: 0, Style: style})
			}
		}
	}
}

func (b *docBuilder) newline() {
	b.lines = append(b.lines, b.cur)
	b.cur = nil
}

func (b *docBuilder) finish() *Document {
	if len(b.cur) > 0 || len(b.lines) == 0 {
		b.newline()
	}
	d := &Document{Lines: b.lines}
	for _, line := range d.Lines {
		if len(line) > d.Width {
			d.Width = len(line)
		}
	}
	return d
}
