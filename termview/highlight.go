// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: termview/highlight.go
// Summary: Syntax-highlighted Documents via Chroma, with go-enry picking the language.

package termview

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
)

const defaultStyleName = "catppuccin-mocha"

// Highlight lays out src with token colours from the named Chroma style.
// The language comes from the file name and content; unknown input falls
// back to plain text.
func Highlight(filename string, src []byte, styleName string) (*Document, string, error) {
	style := chromaStyle(styleName)
	language := enry.GetLanguage(filename, src)
	text := string(src)

	lexer := chroma.Coalesce(getLexer(language, filename, text))
	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		return nil, "", fmt.Errorf("tokenise %s: %w", filename, err)
	}

	base := baseStyle(style)
	b := &docBuilder{}
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		b.write(tok.Value, tokenStyle(style.Get(tok.Type), base))
	}
	return b.finish(), lexer.Config().Name, nil
}

// BaseStyle returns the default text style of the named Chroma style.
func BaseStyle(styleName string) tcell.Style {
	return baseStyle(chromaStyle(styleName))
}

func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// getLexer prefers the detected language, then the file name, then content analysis.
func getLexer(language, filename, text string) chroma.Lexer {
	if language != "" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if filename != "" {
		if l := lexers.Match(filename); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

func baseStyle(style *chroma.Style) tcell.Style {
	st := tcell.StyleDefault
	bg := style.Get(chroma.Background)
	if bg.Background.IsSet() {
		st = st.Background(chromaColor(bg.Background))
	}
	if bg.Colour.IsSet() {
		st = st.Foreground(chromaColor(bg.Colour))
	}
	return st
}

func tokenStyle(entry chroma.StyleEntry, base tcell.Style) tcell.Style {
	st := base
	if entry.Colour.IsSet() {
		st = st.Foreground(chromaColor(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

func chromaColor(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}
