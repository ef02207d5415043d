/*
Package token supplies a width-aware token model for the layout engine.

The engine itself treats an unwrapped line's rendered width as a given
scalar (spec §3's "computed length"). This package computes that scalar
from the underlying source text, using the same East-Asian-width-aware
display-width machinery the teacher package uses for prose text
(uax11.StringWidth), generalized here from whole paragraphs to individual
source tokens.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer
*/
package token

import (
	"github.com/npillmayer/layout"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Token is one lexical unit of preformatted source text: its text, the
// number of spaces required before it (a spacing-rule annotation consumed
// from upstream, not computed here), and the break decision the
// reconstructor settles on for the boundary preceding it.
type Token struct {
	Text         string
	SpacesBefore int
	Break        layout.BreakDecision
}

// DisplayWidth returns the column width of s under context, using
// East-Asian-width-aware grapheme measurement rather than a byte or rune
// count.
func DisplayWidth(s string, context *uax11.Context) int {
	if context == nil {
		context = uax11.LatinContext
	}
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Width is the rendered-column-width monoid value accumulated over a run
// of tokens, the same summarize-then-combine shape as the teacher's
// chunk.Summary/chunk.Monoid, retargeted from byte/char/line counts to
// display columns.
type Width struct {
	Columns int
}

// WidthMonoid combines Width values accumulated while walking a token run.
type WidthMonoid struct{}

// Zero returns the neutral Width value.
func (WidthMonoid) Zero() Width { return Width{} }

// Add combines two Width values.
func (WidthMonoid) Add(left, right Width) Width {
	return Width{Columns: left.Columns + right.Columns}
}

// Buffer is the preformat token buffer: an ordered slice of Tokens plus
// the display-width context used to measure them. It implements
// layout.TokenBuffer.
type Buffer struct {
	Tokens  []*Token
	Context *uax11.Context
}

// NewBuffer creates a Buffer over tokens, measuring widths with context
// (uax11.LatinContext if nil).
func NewBuffer(tokens []*Token, context *uax11.Context) *Buffer {
	if context == nil {
		context = uax11.LatinContext
	}
	return &Buffer{Tokens: tokens, Context: context}
}

// Break reports the current break decision of the token at tokenIndex.
func (b *Buffer) Break(tokenIndex int) layout.BreakDecision {
	return b.Tokens[tokenIndex].Break
}

// SetBreak sets the break decision of the token at tokenIndex. Setting
// MustWrap also resets the token's required leading spacing to zero, since
// indentation is applied separately from inter-token spacing.
func (b *Buffer) SetBreak(tokenIndex int, decision layout.BreakDecision) {
	b.Tokens[tokenIndex].Break = decision
	if decision == layout.MustWrap {
		b.Tokens[tokenIndex].SpacesBefore = 0
	}
}

// MakeLine returns a Line view over the token range [start, end).
func (b *Buffer) MakeLine(start, end int) layout.LineView {
	return Line{buf: b, start: start, end: end}
}

// Line is a contiguous token range with a display width computed from its
// underlying tokens, implementing layout.LineView.
type Line struct {
	buf        *Buffer
	start, end int
}

// Start returns the index of the first token covered by the line.
func (l Line) Start() int { return l.start }

// End returns one past the index of the last token covered by the line.
func (l Line) End() int { return l.end }

// SpacesBefore reports the spacing annotation on the line's first token.
func (l Line) SpacesBefore() int {
	if l.start >= l.end {
		return 0
	}
	return l.buf.Tokens[l.start].SpacesBefore
}

// MustWrap reports whether the line's first token was already annotated
// as forcing a line break.
func (l Line) MustWrap() bool {
	if l.start >= l.end {
		return false
	}
	return l.buf.Tokens[l.start].Break == layout.MustWrap
}

// Width sums the rendered width of every token in the line plus each
// token's required leading spacing, except for the very first token,
// whose spacing is supplied by whatever the line is joined to (a
// juxtaposition's SpacesBefore) rather than by the line itself.
func (l Line) Width() int {
	w := WidthMonoid{}
	total := w.Zero()
	for i := l.start; i < l.end; i++ {
		tok := l.buf.Tokens[i]
		cw := Width{Columns: DisplayWidth(tok.Text, l.buf.Context)}
		if i > l.start {
			cw.Columns += tok.SpacesBefore
		}
		total = w.Add(total, cw)
	}
	return total.Columns
}
