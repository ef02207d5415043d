package layout

import (
	"os"

	"golang.org/x/term"
)

// Style is an immutable configuration for the layout engine.
//
// All fields are plain numbers rather than a richer settings object,
// mirroring how little configuration the combinators actually need: a
// target width, two indentation steps, and two cost coefficients.
type Style struct {
	ColumnLimit            int // hard target width, in columns
	IndentationSpaces      int // base indent step
	WrapSpaces             int // additional indent for wrapped arguments
	OverColumnLimitPenalty int // cost per column beyond ColumnLimit
	LineBreakPenalty       int // cost per newline introduced by Stack
}

// DefaultStyle is a reasonable starting point for callers that have no
// stronger preference.
var DefaultStyle = Style{
	ColumnLimit:            80,
	IndentationSpaces:      2,
	WrapSpaces:             4,
	OverColumnLimitPenalty: 100,
	LineBreakPenalty:       2,
}

// NewStyle creates a Style, validating that every parameter is within its
// domain (spec §3: column_limit, indentation_spaces, wrap_spaces ≥ 0;
// penalties ≥ 0).
func NewStyle(columnLimit, indentationSpaces, wrapSpaces, overColumnLimitPenalty, lineBreakPenalty int) Style {
	if columnLimit < 0 || indentationSpaces < 0 || wrapSpaces < 0 ||
		overColumnLimitPenalty < 0 || lineBreakPenalty < 0 {
		panic(ErrNegativeIndentation)
	}
	return Style{
		ColumnLimit:            columnLimit,
		IndentationSpaces:      indentationSpaces,
		WrapSpaces:             wrapSpaces,
		OverColumnLimitPenalty: overColumnLimitPenalty,
		LineBreakPenalty:       lineBreakPenalty,
	}
}

// StyleFromTerminal probes the current terminal's width to pick a sensible
// ColumnLimit, falling back to DefaultStyle.ColumnLimit when stdout is not
// a terminal. This mirrors the teacher's formatter.ConfigFromTerminal
// heuristic for Config.LineWidth.
func StyleFromTerminal() Style {
	style := DefaultStyle
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && w > 0 {
			style.ColumnLimit = w
		}
	}
	return style
}
