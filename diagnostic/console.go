/*
Package diagnostic supplies optional, non-hot-path renderers for the
layout engine's core types: a colorized console dump of a LayoutFunction's
segments, adapted from the teacher's styled/formatter.ConsoleFixedWidth
coloring scheme, and a Graphviz DOT dump of a LayoutTree, adapted from the
teacher's dotty.go. Neither renderer is used by Optimize itself.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer
*/
package diagnostic

import (
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/layout"
)

// ConsoleRenderer prints a LayoutFunction to a console, coloring segments
// that fit within the column limit differently from segments that already
// carry an over-limit penalty — the same role ConsoleFixedWidth.colors
// plays for styled text, retargeted from per-style coloring to
// per-segment-fitness coloring.
type ConsoleRenderer struct {
	Fits      *color.Color
	OverLimit *color.Color
}

// NewConsoleRenderer creates a renderer with a sensible default palette:
// green for segments with zero gradient (fit), red for segments that
// already charge an over-limit gradient.
func NewConsoleRenderer() *ConsoleRenderer {
	return &ConsoleRenderer{
		Fits:      color.New(color.FgGreen),
		OverLimit: color.New(color.FgRed),
	}
}

// Print writes one line per segment of fn to w, coloring the segment's
// annotation by whether its gradient already carries an over-limit
// penalty.
func (r *ConsoleRenderer) Print(fn layout.LayoutFunction, w io.Writer) {
	for _, s := range fn.Segments {
		c := r.Fits
		if s.Gradient > 0 {
			c = r.OverLimit
		}
		c.Fprintf(w, "%s\n", s.String())
	}
}
