/*
Package layout implements the optimal-layout engine of a source-code
formatter.

Given a tree of partially formatted token groups — each node tagged with a
partitioning policy — the engine selects the line-breaking and indentation
arrangement that minimizes a piecewise-linear cost function of starting
column, following Yelland's "A New Approach to Optimal Code Formatting".

Candidate arrangements are represented as LayoutFunctions: ordered lists of
segments ("knots"), each owning a starting column, a candidate LayoutTree,
the rendered span of its first line, and a linear cost valid up to the next
segment's column. Six combinators (Line, Indent, Juxtaposition, Stack,
Choice, Wrap) build and combine these functions bottom-up over an input
partition tree; the reconstructor then walks the winning LayoutTree back
into a flat sequence of unwrapped lines.

The package does not lex, parse, or build partition trees — those are
supplied by the caller. It also does not perform any I/O: Optimize mutates
its arguments in place and returns nothing.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package layout

import (
	"math"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Infinity is the sentinel for an unbounded column. It must never be
// multiplied; only compared.
const Infinity = math.MaxInt
