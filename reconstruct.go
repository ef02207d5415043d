package layout

// emittedLine is one flat unwrapped line produced by the reconstructor:
// its indentation, the token range it covers, and the rendered column its
// content currently ends at (used to align a stack's later children under
// wherever this line left off, per spec §4.8).
type emittedLine struct {
	Indent int
	Start  int
	End    int
	Column int
}

type reconstructState struct {
	buf    TokenBuffer
	lines  []*emittedLine
	active *emittedLine
}

// Reconstruct walks the optimal LayoutTree and emits a flat sequence of
// unwrapped lines with correct indentation, starting at rootIndent (spec
// §4.8). It does not itself mutate the partition tree; see finalize for
// that.
func Reconstruct(tree *LayoutTree, rootIndent int, buf TokenBuffer) []*emittedLine {
	st := &reconstructState{buf: buf}
	reconstruct(tree, rootIndent, st)
	return st.lines
}

func reconstruct(tree *LayoutTree, indent int, st *reconstructState) {
	curIndent := indent + tree.Item.IndentationSpaces
	if tree.Item.IndentationSpaces != 0 && st.active != nil {
		T().Infof("indentation of %d dropped under an active line", tree.Item.IndentationSpaces)
	}
	switch tree.Item.Type {
	case LineItemType:
		reconstructLine(tree, curIndent, st)
	case JuxtapositionItemType:
		for _, child := range tree.Children {
			reconstruct(child, curIndent, st)
		}
	case StackItemType:
		reconstructStack(tree, curIndent, st)
	}
}

func reconstructLine(tree *LayoutTree, indent int, st *reconstructState) {
	ln := tree.Item.Line
	if ln == nil {
		panic(ErrMissingLine)
	}
	if st.active == nil {
		st.active = &emittedLine{Indent: indent, Start: ln.Start(), End: ln.End(), Column: indent + ln.Width()}
		st.buf.SetBreak(ln.Start(), MustWrap)
		st.lines = append(st.lines, st.active)
		return
	}
	if ln.End() > st.active.End {
		st.active.End = ln.End()
	}
	st.active.Column += tree.Item.SpacesBefore + ln.Width()
}

func reconstructStack(tree *LayoutTree, indent int, st *reconstructState) {
	n := len(tree.Children)
	if n == 0 {
		return
	}
	if n == 1 {
		reconstruct(tree.Children[0], indent, st)
		return
	}
	var subsequentIndent int
	if st.active == nil {
		subsequentIndent = indent
	} else {
		subsequentIndent = st.active.Column + tree.Item.SpacesBefore
	}
	reconstruct(tree.Children[0], indent, st)
	for _, child := range tree.Children[1:] {
		st.active = nil
		reconstruct(child, subsequentIndent, st)
	}
}

// finalize writes the reconstructed lines back into the partition tree, as
// spec §4.8's Finalization step describes: the node's own value becomes an
// unwrapped line spanning the whole reconstructed range, marked
// OptimalFunctionCallLayout so downstream passes skip it, and its children
// become one AlreadyFormatted node per emitted line.
func finalize(node *PartitionNode, lines []*emittedLine, rootIndent int, buf TokenBuffer) {
	if len(lines) == 0 {
		panic(ErrEmptyReconstruction)
	}
	node.Line = buf.MakeLine(lines[0].Start, lines[len(lines)-1].End)
	node.Indent = rootIndent
	node.Policy = OptimalFunctionCallLayout
	children := make([]*PartitionNode, len(lines))
	for i, ln := range lines {
		buf.SetBreak(ln.Start, MustWrap)
		for t := ln.Start + 1; t < ln.End; t++ {
			if buf.Break(t) == Undecided {
				buf.SetBreak(t, MustAppend)
			}
		}
		children[i] = &PartitionNode{
			Policy: AlreadyFormatted,
			Line:   buf.MakeLine(ln.Start, ln.End),
			Indent: ln.Indent,
		}
	}
	node.Children = children
}
