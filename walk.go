package layout

// Walk walks the input partition tree bottom-up, dispatching on each
// node's partition policy to the appropriate combinator chain, and
// produces a single cost function for the whole subtree (spec §4.4 / §2
// item 4).
func Walk(style Style, node *PartitionNode) LayoutFunction {
	if node == nil {
		panic(ErrMissingLine)
	}
	if node.IsLeaf() {
		if node.Line == nil {
			panic(ErrMissingLine)
		}
		return Line(style, node.Line)
	}
	switch node.Policy {
	case OptimalFunctionCallLayout:
		if len(node.Children) != 2 {
			panic(ErrWrongChildCount)
		}
		header := Walk(style, node.Children[0])
		args := Walk(style, node.Children[1])
		indentedArgs := Indent(style, args, style.WrapSpaces)
		stacked := Stack(style, header, indentedArgs)
		if firstSegmentMustWrap(args) {
			return stacked
		}
		return Choice(Juxtaposition(style, header, args), stacked)

	case AppendFittingSubPartitions, FitOnLineElseExpand:
		return Wrap(style, walkChildren(style, node)...)

	case AlwaysExpand, TabularAlignment:
		return Stack(style, walkChildren(style, node)...)

	case AlreadyFormatted:
		if node.Line == nil {
			panic(ErrMissingLine)
		}
		return Line(style, node.Line)

	default:
		T().Errorf("walk: %v", ErrUnsupportedPolicy)
		panic(ErrUnsupportedPolicy)
	}
}

func walkChildren(style Style, node *PartitionNode) []LayoutFunction {
	fns := make([]LayoutFunction, len(node.Children))
	for i, child := range node.Children {
		fns[i] = Walk(style, child)
	}
	return fns
}

// firstSegmentMustWrap reports whether a cost function's leading segment
// carries must_wrap — spec §9's Open Question treats must_wrap as a
// property of the function's first segment rather than re-scanning later
// segments, and documents divergent semantics here rather than silently
// picking one: if args never presents a non-wrapping leading alternative,
// OptimalFunctionCallLayout always stacks, matching "args begins with a
// construct that forces a line break" (e.g. a block argument).
func firstSegmentMustWrap(f LayoutFunction) bool {
	if f.IsEmpty() {
		return false
	}
	return f.Segments[0].Layout.Item.MustWrap
}
