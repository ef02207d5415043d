package layout

import "fmt"

// Optimize is the engine's single public entry point (spec §6). It walks
// node's subtree to a cost function, selects the segment active at node's
// own starting indentation, and reconstructs that segment's layout back
// into node and buf — both mutated in place.
//
// A node already marked AlreadyFormatted is passed through untouched, per
// spec §1's requirement that pre-formatted partitions survive this engine
// unchanged.
//
// Optimize surfaces no error return value (spec §7): contract violations
// panic with a LayoutError, recovered here and re-raised with context so a
// caller's own recover still sees a descriptive, wrapped error.
func Optimize(style Style, node *PartitionNode, buf TokenBuffer) {
	if node == nil {
		panic(ErrMissingLine)
	}
	if node.Policy == AlreadyFormatted {
		T().Debugf("optimize: node already formatted, passing through unchanged")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if le, ok := r.(LayoutError); ok {
				panic(fmt.Errorf("layout: optimize failed: %w", le))
			}
			panic(r)
		}
	}()
	fn := Walk(style, node)
	seg, ok := fn.ActiveAt(node.Indent)
	if !ok {
		panic(ErrNoLayoutChosen)
	}
	T().Debugf("optimize: chosen layout at column %d costs %.1f", node.Indent, seg.costAt(node.Indent))
	lines := Reconstruct(seg.Layout, node.Indent, buf)
	finalize(node, lines, node.Indent, buf)
}
