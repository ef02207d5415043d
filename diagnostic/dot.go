package diagnostic

import (
	"fmt"
	"io"

	"github.com/npillmayer/layout"
)

// WriteDOT renders a LayoutTree in Graphviz DOT format, generalizing the
// teacher's Cord2Dot node/edge table-building from cord leaf/inner nodes
// to Line/Juxtaposition/Stack layout nodes.
func WriteDOT(tree *layout.LayoutTree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := map[*layout.LayoutTree]int{}
	next := 1
	nodelist, edgelist := "", ""
	var walk func(n *layout.LayoutTree)
	walk = func(n *layout.LayoutTree) {
		if _, ok := ids[n]; ok {
			return
		}
		ids[n] = next
		id := next
		next++
		nodelist += fmt.Sprintf("\"%d\" [label=%q %s];\n", id, n.Item.String(), dotStyle(n))
		for _, child := range n.Children {
			walk(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids[child])
		}
	}
	walk(tree)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotStyle(n *layout.LayoutTree) string {
	s := ",style=filled"
	if n.Item.Type == layout.LineItemType {
		s += ",shape=box,fillcolor=\"#a3d7e4\""
	} else {
		s += ",shape=circle,fillcolor=\"#CCDDFF\""
	}
	return s
}
