package layout

import "fmt"

// PartitionPolicy selects the combinator strategy the tree walker applies
// to a partition-tree node's children (spec §4.7).
type PartitionPolicy int

// The closed set of partition policies the walker understands.
const (
	// OptimalFunctionCallLayout must have exactly two children: header and
	// arguments. It chooses between juxtaposing them on one line and
	// stacking the arguments, indented, under the header.
	OptimalFunctionCallLayout PartitionPolicy = iota
	// AppendFittingSubPartitions and FitOnLineElseExpand both reduce to Wrap.
	AppendFittingSubPartitions
	FitOnLineElseExpand
	// AlwaysExpand and TabularAlignment both reduce to Stack.
	AlwaysExpand
	TabularAlignment
	// AlreadyFormatted nodes were produced by an earlier pass (or by this
	// engine's own reconstructor) and must be passed through unchanged.
	AlreadyFormatted
)

func (p PartitionPolicy) String() string {
	switch p {
	case OptimalFunctionCallLayout:
		return "OptimalFunctionCallLayout"
	case AppendFittingSubPartitions:
		return "AppendFittingSubPartitions"
	case FitOnLineElseExpand:
		return "FitOnLineElseExpand"
	case AlwaysExpand:
		return "AlwaysExpand"
	case TabularAlignment:
		return "TabularAlignment"
	case AlreadyFormatted:
		return "AlreadyFormatted"
	default:
		return fmt.Sprintf("PartitionPolicy(%d)", int(p))
	}
}

// PartitionNode is a node of the input partition tree: a rose tree of
// unwrapped-line groupings. A leaf carries Line and has no children; an
// inner node carries Policy and Children. Optimize mutates a node's Line,
// Policy, Indent and Children in place once its subtree has been laid out.
type PartitionNode struct {
	Policy   PartitionPolicy
	Children []*PartitionNode
	Line     LineView // set on leaves, and on AlreadyFormatted nodes
	Indent   int  // absolute indentation; meaningful at the root passed to Optimize
}

// IsLeaf reports whether this node is an unwrapped line with no children.
func (n *PartitionNode) IsLeaf() bool {
	return len(n.Children) == 0
}
