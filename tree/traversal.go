package tree

// Traversal selects the order in which a tree's items are visited.
type Traversal int

const (
	// TraverseInOrder visits the left subtree, then the node,
	// then the right subtree. For a search tree this is sorted order.
	TraverseInOrder Traversal = iota
	// TraversePreOrder visits the node, then the left subtree,
	// then the right subtree.
	TraversePreOrder
	// TraversePostOrder visits the left subtree, then the right subtree,
	// then the node.
	TraversePostOrder
	// TraverseLevelOrder visits all nodes of a level, left to right,
	// before going to the next level, starting from the root.
	TraverseLevelOrder
	// TraverseReverseOrder visits the right subtree, then the node,
	// then the left subtree. For a search tree this is descending order.
	TraverseReverseOrder
)

func (t Traversal) String() string {
	switch t {
	case TraverseInOrder:
		return "in"
	case TraversePreOrder:
		return "pre"
	case TraversePostOrder:
		return "post"
	case TraverseLevelOrder:
		return "level"
	case TraverseReverseOrder:
		return "reverse"
	default:
		return "<invalid tree.Traversal>"
	}
}

// ParseTraversal is the inverse of Traversal.String.
func ParseTraversal(s string) (Traversal, bool) {
	for _, t := range []Traversal{
		TraverseInOrder, TraversePreOrder, TraversePostOrder, TraverseLevelOrder,
		TraverseReverseOrder,
	} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}
