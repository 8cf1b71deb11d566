package tree

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//
//	-> n            p
//	  / \          / \
//	 m   p   ->   n   q
//	    / \      / \
//	   o   q    m   o
//
// The right child p is returned from n.RotateLeft.
// The ordering invariant m < n < o < p < q is always preserved.
// m, o and q may be nil. If n had a parent, p takes n's place under it.
func (n *Node[T, X]) RotateLeft() *Node[T, X] {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	if n.right == nil {
		panic("cannot RotateLeft with nil right")
	}

	parent, wasLeft := n.parent, n.parent != nil && n.parent.left == n
	p := n.right

	// o moves from p to n, p loses its parent
	n.SetRight(p.left)
	// n loses its parent
	p.SetLeft(n)

	if parent != nil {
		if wasLeft {
			parent.SetLeft(p)
		} else {
			parent.SetRight(p)
		}
	}

	return p
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//
//	 -> n            l
//	   / \          / \
//	  l   o   ->   k   n
//	 / \              / \
//	k   m            m   o
//
// The left child l is returned from n.RotateRight.
// The ordering invariant k < l < m < n < o is always preserved.
// k, m and o may be nil. If n had a parent, l takes n's place under it.
func (n *Node[T, X]) RotateRight() *Node[T, X] {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	if n.left == nil {
		panic("cannot RotateRight with nil left")
	}

	parent, wasLeft := n.parent, n.parent != nil && n.parent.left == n
	l := n.left

	n.SetLeft(l.right)
	l.SetRight(n)

	if parent != nil {
		if wasLeft {
			parent.SetLeft(l)
		} else {
			parent.SetRight(l)
		}
	}

	return l
}
