package tree

import (
	"fmt"
)

// CheckParents verifies that every child's parent pointer refers back to
// the node that owns it, and that root has no parent.
func CheckParents[T any, X any](root *Node[T, X]) error {
	if root == nil {
		return nil
	}
	if root.parent != nil {
		return fmt.Errorf("root %v has parent %v", root.item, root.parent.item)
	}
	return checkup(root, nil)
}

func checkup[T any, X any](n, up *Node[T, X]) error {
	if n == nil {
		return nil
	}
	if n.parent != up {
		return fmt.Errorf("node %v: parent is %v, expected %v",
			n.item, itemOf(n.parent), itemOf(up))
	}
	if err := checkup(n.left, n); err != nil {
		return err
	}
	return checkup(n.right, n)
}

func itemOf[T any, X any](n *Node[T, X]) any {
	if n == nil {
		return nil
	}
	return n.item
}

// CheckOrder verifies the search tree ordering of the subtree at root.
// Items in a right subtree must compare greater than their ancestor.
// Items in a left subtree must compare less, or less or equal
// if allowTies is true.
func CheckOrder[T Comparable[T], X any](root *Node[T, X], allowTies bool) error {
	var prev *Node[T, X]
	var err error

	// in-order walk, every item must not be less than the previous one
	var visit func(n *Node[T, X])
	visit = func(n *Node[T, X]) {
		if n == nil || err != nil {
			return
		}
		visit(n.left)
		if err != nil {
			return
		}
		if prev != nil {
			switch CompareItems(prev.item, n.item) {
			case Greater:
				err = fmt.Errorf("item %v is visited after greater item %v", n.item, prev.item)
				return
			case Equal:
				if !allowTies {
					err = fmt.Errorf("duplicated item %v", n.item)
					return
				}
				// a tie must sit in the left subtree of its equal
				if !isAncestor(n, prev) {
					err = fmt.Errorf("item %v is equal to its in-order predecessor "+
						"but is not above it", n.item)
					return
				}
			}
		}
		prev = n
		visit(n.right)
	}

	visit(root)
	return err
}

// isAncestor returns true if a is a proper ancestor of n.
func isAncestor[T any, X any](a, n *Node[T, X]) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// CheckBalance verifies that the heights of the two subtrees of every node
// differ by at most one. It returns the height of root.
func CheckBalance[T any, X any](root *Node[T, X]) (int, error) {
	if root == nil {
		return -1, nil
	}

	l, err := CheckBalance(root.left)
	if err != nil {
		return 0, err
	}
	r, err := CheckBalance(root.right)
	if err != nil {
		return 0, err
	}

	if d := l - r; d > 1 || d < -1 {
		return 0, fmt.Errorf("node %v is unbalanced: left height %d, right height %d",
			root.item, l, r)
	}

	if l > r {
		return l + 1, nil
	}
	return r + 1, nil
}
