package tree

import (
	"fmt"
	"strings"
)

// String returns a string representation of the subtree rooted at n.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
//
// A nil node is the empty string.
func (n *Node[T, X]) String() string {
	if n == nil {
		return ""
	}

	var sb strings.Builder
	printvisit(&sb, n, "", "", true, false)
	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any, X any](
	sb *strings.Builder, n *Node[T, X], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.item))
	sb.WriteRune('\n')

	if n.left != nil {
		printvisit(sb, n.left, prefix, treeLeftBranch, false, n.right != nil)
	}

	if n.right != nil {
		printvisit(sb, n.right, prefix, treeRightBranch, false, false)
	}
}
