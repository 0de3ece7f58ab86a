package avl

import (
	"bufio"
	"fmt"
	"io"
)

const (
	edgeUp   = "/-- "
	edgeDown = `\-- `
	padOpen  = "    "
	padBar   = "|   "
)

// Print writes a sideways rendering of the tree to w: the root sits in the
// first column, right subtrees above their parent and left subtrees below.
//
//	    /-- 4
//	/-- 3
//	2
//	\-- 1
//
// An empty tree writes nothing.
func (t *Tree[K]) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if t.root != nil {
		if err := printNode(bw, t.root, "", ""); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func printNode[K any](w io.Writer, n *Node[K], indent, edge string) error {
	if n.right != nil {
		if err := printNode(w, n.right, indent+childPad(edge, true), edgeUp); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", indent, edge, n.key); err != nil {
		return err
	}
	if n.left != nil {
		return printNode(w, n.left, indent+childPad(edge, false), edgeDown)
	}

	return nil
}

// childPad draws a vertical bar when the child lies between n and n's parent.
func childPad(edge string, rightChild bool) string {
	switch edge {
	case edgeUp:
		if rightChild {
			return padOpen
		}
		return padBar
	case edgeDown:
		if rightChild {
			return padBar
		}
		return padOpen
	}

	return ""
}
