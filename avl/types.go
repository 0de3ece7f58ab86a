package avl

import "errors"

// Sentinel errors returned by Tree operations.
var (
	// ErrDuplicateKey indicates that Insert was called with a key already in the tree.
	ErrDuplicateKey = errors.New("avl: duplicate key")

	// ErrEmptyTree indicates that Min or Max was called on a tree without keys.
	ErrEmptyTree = errors.New("avl: tree is empty")
)

// Node is a single tree node. Nodes are owned by the tree; the accessors are
// read-only views, and a *Node obtained from Find is invalidated by the next
// Insert or Remove.
type Node[K any] struct {
	key    K
	height int
	left   *Node[K]
	right  *Node[K]
}

// Key returns the key stored in n.
func (n *Node[K]) Key() K { return n.key }

// Height returns the stored height of n (0 for a leaf).
func (n *Node[K]) Height() int { return n.height }

// Left returns the left child of n, or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right child of n, or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// Balance returns height(right) − height(left). A nil node has balance 0.
func (n *Node[K]) Balance() int {
	if n == nil {
		return 0
	}

	return height(n.right) - height(n.left)
}

// height treats a missing subtree as −1.
func height[K any](n *Node[K]) int {
	if n == nil {
		return -1
	}

	return n.height
}

func (n *Node[K]) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}
