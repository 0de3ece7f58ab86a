package avl

import (
	"cmp"
	"fmt"
)

// Tree is an AVL tree holding unique keys of type K.
// The zero value is not usable; construct with New or NewFunc.
type Tree[K any] struct {
	root    *Node[K]
	size    int
	compare func(a, b K) int
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{compare: cmp.Compare[K]}
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b, and must describe a strict total order.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	if compare == nil {
		panic("avl: nil compare function")
	}

	return &Tree[K]{compare: compare}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] { return t.root }

// Len returns the number of keys, tracked incrementally.
func (t *Tree[K]) Len() int { return t.size }

// Height returns the height of the tree: −1 when empty, 0 for a single key.
func (t *Tree[K]) Height() int { return height(t.root) }

// Insert adds key to the tree and rebalances along the insertion path.
// If key is already present the tree is left untouched and an error
// wrapping ErrDuplicateKey is returned.
//
// Complexity: O(log n).
func (t *Tree[K]) Insert(key K) error {
	root, err := t.insert(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	t.size++

	return nil
}

func (t *Tree[K]) insert(n *Node[K], key K) (*Node[K], error) {
	if n == nil {
		return &Node[K]{key: key}, nil
	}

	var err error
	switch c := t.compare(key, n.key); {
	case c < 0:
		var left *Node[K]
		if left, err = t.insert(n.left, key); err != nil {
			return n, err
		}
		n.left = left
	case c > 0:
		var right *Node[K]
		if right, err = t.insert(n.right, key); err != nil {
			return n, err
		}
		n.right = right
	default:
		return n, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	return rebalance(n), nil
}

// Remove deletes key from the tree and reports whether it was present.
// Removing an absent key is a no-op.
//
// Complexity: O(log n).
func (t *Tree[K]) Remove(key K) bool {
	var removed bool
	t.root = t.remove(t.root, key, &removed)
	if removed {
		t.size--
	}

	return removed
}

func (t *Tree[K]) remove(n *Node[K], key K, removed *bool) *Node[K] {
	if n == nil {
		return nil
	}

	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left = t.remove(n.left, key, removed)
	case c > 0:
		n.right = t.remove(n.right, key, removed)
	default:
		*removed = true
		if n.left == nil || n.right == nil {
			if n.left == nil {
				n = n.right
			} else {
				n = n.left
			}
		} else {
			// two children: take over the successor's key, then delete the successor
			n.key = leftmost(n.right).key
			n.right = t.remove(n.right, n.key, new(bool))
		}
	}

	if n == nil {
		return nil
	}

	return rebalance(n)
}

// Find returns the node holding key, or nil if key is absent.
// Find never restructures the tree.
//
// Complexity: O(log n).
func (t *Tree[K]) Find(key K) *Node[K] {
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	return nil
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool { return t.Find(key) != nil }

// Min returns the smallest key, or ErrEmptyTree.
func (t *Tree[K]) Min() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}

	return leftmost(t.root).key, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t *Tree[K]) Max() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, nil
}

// Size counts the nodes reachable from the root. It equals Len for a
// consistent tree and exists as an O(n) cross-check.
func (t *Tree[K]) Size() int { return size(t.root) }

func size[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}

	return 1 + size(n.left) + size(n.right)
}

// IsBalanced walks the whole tree and reports whether every node satisfies
// the AVL balance bound and carries a correct stored height.
//
// Complexity: O(n).
func (t *Tree[K]) IsBalanced() bool {
	_, ok := checkBalanced(t.root)

	return ok
}

// checkBalanced returns the recomputed height of n and whether the subtree is valid.
func checkBalanced[K any](n *Node[K]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := checkBalanced(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalanced(n.right)
	if !ok {
		return 0, false
	}
	if d := rh - lh; d < -1 || d > 1 {
		return 0, false
	}
	h := 1 + max(lh, rh)

	return h, h == n.height
}

// Walk calls fn for every key in ascending order until fn returns false.
func (t *Tree[K]) Walk(fn func(key K) bool) {
	walk(t.root, fn)
}

func walk[K any](n *Node[K], fn func(K) bool) bool {
	if n == nil {
		return true
	}

	return walk(n.left, fn) && fn(n.key) && walk(n.right, fn)
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Walk(func(k K) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

func leftmost[K any](n *Node[K]) *Node[K] {
	for n.left != nil {
		n = n.left
	}

	return n
}
