// Package avl implements a height-balanced binary search tree (AVL tree)
// over a totally ordered key type.
//
// What
//
//   - A sorted set of unique keys with O(log n) Insert, Remove and Find.
//   - After every structural change the tree is rebalanced bottom-up so that
//     for every node |height(left) − height(right)| ≤ 1.
//   - Inserting a key that is already present is an error (ErrDuplicateKey),
//     not a silent no-op; callers check with Contains or match the sentinel.
//
// Heights
//
//	A leaf has height 0 and an absent child counts as −1, so the height of an
//	empty tree is −1 and node.Height == 1 + max(h(left), h(right)).
//
// Ownership
//
//	Each node exclusively owns its two subtrees; there are no parent links.
//	Insert and Remove are recursive functions that return the (possibly new)
//	root of the subtree they were given, and the caller reassigns it.
//	Removing a node with two children copies the key of its in-order
//	successor (leftmost node of the right subtree) into it and recursively
//	removes that successor from the right subtree.
//
// Ordering
//
//	New works for any cmp.Ordered key. NewFunc accepts a three-way comparison
//	for composite keys (records ordered by several fields, reversed orders).
//
// Errors
//
//   - ErrDuplicateKey: Insert of a key that is already present.
//   - ErrEmptyTree:    Min or Max on an empty tree.
//
// Complexity (n = number of keys)
//
//   - Insert, Remove, Find, Min, Max: O(log n) time, O(log n) stack.
//   - IsBalanced, Size, Keys, Walk, Print: O(n).
//
// Concurrency
//
//	A Tree is not safe for concurrent use; guard it externally if shared.
package avl
