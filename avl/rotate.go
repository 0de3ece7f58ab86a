package avl

// rebalance restores the AVL bound at z, assuming both subtrees are already
// valid AVL trees whose heights differ by at most 2. It returns the new
// subtree root.
func rebalance[K any](z *Node[K]) *Node[K] {
	z.updateHeight()

	switch b := z.Balance(); {
	case b > 1:
		// right heavy: RL needs two rotations; RR, and the equal-height case
		// that only removal can produce, need one
		if height(z.right.right) < height(z.right.left) {
			z.right = rotateRight(z.right)
		}
		return rotateLeft(z)
	case b < -1:
		if height(z.left.left) < height(z.left.right) {
			z.left = rotateLeft(z.left)
		}
		return rotateRight(z)
	}

	return z
}

//	    y          x
//	   / \        / \
//	  x   c  =>  a   y
//	 / \            / \
//	a   b          b   c
func rotateRight[K any](y *Node[K]) *Node[K] {
	x := y.left
	y.left = x.right
	x.right = y
	y.updateHeight()
	x.updateHeight()

	return x
}

//	  y              x
//	 / \            / \
//	a   x    =>    y   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft[K any](y *Node[K]) *Node[K] {
	x := y.right
	y.right = x.left
	x.left = y
	y.updateHeight()
	x.updateHeight()

	return x
}
