// Package avl provides a height-balanced binary search tree (AVL tree) over
// any payload type, ordered by a caller-supplied int64 key selector.
//
// It follows the same ordering contract as package bst: keys strictly less
// than a node's key go left, equal or greater keys go right. After every
// Insert the heights along the insertion path are recomputed bottom-up and
// the first ancestor whose balance factor leaves {-1, 0, 1} is repaired by
// one of four rotations, chosen by comparing the inserted key with the key of
// the child on the heavy side:
//
//	left-heavy,  key <  left.key   → rotate right
//	left-heavy,  key >= left.key   → rotate left on left child, then right
//	right-heavy, key >= right.key  → rotate left
//	right-heavy, key <  right.key  → rotate right on right child, then left
//
// Height stays O(log n), so the recursive insert is shallow.
//
// Find returns the zero value of T for an absent key; Lookup reports presence
// explicitly. There is no delete.
package avl
