// Package bst provides an unbalanced binary search tree over any payload
// type, ordered by a caller-supplied int64 key selector.
//
// What
//
//   - Insert descends from the root: keys strictly less than a node's key go
//     left, equal or greater keys go right, so ties keep insertion order.
//   - Find returns the payload stored under a key, or the zero value of T when
//     the key is absent. Lookup reports presence explicitly.
//   - InOrder returns all payloads ascending by key.
//
// There is no delete and no rebalancing: monotonic insertion produces a
// linear chain of depth n. Insert, Find and InOrder are iterative, so a
// skewed tree costs time but never deep recursion. Use package avl when
// logarithmic height matters.
//
// Complexity (n = stored values, h = height)
//
//   - Insert, Find, Lookup: O(h), O(n) worst case.
//   - InOrder, Walk:        O(n) time, O(h) memory.
package bst
