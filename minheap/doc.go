// Package minheap provides an array-backed binary min-heap whose order comes
// from a caller-supplied integer priority function: lower values dequeue first.
//
// The backing slice is an implicit complete binary tree; the element at
// index i has children at 2i+1 and 2i+2 and its parent at (i-1)/2. Every
// element's priority is <= both of its children's.
//
// Errors
//
//   - ErrEmptyCollection: Peek or Pop on a heap with no elements.
//
// Complexity
//
//   - Add, Pop:      O(log n)
//   - Peek, Len:     O(1)
//   - ToSortedList:  O(n log n), leaves the heap untouched.
package minheap
