package avl

type node[T any] struct {
	value  T
	key    int64
	height int
	left   *node[T]
	right  *node[T]
}

// Tree is an AVL tree keyed by a selector function.
type Tree[T any] struct {
	root *node[T]
	key  func(T) int64
	size int
}

// New returns an empty tree ordered by key.
func New[T any](key func(T) int64) *Tree[T] {
	return &Tree[T]{key: key}
}

// Len returns the number of stored values.
func (t *Tree[T]) Len() int { return t.size }

// Height returns the height of the root; 0 for an empty tree.
func (t *Tree[T]) Height() int { return height(t.root) }

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

func (n *node[T]) balanceFactor() int {
	return height(n.left) - height(n.right)
}

func rotateLeft[T any](n *node[T]) *node[T] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

func rotateRight[T any](n *node[T]) *node[T] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// Insert adds v and rebalances the insertion path.
func (t *Tree[T]) Insert(v T) {
	t.root = insert(t.root, v, t.key(v))
	t.size++
}

func insert[T any](n *node[T], v T, key int64) *node[T] {
	if n == nil {
		return &node[T]{value: v, key: key, height: 1}
	}
	if key < n.key {
		n.left = insert(n.left, v, key)
	} else {
		n.right = insert(n.right, v, key)
	}

	n.updateHeight()
	bf := n.balanceFactor()
	switch {
	case bf > 1 && key < n.left.key:
		return rotateRight(n)
	case bf > 1:
		// Left-Right case
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case bf < -1 && key >= n.right.key:
		return rotateLeft(n)
	case bf < -1:
		// Right-Left case
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// Find returns a value stored under key, or the zero value of T if absent.
func (t *Tree[T]) Find(key int64) T {
	v, _ := t.Lookup(key)
	return v
}

// Lookup returns a value stored under key and whether it was found.
// With duplicate keys, rotations may lift any of them nearest the root.
func (t *Tree[T]) Lookup(key int64) (T, bool) {
	cur := t.root
	for cur != nil {
		switch {
		case key == cur.key:
			return cur.value, true
		case key < cur.key:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	var zero T

	return zero, false
}

// InOrder returns all values ascending by key.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	t.Walk(func(v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

// Walk calls fn for each value in ascending key order until fn returns false.
func (t *Tree[T]) Walk(fn func(T) bool) {
	var stack []*node[T]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur.value) {
			return
		}
		cur = cur.right
	}
}

// Balanced reports whether every node satisfies the AVL invariants: cached
// height equals 1 + max(child heights), the balance factor is in {-1, 0, 1},
// and an in-order walk yields non-decreasing keys. O(n).
//
// Rotations can move a duplicate key to the left of an equal key, so the
// ordering check is non-strict.
func (t *Tree[T]) Balanced() bool {
	if _, ok := checkHeights(t.root); !ok {
		return false
	}
	var stack []*node[T]
	var prev *node[T]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if prev != nil && prev.key > cur.key {
			return false
		}
		prev = cur
		cur = cur.right
	}

	return true
}

func checkHeights[T any](n *node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := checkHeights(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(n.right)
	if !ok {
		return 0, false
	}
	h := max(lh, rh) + 1
	if h != n.height || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}

	return h, true
}
