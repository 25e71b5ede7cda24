package bst

// node exclusively owns its children; the tree has no parent links.
type node[T any] struct {
	value T
	key   int64
	left  *node[T]
	right *node[T]
}

// Tree is an unbalanced binary search tree keyed by a selector function.
// The zero Tree is not usable; construct with New.
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

// Insert adds v as a new leaf. Keys equal to an existing key go right.
func (t *Tree[T]) Insert(v T) {
	n := &node[T]{value: v, key: t.key(v)}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}

	cur := t.root
	for {
		if n.key < cur.key {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Find returns the first value found under key, or the zero value of T if
// the key is absent. A stored zero value is indistinguishable from absence;
// use Lookup when that matters.
func (t *Tree[T]) Find(key int64) T {
	v, _ := t.Lookup(key)
	return v
}

// Lookup returns the value stored under key and whether it was found.
// With duplicate keys the one nearest the root, i.e. inserted first, wins.
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

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 0
	level := []*node[T]{t.root}
	for len(level) > 0 {
		h++
		var next []*node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return h
}
