package minheap

import "errors"

// ErrEmptyCollection is returned by Peek and Pop when the heap is empty.
var ErrEmptyCollection = errors.New("minheap: empty collection")

// Heap is a binary min-heap ordered by a priority function.
// It is not safe for concurrent mutation.
type Heap[T any] struct {
	data     []T
	priority func(T) int
}

// New returns an empty heap ordered by priority.
func New[T any](priority func(T) int) *Heap[T] {
	return &Heap[T]{priority: priority}
}

// Len returns the number of held elements.
func (h *Heap[T]) Len() int { return len(h.data) }

// Add appends item and sifts it up while it is strictly smaller than its parent.
func (h *Heap[T]) Add(item T) {
	h.data = append(h.data, item)
	h.up(len(h.data) - 1)
}

// Peek returns the minimum element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	return h.data[0], nil
}

// Pop removes and returns the minimum element.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}

	last := len(h.data) - 1
	h.swap(0, last)
	top := h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	h.down(0)

	return top, nil
}

// ToSortedList returns every element ascending by priority.
// It works on a copy re-heapified bottom-up; the receiver is not modified.
func (h *Heap[T]) ToSortedList() []T {
	cp := &Heap[T]{data: h.Items(), priority: h.priority}
	for i := len(cp.data)/2 - 1; i >= 0; i-- {
		cp.down(i)
	}

	out := make([]T, 0, len(cp.data))
	for len(cp.data) > 0 {
		v, _ := cp.Pop()
		out = append(out, v)
	}

	return out
}

// Items returns a copy of the elements in heap (array) order.
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)

	return out
}

func (h *Heap[T]) less(i, j int) bool {
	return h.priority(h.data[i]) < h.priority(h.data[j])
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		smallest := i
		l, r := 2*i+1, 2*i+2
		if l < n && h.less(l, smallest) {
			smallest = l
		}
		if r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
