package minheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ObakengPitse/municipal-issue-reporter/minheap"
)

type task struct {
	Name     string
	Priority int
}

func byPriority(t task) int { return t.Priority }

func TestEmptyHeap(t *testing.T) {
	h := minheap.New(byPriority)
	assert.Equal(t, 0, h.Len())

	_, err := h.Peek()
	assert.ErrorIs(t, err, minheap.ErrEmptyCollection)

	_, err = h.Pop()
	assert.ErrorIs(t, err, minheap.ErrEmptyCollection)

	assert.Empty(t, h.ToSortedList())
}

func TestPopAfterDrainFails(t *testing.T) {
	h := minheap.New(byPriority)
	h.Add(task{Name: "a", Priority: 1})
	_, err := h.Pop()
	require.NoError(t, err)
	_, err = h.Pop()
	assert.ErrorIs(t, err, minheap.ErrEmptyCollection)
}

func TestPeekAndPop(t *testing.T) {
	h := minheap.New(byPriority)
	for _, p := range []int{5, 3, 8, 1, 9, 2} {
		h.Add(task{Priority: p})
	}

	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, top.Priority)
	assert.Equal(t, 6, h.Len(), "Peek does not remove")

	var got []int
	for h.Len() > 0 {
		v, err := h.Pop()
		require.NoError(t, err)
		got = append(got, v.Priority)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, got)
}

func TestToSortedList_NonDestructive(t *testing.T) {
	h := minheap.New(byPriority)
	h.Add(task{Name: "three", Priority: 3})
	h.Add(task{Name: "one", Priority: 1})
	h.Add(task{Name: "two", Priority: 2})
	before := h.Items()

	sorted := h.ToSortedList()
	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, before, h.Items())

	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, "one", top.Name)
}

func TestNegatedPriority_HighestFirst(t *testing.T) {
	h := minheap.New(func(t task) int { return -t.Priority })
	for _, p := range []int{40, 90, 10} {
		h.Add(task{Priority: p})
	}
	v, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 90, v.Priority)
}

// heapOrdered checks priority(parent) <= priority(child) over the backing array.
func heapOrdered(items []task) bool {
	for i := 1; i < len(items); i++ {
		if items[(i-1)/2].Priority > items[i].Priority {
			return false
		}
	}
	return true
}

func TestRandomAddPop_PopsCurrentMinimum(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	h := minheap.New(byPriority)
	var mirror []int

	for op := 0; op < 2000; op++ {
		if len(mirror) == 0 || r.Intn(3) > 0 {
			p := r.Intn(200) - 100
			h.Add(task{Priority: p})
			mirror = append(mirror, p)
		} else {
			sort.Ints(mirror)
			v, err := h.Pop()
			require.NoError(t, err)
			assert.Equal(t, mirror[0], v.Priority, "op %d", op)
			mirror = mirror[1:]
		}
		require.True(t, heapOrdered(h.Items()), "heap property broken at op %d", op)
		require.Equal(t, len(mirror), h.Len())
	}
}

func TestHeapSortProperty(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	h := minheap.New(byPriority)
	want := make([]int, 500)
	for i := range want {
		want[i] = r.Intn(50)
		h.Add(task{Priority: want[i]})
	}
	sort.Ints(want)

	fromList := h.ToSortedList()
	var popped []int
	for h.Len() > 0 {
		v, _ := h.Pop()
		popped = append(popped, v.Priority)
	}
	assert.Equal(t, want, popped)
	for i, v := range fromList {
		assert.Equal(t, want[i], v.Priority)
	}
}
