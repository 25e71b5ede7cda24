package avl_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ObakengPitse/municipal-issue-reporter/avl"
)

type event struct {
	Start int64
	Seq   int
}

func byStart(e event) int64 { return e.Start }

// maxHeight is the AVL worst-case height bound 1.44·log2(n+2).
func maxHeight(n int) int {
	return int(math.Floor(1.4405 * math.Log2(float64(n)+2)))
}

func TestInsert_StaysBalanced(t *testing.T) {
	testCases := []struct {
		name string
		keys func(n int) []int64
	}{
		{name: "ascending", keys: func(n int) []int64 {
			out := make([]int64, n)
			for i := range out {
				out[i] = int64(i)
			}
			return out
		}},
		{name: "descending", keys: func(n int) []int64 {
			out := make([]int64, n)
			for i := range out {
				out[i] = int64(n - i)
			}
			return out
		}},
		{name: "zigzag", keys: func(n int) []int64 {
			out := make([]int64, n)
			for i := range out {
				if i%2 == 0 {
					out[i] = int64(i)
				} else {
					out[i] = int64(-i)
				}
			}
			return out
		}},
		{name: "all equal", keys: func(n int) []int64 { return make([]int64, n) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := avl.New(func(v int64) int64 { return v })
			keys := tc.keys(1000)
			for i, k := range keys {
				tree.Insert(k)
				require.True(t, tree.Balanced(), "unbalanced after insert #%d", i)
			}
			assert.LessOrEqual(t, tree.Height(), maxHeight(len(keys)))
			assert.Equal(t, len(keys), tree.Len())

			got := tree.InOrder()
			assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }))
		})
	}
}

func TestInOrder_StableForDuplicates(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tree := avl.New(byStart)
	var want []event
	for i := 0; i < 500; i++ {
		e := event{Start: r.Int63n(20), Seq: i}
		tree.Insert(e)
		want = append(want, e)
	}
	sort.SliceStable(want, func(i, j int) bool { return want[i].Start < want[j].Start })

	assert.Equal(t, want, tree.InOrder(), "equal keys keep insertion order, like the unbalanced tree")
	assert.True(t, tree.Balanced())
}

func TestFindAndLookup(t *testing.T) {
	tree := avl.New(byStart)
	for i, k := range []int64{40, 10, 30, 20, 50} {
		tree.Insert(event{Start: k, Seq: i + 1})
	}

	assert.Equal(t, event{Start: 30, Seq: 3}, tree.Find(30))
	assert.Equal(t, event{}, tree.Find(35), "absent key yields the zero value")

	_, ok := tree.Lookup(35)
	assert.False(t, ok)
	e, ok := tree.Lookup(50)
	assert.True(t, ok)
	assert.Equal(t, 5, e.Seq)
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New(byStart)
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.InOrder())
	assert.True(t, tree.Balanced())
	assert.Equal(t, event{}, tree.Find(1))
}

func TestRandomInsertsAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		tree := avl.New(func(v int64) int64 { return v })
		keys := make([]int64, 1+r.Intn(400))
		for i := range keys {
			keys[i] = r.Int63n(1000) - 500
			tree.Insert(keys[i])
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		assert.Equal(t, keys, tree.InOrder())
		assert.True(t, tree.Balanced())
		for _, k := range keys {
			_, ok := tree.Lookup(k)
			assert.True(t, ok, "key %d must be found", k)
		}
	}
}
