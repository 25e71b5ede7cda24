package minheap_test

import (
	"errors"
	"fmt"

	"github.com/ObakengPitse/municipal-issue-reporter/minheap"
)

// ExampleHeap serves requests most urgent first by negating the priority.
func ExampleHeap() {
	type request struct {
		id       string
		priority int
	}
	h := minheap.New(func(r request) int { return -r.priority })
	h.Add(request{"R1", 30})
	h.Add(request{"R2", 80})
	h.Add(request{"R3", 55})

	for _, r := range h.ToSortedList() {
		fmt.Println(r.id, r.priority)
	}
	for h.Len() > 0 {
		h.Pop()
	}
	if _, err := h.Peek(); errors.Is(err, minheap.ErrEmptyCollection) {
		fmt.Println(err)
	}
	// Output:
	// R2 80
	// R3 55
	// R1 30
	// minheap: empty collection
}
