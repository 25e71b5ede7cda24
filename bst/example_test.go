package bst_test

import (
	"fmt"

	"github.com/ObakengPitse/municipal-issue-reporter/bst"
)

// ExampleTree orders issues by the hour they were reported.
func ExampleTree() {
	type issue struct {
		hour  int64
		title string
	}
	tree := bst.New(func(i issue) int64 { return i.hour })
	tree.Insert(issue{14, "pothole"})
	tree.Insert(issue{9, "streetlight"})
	tree.Insert(issue{17, "water leak"})

	for _, i := range tree.InOrder() {
		fmt.Println(i.hour, i.title)
	}
	fmt.Printf("%q\n", tree.Find(12).title)
	// Output:
	// 9 streetlight
	// 14 pothole
	// 17 water leak
	// ""
}
