// Package status snapshots reported issues into the toolkit structures and
// answers the service-status queries over them.
//
// An Index is built once from a slice of issues and is read-only afterwards:
// the timeline comes from the binary search tree and its AVL counterpart,
// the priority queue from the min-heap, and traversals and the spanning tree
// from a weighted graph whose node ids are the issues' slice indices.
package status

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ObakengPitse/municipal-issue-reporter/avl"
	"github.com/ObakengPitse/municipal-issue-reporter/bst"
	"github.com/ObakengPitse/municipal-issue-reporter/graph"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/common"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/records"
	"github.com/ObakengPitse/municipal-issue-reporter/minheap"
)

// ErrUnknownMode is returned by Traverse for a mode other than BFS or DFS.
var ErrUnknownMode = errors.New("status: unknown traversal mode")

// Mode selects a graph traversal.
type Mode string

// Traversal modes.
const (
	BFS Mode = "bfs"
	DFS Mode = "dfs"
)

// Link is one spanning-tree edge between two issues.
type Link struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Stats describes the structures held by an Index.
type Stats struct {
	Issues     int
	TreeHeight int
	AVLHeight  int
	HeapLen    int
	Nodes      int
	Edges      int
	MSTWeight  float64
	Duration   time.Duration
}

// Index holds one snapshot of issues in every toolkit structure.
type Index struct {
	issues     []records.Issue
	byTime     *bst.Tree[records.Issue]
	byTimeAVL  *avl.Tree[records.Issue]
	byPriority *minheap.Heap[records.Issue]
	links      *graph.Graph[records.Issue]
	stats      Stats
}

func reportedKey(i records.Issue) int64 { return i.ReportedAt.UnixNano() }

// highestFirst turns the min-heap into a max-priority queue.
func highestFirst(i records.Issue) int { return -i.Priority }

// Build snapshots issues. The slice is copied; later changes to it are not
// reflected in the Index.
func Build(ctx context.Context, issues []records.Issue) *Index {
	start := time.Now()
	x := &Index{
		issues:     append([]records.Issue(nil), issues...),
		byTime:     bst.New(reportedKey),
		byTimeAVL:  avl.New(reportedKey),
		byPriority: minheap.New(highestFirst),
		links:      graph.New[records.Issue](),
	}

	for i, iss := range x.issues {
		x.byTime.Insert(iss)
		x.byTimeAVL.Insert(iss)
		x.byPriority.Add(iss)
		x.links.AddNode(i, iss)
	}
	link(x.links, x.issues)

	x.stats = Stats{
		Issues:     len(x.issues),
		TreeHeight: x.byTime.Height(),
		AVLHeight:  x.byTimeAVL.Height(),
		HeapLen:    x.byPriority.Len(),
		Nodes:      x.links.Order(),
		Edges:      x.links.Size() / 2,
		MSTWeight:  graph.TotalWeight(x.links.PrimMST()),
		Duration:   time.Since(start),
	}

	common.Logger(ctx).WithFields(logrus.Fields{
		"issues":      x.stats.Issues,
		"bst_height":  x.stats.TreeHeight,
		"avl_height":  x.stats.AVLHeight,
		"graph_edges": x.stats.Edges,
		"mst_weight":  x.stats.MSTWeight,
		"duration":    x.stats.Duration,
	}).Debug("status index built")

	return x
}

// link connects every pair of issues. The base weight is the gap between
// the two reports in minutes plus one. Issues sharing a category or a
// location get a strong edge of a tenth of that (at least 1); other issues
// reported within a day of each other get a weak edge of half. A fallback
// edge of the full weight is always added, so the graph is complete and
// the spanning tree covers every issue.
func link(g *graph.Graph[records.Issue], issues []records.Issue) {
	for i := 0; i < len(issues); i++ {
		for j := i + 1; j < len(issues); j++ {
			a, b := issues[i], issues[j]
			w := math.Abs(a.ReportedAt.Sub(b.ReportedAt).Minutes()) + 1

			if a.Category == b.Category || a.Location == b.Location {
				g.AddEdge(i, j, graph.WithWeight(math.Max(1, w/10)))
			} else if w < 1440 {
				g.AddEdge(i, j, graph.WithWeight(w/2))
			}
			g.AddEdge(i, j, graph.WithWeight(w))
		}
	}
}

// Stats returns the figures recorded at build time.
func (x *Index) Stats() Stats { return x.stats }

// Issues returns the snapshot in its original order.
func (x *Index) Issues() []records.Issue {
	return append([]records.Issue(nil), x.issues...)
}

// Timeline returns the issues oldest first, read from the binary search tree.
// Issues reported at the same instant keep their snapshot order.
func (x *Index) Timeline() []records.Issue { return x.byTime.InOrder() }

// Balanced returns the same timeline read from the AVL tree.
func (x *Index) Balanced() []records.Issue { return x.byTimeAVL.InOrder() }

// ByReportedAt finds an issue reported at exactly t.
func (x *Index) ByReportedAt(t time.Time) (records.Issue, bool) {
	return x.byTimeAVL.Lookup(t.UnixNano())
}

// Search matches q case-insensitively against the tracking id, or as a
// fragment of the full id. An empty query matches nothing.
func (x *Index) Search(q string) []records.Issue {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}

	var out []records.Issue
	lower := strings.ToLower(q)
	for _, iss := range x.issues {
		if strings.EqualFold(iss.TrackingID(), q) || strings.Contains(iss.ID.String(), lower) {
			out = append(out, iss)
		}
	}

	return out
}

// PriorityQueue returns the issues highest priority first.
func (x *Index) PriorityQueue() []records.Issue { return x.byPriority.ToSortedList() }

// Traverse walks the issue graph from the issue at index start.
// A start outside the snapshot yields an empty result.
func (x *Index) Traverse(ctx context.Context, mode Mode, start int) ([]records.Issue, error) {
	var (
		out []records.Issue
		err error
	)
	switch mode {
	case BFS:
		out, err = x.links.BFS(start, graph.WithContext(ctx))
	case DFS:
		out, err = x.links.DFS(start, graph.WithContext(ctx))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if err != nil {
		return nil, fmt.Errorf("status: %s from %d: %w", mode, start, err)
	}

	return out, nil
}

// MST returns the minimum spanning tree over the issue graph with tracking
// ids in place of indices and weights rounded to two decimals.
func (x *Index) MST() []Link {
	edges := x.links.PrimMST()
	out := make([]Link, 0, len(edges))
	for _, e := range edges {
		out = append(out, Link{
			From:   x.issues[e.From].TrackingID(),
			To:     x.issues[e.To].TrackingID(),
			Weight: math.Round(e.Weight*100) / 100,
		})
	}

	return out
}
