package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ObakengPitse/municipal-issue-reporter/internal/config"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/events"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/records"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/status"
)

var errNotFound = errors.New("not found")

func newTimelineCmd(a *app) *cobra.Command {
	var balanced bool
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "List issues oldest first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if balanced {
				return a.printIssues(a.index.Balanced())
			}
			return a.printIssues(a.index.Timeline())
		},
	}
	cmd.Flags().BoolVar(&balanced, "balanced", false, "read the timeline from the AVL tree")

	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <RFC3339 time>",
		Short: "Find the issue reported at an exact time",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return errors.Wrapf(err, "parse time %q", args[0])
			}
			issue, ok := a.index.ByReportedAt(t)
			if !ok {
				return errors.Wrapf(errNotFound, "no issue reported at %s", t.Format(time.RFC3339))
			}
			return a.printIssues([]records.Issue{issue})
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <tracking id or id fragment>",
		Short: "Find issues by tracking id",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			found := a.index.Search(args[0])
			if len(found) == 0 {
				return errors.Wrapf(errNotFound, "no issue matches %q", args[0])
			}
			return a.printIssues(found)
		},
	}
}

func newPriorityCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "priority",
		Short: "List issues highest priority first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if limit < 0 {
				return errors.Errorf("--limit must not be negative, got %d", limit)
			}
			queue := a.index.PriorityQueue()
			if limit > 0 && limit < len(queue) {
				queue = queue[:limit]
			}
			return a.printIssues(queue)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many issues (0 for all)")

	return cmd
}

func newTraverseCmd(a *app) *cobra.Command {
	var (
		mode  string
		start int
	)
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Walk the issue graph from one issue",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if start < 0 || start >= len(a.snapshot.Issues) {
				return errors.Errorf("--start must be in [0, %d), got %d", len(a.snapshot.Issues), start)
			}
			walked, err := a.index.Traverse(a.ctx, status.Mode(mode), start)
			if err != nil {
				return errors.Wrap(err, "traverse")
			}
			a.logger.WithFields(logrus.Fields{"mode": mode, "visited": len(walked)}).Debug("traversal done")
			return a.printIssues(walked)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(status.BFS), "traversal: bfs|dfs")
	cmd.Flags().IntVar(&start, "start", 0, "index of the issue to start from")

	return cmd
}

// mstResult is the JSON form of the mst command.
type mstResult struct {
	Edges []status.Link `json:"edges"`
	Total float64       `json:"total"`
}

func newMSTCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning tree of the issue graph",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			links := a.index.MST()
			var total float64
			for _, l := range links {
				total += l.Weight
			}
			if a.cfg.Output == config.OutputJSON {
				return formatJSON(a.out, mstResult{Edges: links, Total: total})
			}

			rows := make([][]string, 0, len(links))
			for _, l := range links {
				rows = append(rows, []string{l.From, l.To, strconv.FormatFloat(l.Weight, 'f', 2, 64)})
			}
			formatTable(a.out, []string{"FROM", "TO", "WEIGHT"}, rows)
			fmt.Fprintf(a.out, "total: %.2f\n", total)
			return nil
		},
	}
}

// eventRow is the printed form of an event.
type eventRow struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Start    string `json:"start"`
	Priority int    `json:"priority"`
}

func newRecommendCmd(a *app) *cobra.Command {
	var (
		searches []string
		viewed   []string
		top      int
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend community events from recent category searches",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if top <= 0 {
				top = a.cfg.Recommendations.Top
			}
			svc := events.NewService(a.snapshot.Events)
			for _, c := range searches {
				svc.Search(a.ctx, c, time.Time{}, time.Time{})
			}
			for _, v := range viewed {
				id, err := uuid.Parse(v)
				if err != nil {
					return errors.Wrapf(err, "parse viewed id %q", v)
				}
				svc.MarkViewed(id)
			}

			recs := svc.Recommend(a.now(), top)
			rows := make([]eventRow, 0, len(recs))
			for _, e := range recs {
				rows = append(rows, eventRow{
					ID:       e.ID.String(),
					Title:    e.Title,
					Category: e.Category,
					Start:    e.StartDate.Format(timeLayout),
					Priority: e.Priority,
				})
			}
			if a.cfg.Output == config.OutputJSON {
				return formatJSON(a.out, rows)
			}

			cells := make([][]string, 0, len(rows))
			for _, r := range rows {
				cells = append(cells, []string{r.Title, r.Category, r.Start, strconv.Itoa(r.Priority)})
			}
			formatTable(a.out, []string{"TITLE", "CATEGORY", "START", "PRIORITY"}, cells)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&searches, "search", nil, "recent category searches, oldest first")
	cmd.Flags().StringSliceVar(&viewed, "viewed", nil, "ids of events already viewed")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "number of recommendations (default from config)")

	return cmd
}
