package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ObakengPitse/municipal-issue-reporter/internal/config"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/records"
)

const timeLayout = "2006-01-02 15:04"

// issueRow is the printed form of an issue.
type issueRow struct {
	TrackingID string `json:"tracking_id"`
	Category   string `json:"category"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	Priority   int    `json:"priority"`
	ReportedAt string `json:"reported_at"`
}

var issueHeaders = []string{"TRACKING", "CATEGORY", "LOCATION", "STATUS", "PRIORITY", "REPORTED"}

func issueRows(issues []records.Issue) []issueRow {
	out := make([]issueRow, 0, len(issues))
	for _, i := range issues {
		out = append(out, issueRow{
			TrackingID: i.TrackingID(),
			Category:   i.Category,
			Location:   i.Location,
			Status:     i.Status,
			Priority:   i.Priority,
			ReportedAt: i.ReportedAt.Format(timeLayout),
		})
	}

	return out
}

func (a *app) printIssues(issues []records.Issue) error {
	rows := issueRows(issues)
	if a.cfg.Output == config.OutputJSON {
		return formatJSON(a.out, rows)
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.TrackingID, r.Category, r.Location, r.Status, strconv.Itoa(r.Priority), r.ReportedAt})
	}
	formatTable(a.out, issueHeaders, cells)

	return nil
}

func formatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func formatTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}
