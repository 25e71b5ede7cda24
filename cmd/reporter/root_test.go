package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ObakengPitse/municipal-issue-reporter/internal/config"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/status"
)

var fixedNow = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvSnapshot, "")
	t.Setenv(config.EnvLogLevel, "")

	cmd := newRootCmd(context.Background(), &Input{now: func() time.Time { return fixedNow }})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--snapshot", filepath.Join("testdata", "snapshot.yaml"),
	}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func trackingIDs(t *testing.T, out string) []string {
	t.Helper()
	var rows []issueRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows), out)
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.TrackingID)
	}

	return ids
}

func TestTimeline(t *testing.T) {
	for _, extra := range [][]string{nil, {"--balanced"}} {
		out, err := run(t, append([]string{"timeline", "-o", "json"}, extra...)...)
		require.NoError(t, err)
		assert.Equal(t, []string{"AAAAAAAA", "BBBBBBBB", "CCCCCCCC"}, trackingIDs(t, out))
	}
}

func TestTimeline_Table(t *testing.T) {
	out, err := run(t, "timeline")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "TRACKING"))
	assert.True(t, strings.HasPrefix(lines[1], "--------"))
	assert.True(t, strings.HasPrefix(lines[2], "AAAAAAAA"))
	assert.Contains(t, lines[3], "In Progress")
	assert.Contains(t, lines[4], "2025-03-01 10:00")
}

func TestFind(t *testing.T) {
	out, err := run(t, "find", "2025-03-01T10:00:00Z", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"CCCCCCCC"}, trackingIDs(t, out))

	_, err = run(t, "find", "2025-03-01T10:01:00Z")
	assert.ErrorIs(t, err, errNotFound)

	_, err = run(t, "find", "yesterday")
	assert.ErrorContains(t, err, "parse time")
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "aaaaaaaa", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAAAAAA"}, trackingIDs(t, out))

	_, err = run(t, "search", "ffff")
	assert.ErrorIs(t, err, errNotFound)
}

func TestPriority(t *testing.T) {
	out, err := run(t, "priority", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"BBBBBBBB", "CCCCCCCC", "AAAAAAAA"}, trackingIDs(t, out))

	out, err = run(t, "priority", "--limit", "2", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"BBBBBBBB", "CCCCCCCC"}, trackingIDs(t, out))

	_, err = run(t, "priority", "--limit", "-1")
	assert.Error(t, err)
}

func TestTraverse(t *testing.T) {
	out, err := run(t, "traverse", "--mode", "dfs", "--start", "2", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"CCCCCCCC", "BBBBBBBB", "AAAAAAAA"}, trackingIDs(t, out))

	out, err = run(t, "traverse", "--start", "1", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAAAAAA", "BBBBBBBB", "CCCCCCCC"}, trackingIDs(t, out))

	_, err = run(t, "traverse", "--mode", "zigzag")
	assert.ErrorIs(t, err, status.ErrUnknownMode)

	_, err = run(t, "traverse", "--start", "3")
	assert.ErrorContains(t, err, "--start")
}

func TestMST(t *testing.T) {
	out, err := run(t, "mst", "-o", "json")
	require.NoError(t, err)

	var res mstResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []status.Link{
		{From: "BBBBBBBB", To: "AAAAAAAA", Weight: 3.1},
		{From: "BBBBBBBB", To: "CCCCCCCC", Weight: 45.5},
	}, res.Edges)
	assert.InDelta(t, 48.6, res.Total, 1e-9)

	out, err = run(t, "mst")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 48.60")
}

func TestRecommend(t *testing.T) {
	titles := func(out string) []string {
		var rows []eventRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows), out)
		ts := make([]string, 0, len(rows))
		for _, r := range rows {
			ts = append(ts, r.Title)
		}
		return ts
	}

	out, err := run(t, "recommend", "--search", "health", "--top", "3", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Clinic day", "Fun run", "Ward meeting"}, titles(out))

	out, err = run(t, "recommend", "--search", "Health",
		"--viewed", "00000000-0000-4000-8000-000000000002", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Clinic day", "Ward meeting", "Clean-up"}, titles(out))

	_, err = run(t, "recommend", "--viewed", "not-a-uuid")
	assert.ErrorContains(t, err, "parse viewed id")
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reporter.prom")
	_, err := run(t, "timeline", "--metrics-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reporter_graph_nodes 3")
	assert.Contains(t, string(data), "reporter_issues 3")
}

func TestSetupErrors(t *testing.T) {
	_, err := run(t, "timeline", "--snapshot", filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "load snapshot")

	_, err = run(t, "timeline", "--output", "xml")
	assert.ErrorContains(t, err, "invalid flags")

	cfgPath := filepath.Join(t.TempDir(), "reporter.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_format: [\n"), 0o600))
	_, err = run(t, "--config", cfgPath, "timeline")
	assert.ErrorContains(t, err, "load config")
}
