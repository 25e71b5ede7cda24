package records_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ObakengPitse/municipal-issue-reporter/internal/records"
)

const sample = `
issues:
  - id: 3f2a9c1e-1111-4c3b-9a55-0123456789ab
    location: Main Road
    category: Roads
    description: pothole near the bus stop
    reported_at: 2025-03-01T08:30:00Z
    priority: 30
  - location: Church Street
    category: Water
    reported_at: 2025-03-01T09:00:00Z
    status: In Progress
events:
  - title: Clean-up day
    category: Community
    start_date: 2025-04-05T09:00:00Z
    end_date: 2025-04-05T13:00:00Z
    priority: 5
`

func TestParse(t *testing.T) {
	s, err := records.Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, s.Issues, 2)
	require.Len(t, s.Events, 1)

	first := s.Issues[0]
	assert.Equal(t, "3F2A9C1E", first.TrackingID())
	assert.Equal(t, records.StatusSubmitted, first.Status)
	assert.Equal(t, 30, first.Priority)
	assert.True(t, first.ReportedAt.Equal(time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)))

	assert.NotEqual(t, uuid.Nil, s.Issues[1].ID, "missing ids are generated")
	assert.Equal(t, records.StatusInProgress, s.Issues[1].Status)
	assert.NotEqual(t, uuid.Nil, s.Events[0].ID)
	assert.Equal(t, "Clean-up day (Community) - 2025-04-05", s.Events[0].String())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	s, err := records.Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Issues, 2)

	_, err = records.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = records.Parse([]byte("issues: ["))
	assert.Error(t, err)
}
