// Package records defines the issue and event records that the reporter
// snapshots into the toolkit structures, and loads them from a YAML file.
package records

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Issue lifecycle states.
const (
	StatusSubmitted  = "Submitted"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Issue is a reported municipal service request.
type Issue struct {
	ID          uuid.UUID `yaml:"id"`
	Location    string    `yaml:"location"`
	Category    string    `yaml:"category"`
	Description string    `yaml:"description"`
	Attachments []string  `yaml:"attachments,omitempty"`
	ReportedAt  time.Time `yaml:"reported_at"`
	Status      string    `yaml:"status"`
	// Priority is higher for more urgent issues.
	Priority int `yaml:"priority"`
}

// TrackingID is the short human-friendly id: the first UUID group, upper-cased.
func (i Issue) TrackingID() string {
	return strings.ToUpper(strings.SplitN(i.ID.String(), "-", 2)[0])
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s - %s (%s)", i.TrackingID(), i.Category, i.Location, i.Status)
}

// Event is a local community event or announcement.
type Event struct {
	ID          uuid.UUID `yaml:"id"`
	Title       string    `yaml:"title"`
	Category    string    `yaml:"category"`
	Description string    `yaml:"description"`
	Location    string    `yaml:"location"`
	StartDate   time.Time `yaml:"start_date"`
	EndDate     time.Time `yaml:"end_date"`
	// Priority is higher for more important events.
	Priority int `yaml:"priority"`
}

func (e Event) String() string {
	return fmt.Sprintf("%s (%s) - %s", e.Title, e.Category, e.StartDate.Format("2006-01-02"))
}

// Snapshot is a point-in-time copy of every record.
type Snapshot struct {
	Issues []Issue `yaml:"issues"`
	Events []Event `yaml:"events"`
}

// Load reads a YAML snapshot from path. Records without an id get a fresh
// random UUID and issues without a status are marked Submitted.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("records: read snapshot: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML snapshot; see Load.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("records: decode snapshot: %w", err)
	}
	for i := range s.Issues {
		if s.Issues[i].ID == uuid.Nil {
			s.Issues[i].ID = uuid.New()
		}
		if s.Issues[i].Status == "" {
			s.Issues[i].Status = StatusSubmitted
		}
	}
	for i := range s.Events {
		if s.Events[i].ID == uuid.Nil {
			s.Events[i].ID = uuid.New()
		}
	}

	return &s, nil
}
