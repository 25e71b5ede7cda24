// Package events searches community events and recommends them from a
// user's recent category searches.
package events

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ObakengPitse/municipal-issue-reporter/internal/common"
	"github.com/ObakengPitse/municipal-issue-reporter/internal/records"
	"github.com/ObakengPitse/municipal-issue-reporter/minheap"
)

// SearchLogSize is the number of searches a SearchLog keeps.
const SearchLogSize = 10

// topCategories is how many of the most searched categories feed Recommend.
const topCategories = 3

// SearchLog remembers the most recent category searches, oldest first.
// When full, recording a search drops the oldest one.
type SearchLog struct {
	entries []string
	size    int
}

// NewSearchLog returns a log holding at most size searches; size <= 0 uses
// SearchLogSize.
func NewSearchLog(size int) *SearchLog {
	if size <= 0 {
		size = SearchLogSize
	}

	return &SearchLog{size: size}
}

// Record appends category. Blank categories are ignored.
func (l *SearchLog) Record(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return
	}
	if len(l.entries) == l.size {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, category)
}

// Entries returns a copy of the log, oldest first.
func (l *SearchLog) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Frequent returns up to n categories from recent, most searched first.
// Categories compare case-insensitively; ties keep first-searched order.
func Frequent(recent []string, n int) []string {
	type tally struct {
		name  string
		count int
	}
	var tallies []*tally
	byKey := map[string]*tally{}
	for _, c := range recent {
		k := strings.ToLower(c)
		if t, ok := byKey[k]; ok {
			t.count++
			continue
		}
		t := &tally{name: c, count: 1}
		byKey[k] = t
		tallies = append(tallies, t)
	}

	sort.SliceStable(tallies, func(i, j int) bool { return tallies[i].count > tallies[j].count })
	if len(tallies) > n {
		tallies = tallies[:n]
	}
	out := make([]string, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, t.name)
	}

	return out
}

// Recommend returns up to top events, highest priority first and soonest
// first among equal priorities.
//
// Candidates are upcoming events (starting at or after now) plus, when
// recent is non-empty, events in one of its three most searched
// categories. Events whose id is in viewed are skipped.
func Recommend(events []records.Event, recent []string, viewed []uuid.UUID, now time.Time, top int) []records.Event {
	if top <= 0 {
		return []records.Event{}
	}

	wanted := map[string]bool{}
	for _, c := range Frequent(recent, topCategories) {
		wanted[strings.ToLower(c)] = true
	}
	var candidates []records.Event
	for _, e := range events {
		if wanted[strings.ToLower(e.Category)] || !e.StartDate.Before(now) {
			candidates = append(candidates, e)
		}
	}

	// key = -priority*n + start rank; rank < n, so priority dominates.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].StartDate.Before(candidates[j].StartDate)
	})
	rank := make(map[uuid.UUID]int, len(candidates))
	for i, e := range candidates {
		rank[e.ID] = i
	}
	n := len(candidates)
	queue := minheap.New(func(e records.Event) int { return -e.Priority*n + rank[e.ID] })
	for _, e := range candidates {
		queue.Add(e)
	}

	seen := make(map[uuid.UUID]bool, len(viewed))
	for _, id := range viewed {
		seen[id] = true
	}
	out := []records.Event{}
	for queue.Len() > 0 && len(out) < top {
		e, err := queue.Pop()
		if err != nil {
			break
		}
		if seen[e.ID] {
			continue
		}
		out = append(out, e)
	}

	return out
}

// Service answers event searches for one user session, keeping the search
// log and viewing history that drive recommendations.
type Service struct {
	events []records.Event
	log    *SearchLog
	viewed []uuid.UUID
}

// NewService returns a Service over events.
func NewService(events []records.Event) *Service {
	return &Service{
		events: append([]records.Event(nil), events...),
		log:    NewSearchLog(SearchLogSize),
	}
}

// Categories returns the distinct event categories, sorted case-insensitively.
func (s *Service) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range s.events {
		k := strings.ToLower(e.Category)
		if !seen[k] {
			seen[k] = true
			out = append(out, e.Category)
		}
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })

	return out
}

// Search returns events in category (any when blank) starting within
// [from, to], soonest first then highest priority. A zero from or to leaves
// that side open. A non-blank category is recorded in the search log.
func (s *Service) Search(ctx context.Context, category string, from, to time.Time) []records.Event {
	category = strings.TrimSpace(category)
	out := []records.Event{}
	for _, e := range s.events {
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		if !from.IsZero() && e.StartDate.Before(from) {
			continue
		}
		if !to.IsZero() && e.StartDate.After(to) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].Priority > out[j].Priority
	})
	s.log.Record(category)

	common.Logger(ctx).WithFields(logrus.Fields{
		"category": category,
		"results":  len(out),
	}).Debug("event search")

	return out
}

// MarkViewed records that the user opened the event with id.
func (s *Service) MarkViewed(id uuid.UUID) {
	s.viewed = append(s.viewed, id)
}

// Recent returns the search log, oldest first.
func (s *Service) Recent() []string { return s.log.Entries() }

// Recommend returns up to top events for this session; see Recommend.
func (s *Service) Recommend(now time.Time, top int) []records.Event {
	return Recommend(s.events, s.log.Entries(), s.viewed, now, top)
}
