// Package domain contains the domain model for the briefing bounded context.
package domain

import (
	"strings"
	"time"
)

// ItemType identifies which state-file section an item came from.
type ItemType string

const (
	ItemTypeCommitment ItemType = "commitment"
	ItemTypeTask       ItemType = "task"
	ItemTypePriority   ItemType = "priority"
)

// ParseItemType normalizes a raw type string. Unknown values fall back to
// ItemTypeTask rather than failing; the parser upstream is not trusted to be strict.
func ParseItemType(raw string) ItemType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "commitment":
		return ItemTypeCommitment
	case "priority":
		return ItemTypePriority
	default:
		return ItemTypeTask
	}
}

// UrgencyLevel is the coarse display bucket derived from the final score.
type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyLow      UrgencyLevel = "low"
)

// TaskType classifies the kind of effort an item demands.
type TaskType string

const (
	TaskTypeDeepWork TaskType = "deep_work"
	TaskTypeAdmin    TaskType = "admin"
	TaskTypeGeneral  TaskType = "general"
)

// ScorableItem is the uniform shape the scorer consumes. It is produced by the
// external state-file parser; only incomplete items should reach the scorer, but
// the scorer filters completed ones again as a hard invariant.
type ScorableItem struct {
	ID       string
	Title    string
	Category string
	Type     ItemType

	// Deadline is the raw deadline string from the parser. Malformed values are
	// treated as "no deadline" rather than raised.
	Deadline string

	Completed bool
}

// deadlineLayouts are tried in order when parsing a raw deadline string.
var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04",
	"01/02/2006",
}

// ParseDeadline parses a raw deadline string leniently. It returns nil for empty
// or unparseable values.
func ParseDeadline(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// DaysUntil returns the whole-day difference between a deadline and today,
// ignoring the time-of-day component of both values. Negative means overdue.
func DaysUntil(deadline, today time.Time) int {
	d := truncateToDay(deadline)
	t := truncateToDay(today)
	return int(d.Sub(t).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ScoredItem is an immutable scoring result. A fresh list is built on every
// ranking call; nothing is cached between calls.
type ScoredItem struct {
	ScorableItem

	Score    float64
	Reasons  []Reason
	Urgency  UrgencyLevel
	TaskType TaskType
}

// ReasonString joins the triggered reason fragments for display.
func (s ScoredItem) ReasonString() string {
	return JoinReasons(s.Reasons)
}
