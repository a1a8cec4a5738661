// Package domain contains the domain model for the patterns bounded context.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeOfDay buckets an hour of the day for pattern aggregation.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// ClassifyHour maps an hour (0-23) to its time-of-day bucket.
func ClassifyHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return TimeMorning
	case hour >= 12 && hour < 17:
		return TimeAfternoon
	case hour >= 17 && hour < 22:
		return TimeEvening
	default:
		return TimeNight
	}
}

// CompletionRecord is one logged instance of the user finishing a task.
// Records are append-only; identity is insertion order and duplicates are kept.
type CompletionRecord struct {
	ID        uuid.UUID
	Title     string
	Category  string
	Date      time.Time // date component only is significant
	ClockTime string    // "HH:MM"
	Weekday   time.Weekday
	TimeOfDay TimeOfDay
	CreatedAt time.Time
}

// NewCompletionRecord builds a record for a completion at the given moment,
// deriving the weekday, clock time, and time-of-day bucket.
func NewCompletionRecord(title, category string, completedAt time.Time) CompletionRecord {
	return CompletionRecord{
		ID:        uuid.New(),
		Title:     title,
		Category:  category,
		Date:      completedAt,
		ClockTime: completedAt.Format("15:04"),
		Weekday:   completedAt.Weekday(),
		TimeOfDay: ClassifyHour(completedAt.Hour()),
		CreatedAt: time.Now().UTC(),
	}
}

// DateKey returns the record's date in YYYY-MM-DD form, used to count distinct
// completion days.
func (r CompletionRecord) DateKey() string {
	return r.Date.Format("2006-01-02")
}
