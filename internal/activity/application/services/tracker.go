// Package services contains the activity tracking service.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	activitydomain "github.com/daybrief/daybrief/internal/activity/domain"
	patternsdomain "github.com/daybrief/daybrief/internal/patterns/domain"
)

// Tracker records briefing-generation events and answers inactivity and
// recent-volume questions over both the activity log and the completion log.
type Tracker struct {
	activities  activitydomain.Repository
	completions patternsdomain.CompletionRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewTracker creates a tracker over the two logs.
func NewTracker(activities activitydomain.Repository, completions patternsdomain.CompletionRepository, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		activities:  activities,
		completions: completions,
		logger:      logger,
		now:         time.Now,
	}
}

// SetClock overrides the tracker's clock. Intended for tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// Track appends a briefing activity of the given type.
func (t *Tracker) Track(ctx context.Context, activityType string) error {
	entry := activitydomain.NewEntry(activityType, t.now())
	if err := t.activities.Append(ctx, entry); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	t.logger.Debug("activity tracked", "type", activityType, "date", entry.Date.Format("2006-01-02"))
	return nil
}

// LastActivityDate returns the most recent date across tracked briefings and
// completion records, or nil when neither log has any history.
func (t *Tracker) LastActivityDate(ctx context.Context) (*time.Time, error) {
	var last *time.Time

	entries, err := t.activities.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load activity entries: %w", err)
	}
	for _, e := range entries {
		last = laterDate(last, e.Date)
	}

	records, err := t.completions.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completion records: %w", err)
	}
	for _, r := range records {
		last = laterDate(last, r.Date)
	}

	return last, nil
}

// CountRecent counts briefing entries plus completion records whose date falls
// within the inclusive window [today-days+1, today].
func (t *Tracker) CountRecent(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		days = 7
	}
	today := dateOnly(t.now())
	start := today.AddDate(0, 0, -(days - 1))

	count := 0

	entries, err := t.activities.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load activity entries: %w", err)
	}
	for _, e := range entries {
		if inWindow(e.Date, start, today) {
			count++
		}
	}

	records, err := t.completions.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load completion records: %w", err)
	}
	for _, r := range records {
		if inWindow(r.Date, start, today) {
			count++
		}
	}

	return count, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func inWindow(t, start, end time.Time) bool {
	d := dateOnly(t)
	return !d.Before(start) && !d.After(end)
}

func laterDate(current *time.Time, candidate time.Time) *time.Time {
	d := dateOnly(candidate)
	if current == nil || d.After(*current) {
		return &d
	}
	return current
}
