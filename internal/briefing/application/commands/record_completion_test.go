package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activityservices "github.com/daybrief/daybrief/internal/activity/application/services"
	activitypersistence "github.com/daybrief/daybrief/internal/activity/infrastructure/persistence"
	patternsdomain "github.com/daybrief/daybrief/internal/patterns/domain"
	patternspersistence "github.com/daybrief/daybrief/internal/patterns/infrastructure/persistence"
)

func TestRecordCompletionHandler_Handle(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	newHandler := func() (*RecordCompletionHandler, *patternspersistence.MemoryCompletionRepository) {
		repo := patternspersistence.NewMemoryCompletionRepository()
		h := NewRecordCompletionHandler(repo, nil)
		h.SetClock(func() time.Time { return now })
		return h, repo
	}

	t.Run("records a completion at the current time", func(t *testing.T) {
		handler, repo := newHandler()

		err := handler.Handle(context.Background(), RecordCompletionCommand{Title: "Send invoice"})
		require.NoError(t, err)

		records, err := repo.All(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "Send invoice", records[0].Title)
		assert.Equal(t, "2026-09-01", records[0].DateKey())
		assert.Equal(t, "14:30", records[0].ClockTime)
		assert.Equal(t, patternsdomain.TimeAfternoon, records[0].TimeOfDay)
	})

	t.Run("explicit date and clock time win", func(t *testing.T) {
		handler, repo := newHandler()

		backdate := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC) // a Friday
		err := handler.Handle(context.Background(), RecordCompletionCommand{
			Title:       "Weekly report",
			Category:    "work",
			CompletedAt: &backdate,
			ClockTime:   "09:15",
		})
		require.NoError(t, err)

		records, err := repo.All(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "2026-08-28", records[0].DateKey())
		assert.Equal(t, "09:15", records[0].ClockTime)
		assert.Equal(t, time.Friday, records[0].Weekday)
		assert.Equal(t, patternsdomain.TimeMorning, records[0].TimeOfDay)
	})

	t.Run("backdated completion keeps the current clock", func(t *testing.T) {
		handler, repo := newHandler()

		backdate := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC) // a Friday, midnight
		err := handler.Handle(context.Background(), RecordCompletionCommand{
			Title:       "Weekly report",
			CompletedAt: &backdate,
		})
		require.NoError(t, err)

		records, err := repo.All(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)

		// The date comes from the command, the time of day from the clock; a
		// date-only backdate must not bucket as midnight.
		assert.Equal(t, "2026-08-28", records[0].DateKey())
		assert.Equal(t, "14:30", records[0].ClockTime)
		assert.Equal(t, patternsdomain.TimeAfternoon, records[0].TimeOfDay)
		assert.Equal(t, time.Friday, records[0].Weekday)
	})

	t.Run("malformed clock time is ignored", func(t *testing.T) {
		handler, repo := newHandler()

		err := handler.Handle(context.Background(), RecordCompletionCommand{Title: "Send invoice", ClockTime: "half past nine"})
		require.NoError(t, err)

		records, err := repo.All(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "14:30", records[0].ClockTime)
	})

	t.Run("rejects empty titles", func(t *testing.T) {
		handler, repo := newHandler()

		err := handler.Handle(context.Background(), RecordCompletionCommand{Title: "   "})
		assert.ErrorIs(t, err, ErrEmptyTitle)

		records, _ := repo.All(context.Background())
		assert.Empty(t, records)
	})
}

func TestTrackActivityHandler_Handle(t *testing.T) {
	activities := activitypersistence.NewMemoryActivityRepository()
	tracker := activityservices.NewTracker(activities, patternspersistence.NewMemoryCompletionRepository(), nil)
	handler := NewTrackActivityHandler(tracker, nil)

	require.NoError(t, handler.Handle(context.Background(), TrackActivityCommand{Type: "review"}))
	require.NoError(t, handler.Handle(context.Background(), TrackActivityCommand{}))

	entries, err := activities.All(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "review", entries[0].Type)
	assert.Equal(t, "briefing", entries[1].Type) // empty type defaults
}
