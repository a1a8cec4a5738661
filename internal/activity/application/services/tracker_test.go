package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activitypersistence "github.com/daybrief/daybrief/internal/activity/infrastructure/persistence"
	patternsdomain "github.com/daybrief/daybrief/internal/patterns/domain"
	patternspersistence "github.com/daybrief/daybrief/internal/patterns/infrastructure/persistence"
)

func newTestTracker(now time.Time) (*Tracker, *activitypersistence.MemoryActivityRepository, *patternspersistence.MemoryCompletionRepository) {
	activities := activitypersistence.NewMemoryActivityRepository()
	completions := patternspersistence.NewMemoryCompletionRepository()
	tracker := NewTracker(activities, completions, nil)
	tracker.SetClock(func() time.Time { return now })
	return tracker, activities, completions
}

func TestTracker_Track(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tracker, activities, _ := newTestTracker(now)

	require.NoError(t, tracker.Track(context.Background(), "briefing"))

	entries, err := activities.All(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "briefing", entries[0].Type)
	assert.Equal(t, now, entries[0].Date)
}

func TestTracker_LastActivityDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("nil with no history", func(t *testing.T) {
		tracker, _, _ := newTestTracker(now)
		last, err := tracker.LastActivityDate(context.Background())
		require.NoError(t, err)
		assert.Nil(t, last)
	})

	t.Run("takes the max across both logs", func(t *testing.T) {
		tracker, _, completions := newTestTracker(now)

		// Briefing viewed five days ago, task completed two days ago.
		tracker.SetClock(func() time.Time { return now.AddDate(0, 0, -5) })
		require.NoError(t, tracker.Track(context.Background(), "briefing"))

		rec := patternsdomain.NewCompletionRecord("Send email", "", now.AddDate(0, 0, -2))
		require.NoError(t, completions.Append(context.Background(), rec))

		last, err := tracker.LastActivityDate(context.Background())
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), *last)
	})
}

func TestTracker_CountRecent(t *testing.T) {
	now := time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC)
	tracker, _, completions := newTestTracker(now)

	// One briefing exactly at the window edge, one inside, one outside.
	for _, daysAgo := range []int{6, 2, 7} {
		tracker.SetClock(func() time.Time { return now.AddDate(0, 0, -daysAgo) })
		require.NoError(t, tracker.Track(context.Background(), "briefing"))
	}
	tracker.SetClock(func() time.Time { return now })

	// Completions count toward activity volume as well.
	rec := patternsdomain.NewCompletionRecord("Send email", "", now.AddDate(0, 0, -1))
	require.NoError(t, completions.Append(context.Background(), rec))

	count, err := tracker.CountRecent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, count) // 6 and 2 days ago plus the completion; 7 days ago is out

	t.Run("non-positive window falls back to a week", func(t *testing.T) {
		count, err := tracker.CountRecent(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}
