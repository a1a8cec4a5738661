package queries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activityservices "github.com/daybrief/daybrief/internal/activity/application/services"
	activitypersistence "github.com/daybrief/daybrief/internal/activity/infrastructure/persistence"
	"github.com/daybrief/daybrief/internal/briefing/application/services"
	"github.com/daybrief/daybrief/internal/briefing/domain"
	patternspersistence "github.com/daybrief/daybrief/internal/patterns/infrastructure/persistence"
)

func TestGetBriefingModeHandler_Handle(t *testing.T) {
	today := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	tracker := activityservices.NewTracker(
		activitypersistence.NewMemoryActivityRepository(),
		patternspersistence.NewMemoryCompletionRepository(),
		nil,
	)
	tracker.SetClock(func() time.Time { return today })

	handler := NewGetBriefingModeHandler(services.NewModeSelector(tracker, nil), nil)

	t.Run("fresh install lands in normal mode", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), BriefingModeQuery{Context: domain.NewBriefingContext(today, nil)})
		require.NoError(t, err)

		assert.Equal(t, "normal", result.Mode)
		assert.Equal(t, 0, result.DaysInactive)
		assert.NotEmpty(t, result.Reasoning)
	})

	t.Run("after a week away the mode flips to reentry", func(t *testing.T) {
		tracker.SetClock(func() time.Time { return today.AddDate(0, 0, -7) })
		require.NoError(t, tracker.Track(context.Background(), "briefing"))
		tracker.SetClock(func() time.Time { return today })

		result, err := handler.Handle(context.Background(), BriefingModeQuery{Context: domain.NewBriefingContext(today, nil)})
		require.NoError(t, err)

		assert.Equal(t, "reentry", result.Mode)
		assert.Equal(t, 7, result.DaysInactive)
		assert.NotEmpty(t, result.Recommendations)
	})
}
