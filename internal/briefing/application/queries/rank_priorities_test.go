package queries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybrief/daybrief/internal/briefing/application/services"
	"github.com/daybrief/daybrief/internal/briefing/domain"
	patternservices "github.com/daybrief/daybrief/internal/patterns/application/services"
	"github.com/daybrief/daybrief/internal/patterns/infrastructure/persistence"
)

var testToday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // a Tuesday

func newRankHandler() *RankPrioritiesHandler {
	h := NewRankPrioritiesHandler(services.NewScorer(nil), nil, nil)
	h.SetClock(func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) })
	return h
}

func TestRankPrioritiesHandler_Handle(t *testing.T) {
	handler := newRankHandler()

	t.Run("orders by descending score", func(t *testing.T) {
		bctx := domain.NewBriefingContext(testToday, []domain.ScorableItem{
			{ID: "far", Title: "Far out", Type: domain.ItemTypeTask, Deadline: "2026-09-25"},
			{ID: "overdue", Title: "Way late", Type: domain.ItemTypeTask, Deadline: "2026-08-25"},
			{ID: "today", Title: "Due now", Type: domain.ItemTypeTask, Deadline: "2026-09-01"},
		})

		ranked, err := handler.Handle(context.Background(), RankPrioritiesQuery{Context: bctx})
		require.NoError(t, err)
		require.Len(t, ranked, 3)

		assert.Equal(t, "overdue", ranked[0].ID)
		assert.Equal(t, "today", ranked[1].ID)
		assert.Equal(t, "far", ranked[2].ID)
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
		}
	})

	t.Run("filters completed items", func(t *testing.T) {
		bctx := domain.NewBriefingContext(testToday, []domain.ScorableItem{
			{ID: "1", Title: "Done", Type: domain.ItemTypeTask, Completed: true},
			{ID: "2", Title: "Open", Type: domain.ItemTypeTask},
		})

		ranked, err := handler.Handle(context.Background(), RankPrioritiesQuery{Context: bctx})
		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "2", ranked[0].ID)
	})

	t.Run("ties keep enumeration order", func(t *testing.T) {
		bctx := domain.NewBriefingContext(testToday, []domain.ScorableItem{
			{ID: "a", Title: "Same score", Type: domain.ItemTypeTask},
			{ID: "b", Title: "Same score", Type: domain.ItemTypeTask},
			{ID: "c", Title: "Same score", Type: domain.ItemTypeTask},
		})

		ranked, err := handler.Handle(context.Background(), RankPrioritiesQuery{Context: bctx})
		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
	})

	t.Run("limit slices the top of the ranking", func(t *testing.T) {
		bctx := domain.NewBriefingContext(testToday, []domain.ScorableItem{
			{ID: "low", Title: "Low", Type: domain.ItemTypeTask},
			{ID: "high", Title: "High", Type: domain.ItemTypePriority, Deadline: "2026-09-01"},
			{ID: "mid", Title: "Mid", Type: domain.ItemTypeCommitment},
		})

		ranked, err := handler.Handle(context.Background(), RankPrioritiesQuery{Context: bctx, Limit: 2})
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, "high", ranked[0].ID)
		assert.Equal(t, "mid", ranked[1].ID)
	})

	t.Run("empty context yields empty ranking", func(t *testing.T) {
		ranked, err := handler.Handle(context.Background(), RankPrioritiesQuery{Context: domain.NewBriefingContext(testToday, nil)})
		require.NoError(t, err)
		assert.Empty(t, ranked)
	})

	t.Run("DTO carries reason and urgency", func(t *testing.T) {
		bctx := domain.NewBriefingContext(testToday, []domain.ScorableItem{
			{ID: "1", Title: "Way late", Type: domain.ItemTypeTask, Deadline: "2026-08-25"},
		})

		ranked, err := handler.Handle(context.Background(), RankPrioritiesQuery{Context: bctx})
		require.NoError(t, err)
		require.Len(t, ranked, 1)

		assert.Contains(t, ranked[0].Reason, "OVERDUE by 7 days")
		assert.Equal(t, "critical", ranked[0].Urgency)
		assert.Equal(t, "general", ranked[0].TaskType)
	})
}

func TestRankPrioritiesHandler_WithPatterns(t *testing.T) {
	repo := persistence.NewMemoryCompletionRepository()
	analyzer := patternservices.NewAnalyzer(repo, patternservices.DefaultConfig(), nil)

	handler := NewRankPrioritiesHandler(services.NewScorer(nil), analyzer, nil)
	handler.SetClock(func() time.Time { return time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC) })

	// Friday: baseline admin boost separates two otherwise identical tasks.
	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	bctx := domain.NewBriefingContext(friday, []domain.ScorableItem{
		{ID: "plain", Title: "Water plants", Type: domain.ItemTypeTask},
		{ID: "admin", Title: "File expense forms", Type: domain.ItemTypeTask},
	})

	ranked, err := handler.Handle(context.Background(), RankPrioritiesQuery{Context: bctx})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "admin", ranked[0].ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.Contains(t, ranked[0].Reason, "Fridays suit admin work")
}

func TestRankPrioritiesHandler_Top(t *testing.T) {
	handler := newRankHandler()

	bctx := domain.NewBriefingContext(testToday, []domain.ScorableItem{
		{ID: "1", Title: "One", Type: domain.ItemTypeTask},
		{ID: "2", Title: "Two", Type: domain.ItemTypePriority},
		{ID: "3", Title: "Three", Type: domain.ItemTypeTask},
	})

	top, err := handler.Top(context.Background(), bctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "2", top[0].ID)
}
