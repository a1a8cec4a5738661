// Package queries contains the read-side handlers for the briefing context.
package queries

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/daybrief/daybrief/internal/briefing/application/services"
	"github.com/daybrief/daybrief/internal/briefing/domain"
	patternservices "github.com/daybrief/daybrief/internal/patterns/application/services"
	patternsdomain "github.com/daybrief/daybrief/internal/patterns/domain"
)

// ScoredItemDTO is the ranked-output shape handed to renderers.
type ScoredItemDTO struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category,omitempty"`
	Type     string  `json:"type"`
	Deadline string  `json:"deadline,omitempty"`
	Score    float64 `json:"priority_score"`
	Reason   string  `json:"priority_reason"`
	Urgency  string  `json:"urgency_level"`
	TaskType string  `json:"task_type"`
}

// RankPrioritiesQuery ranks the context's items. Limit > 0 returns only the
// top N (the get-top-priorities slice); zero returns everything.
type RankPrioritiesQuery struct {
	Context     domain.BriefingContext
	EnergyLevel *int
	Limit       int
}

// RankPrioritiesHandler scores and orders the outstanding items.
type RankPrioritiesHandler struct {
	scorer   *services.Scorer
	analyzer *patternservices.Analyzer
	logger   *slog.Logger
	now      func() time.Time
}

// NewRankPrioritiesHandler creates the handler. The analyzer may be nil, which
// disables the pattern step entirely.
func NewRankPrioritiesHandler(scorer *services.Scorer, analyzer *patternservices.Analyzer, logger *slog.Logger) *RankPrioritiesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RankPrioritiesHandler{
		scorer:   scorer,
		analyzer: analyzer,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock overrides the handler's clock. Intended for tests.
func (h *RankPrioritiesHandler) SetClock(now func() time.Time) {
	h.now = now
}

// Handle executes the query. Completed items never appear in the output, and
// ties keep the relative order items had when first enumerated.
func (h *RankPrioritiesHandler) Handle(ctx context.Context, query RankPrioritiesQuery) ([]ScoredItemDTO, error) {
	input := services.ScoreInput{
		Today:       query.Context.Today,
		Weekday:     query.Context.Weekday,
		IsWeekend:   query.Context.IsWeekend,
		TimeOfDay:   patternsdomain.ClassifyHour(h.now().Hour()),
		EnergyLevel: query.EnergyLevel,
	}

	if h.analyzer != nil && h.analyzer.Enabled() {
		profile, err := h.analyzer.Profile(ctx)
		if err != nil {
			return nil, err
		}
		input.Patterns = h.analyzer.Bind(profile)
	}

	scored := make([]domain.ScoredItem, 0, len(query.Context.Items))
	for _, item := range query.Context.Items {
		if item.Completed {
			continue
		}
		scored = append(scored, h.scorer.Score(item, input))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if query.Limit > 0 && len(scored) > query.Limit {
		scored = scored[:query.Limit]
	}

	h.logger.Debug("priorities ranked", "items", len(scored), "weekday", query.Context.Weekday.String())

	return toScoredDTOs(scored), nil
}

// Top is the get-top-priorities convenience over Handle.
func (h *RankPrioritiesHandler) Top(ctx context.Context, bctx domain.BriefingContext, limit int, energy *int) ([]ScoredItemDTO, error) {
	return h.Handle(ctx, RankPrioritiesQuery{Context: bctx, EnergyLevel: energy, Limit: limit})
}

func toScoredDTOs(items []domain.ScoredItem) []ScoredItemDTO {
	dtos := make([]ScoredItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ScoredItemDTO{
			ID:       item.ID,
			Title:    item.Title,
			Category: item.Category,
			Type:     string(item.Type),
			Deadline: item.Deadline,
			Score:    item.Score,
			Reason:   item.ReasonString(),
			Urgency:  string(item.Urgency),
			TaskType: string(item.TaskType),
		}
	}
	return dtos
}
