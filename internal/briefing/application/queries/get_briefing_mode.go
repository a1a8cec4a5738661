package queries

import (
	"context"
	"log/slog"

	"github.com/daybrief/daybrief/internal/briefing/application/services"
	"github.com/daybrief/daybrief/internal/briefing/domain"
)

// ModeResultDTO is the adaptive-mode output shape handed to renderers.
type ModeResultDTO struct {
	Mode             string   `json:"mode"`
	DaysInactive     int      `json:"days_inactive"`
	RecentActivities int      `json:"recent_activities"`
	OverdueTasks     int      `json:"overdue_tasks"`
	Reasoning        string   `json:"reasoning"`
	Recommendations  []string `json:"recommendations"`
}

// BriefingModeQuery asks for the adaptive mode for a given context.
type BriefingModeQuery struct {
	Context domain.BriefingContext
}

// GetBriefingModeHandler handles the BriefingModeQuery.
type GetBriefingModeHandler struct {
	selector *services.ModeSelector
	logger   *slog.Logger
}

// NewGetBriefingModeHandler creates the handler.
func NewGetBriefingModeHandler(selector *services.ModeSelector, logger *slog.Logger) *GetBriefingModeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GetBriefingModeHandler{selector: selector, logger: logger}
}

// Handle executes the query.
func (h *GetBriefingModeHandler) Handle(ctx context.Context, query BriefingModeQuery) (ModeResultDTO, error) {
	result, err := h.selector.Select(ctx, query.Context)
	if err != nil {
		return ModeResultDTO{}, err
	}
	return ModeResultDTO{
		Mode:             string(result.Mode),
		DaysInactive:     result.DaysInactive,
		RecentActivities: result.RecentActivities,
		OverdueTasks:     result.OverdueTasks,
		Reasoning:        result.Reasoning,
		Recommendations:  result.Recommendations,
	}, nil
}
