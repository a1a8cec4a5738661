// Package app wires daybrief's services and handlers together.
package app

import (
	"context"
	"log/slog"

	activityservices "github.com/daybrief/daybrief/internal/activity/application/services"
	"github.com/daybrief/daybrief/internal/briefing/application/commands"
	"github.com/daybrief/daybrief/internal/briefing/application/queries"
	briefingservices "github.com/daybrief/daybrief/internal/briefing/application/services"
	patternservices "github.com/daybrief/daybrief/internal/patterns/application/services"
	"github.com/daybrief/daybrief/internal/patterns/domain"
	"github.com/daybrief/daybrief/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	repos *repositories

	Analyzer *patternservices.Analyzer
	Tracker  *activityservices.Tracker

	RankPrioritiesHandler   *queries.RankPrioritiesHandler
	GetBriefingModeHandler  *queries.GetBriefingModeHandler
	RecordCompletionHandler *commands.RecordCompletionHandler
	TrackActivityHandler    *commands.TrackActivityHandler
}

// NewContainer initializes storage, services, and handlers.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	analyzer := patternservices.NewAnalyzer(repos.completions, patternservices.Config{
		Enabled:     cfg.Patterns.Enabled,
		Influence:   domain.InfluenceLevel(cfg.Patterns.InfluenceLevel),
		MinimumDays: cfg.Patterns.MinimumDaysRequired,
	}, logger)

	tracker := activityservices.NewTracker(repos.activities, repos.completions, logger)
	scorer := briefingservices.NewScorer(logger)
	selector := briefingservices.NewModeSelector(tracker, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		repos:    repos,
		Analyzer: analyzer,
		Tracker:  tracker,

		RankPrioritiesHandler:   queries.NewRankPrioritiesHandler(scorer, analyzer, logger),
		GetBriefingModeHandler:  queries.NewGetBriefingModeHandler(selector, logger),
		RecordCompletionHandler: commands.NewRecordCompletionHandler(repos.completions, logger),
		TrackActivityHandler:    commands.NewTrackActivityHandler(tracker, logger),
	}, nil
}

// Close releases storage resources.
func (c *Container) Close() error {
	if c.repos == nil {
		return nil
	}
	return c.repos.close()
}
