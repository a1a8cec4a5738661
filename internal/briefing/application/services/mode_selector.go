package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daybrief/daybrief/internal/briefing/domain"
)

// Mode trigger thresholds. The rule chain is evaluated in a fixed priority
// order: "you've been away" outranks "you're overloaded" outranks "you're on a
// roll".
const (
	reentryInactiveDays = 3
	catchupOverdueTasks = 5
	conciseRecentCount  = 15
	recentWindowDays    = 7
)

// ActivitySource answers the inactivity and recent-volume questions the mode
// chain needs. Implemented by the activity tracker.
type ActivitySource interface {
	LastActivityDate(ctx context.Context) (*time.Time, error)
	CountRecent(ctx context.Context, days int) (int, error)
}

// ModeSelector classifies the current briefing mode from activity and overdue
// signals.
type ModeSelector struct {
	activity ActivitySource
	logger   *slog.Logger
}

// NewModeSelector creates a mode selector over the given activity source.
func NewModeSelector(activity ActivitySource, logger *slog.Logger) *ModeSelector {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModeSelector{activity: activity, logger: logger}
}

// Select runs the priority-ordered rule chain and returns the first matching
// mode with its reasoning and recommendations.
func (s *ModeSelector) Select(ctx context.Context, bctx domain.BriefingContext) (domain.ModeResult, error) {
	result := domain.ModeResult{Mode: domain.ModeNormal}

	last, err := s.activity.LastActivityDate(ctx)
	if err != nil {
		return result, fmt.Errorf("last activity date: %w", err)
	}
	// With no history at all, inactivity does not trigger; the chain falls
	// through to the workload checks.
	if last != nil {
		result.DaysInactive = daysBetween(*last, bctx.Today)
	}

	result.OverdueTasks = bctx.CountOverdue()

	recent, err := s.activity.CountRecent(ctx, recentWindowDays)
	if err != nil {
		return result, fmt.Errorf("count recent activities: %w", err)
	}
	result.RecentActivities = recent

	switch {
	case last != nil && result.DaysInactive >= reentryInactiveDays:
		result.Mode = domain.ModeReentry
		result.Reasoning = fmt.Sprintf("No briefing activity for %d days - easing back in.", result.DaysInactive)
		result.Recommendations = []string{
			"Start with the top three priorities only.",
			"Review overdue items before taking on new work.",
			"Reschedule anything that no longer matters.",
		}
	case result.OverdueTasks >= catchupOverdueTasks:
		result.Mode = domain.ModeCatchup
		result.Reasoning = fmt.Sprintf("%d overdue tasks - switching to catch-up mode.", result.OverdueTasks)
		result.Recommendations = []string{
			"Tackle the oldest overdue item first.",
			"Break large overdue tasks into smaller pieces.",
			"Defer new commitments until the backlog shrinks.",
		}
	case result.RecentActivities >= conciseRecentCount:
		result.Mode = domain.ModeConcise
		result.Reasoning = fmt.Sprintf("%d activities in the last %d days - keeping the briefing short.", result.RecentActivities, recentWindowDays)
		result.Recommendations = []string{
			"Headlines only; you already know the details.",
			"Protect focus time - skip optional reading.",
		}
	default:
		result.Mode = domain.ModeNormal
		result.Reasoning = "Regular cadence - standard briefing."
	}

	s.logger.Debug("briefing mode selected",
		"mode", string(result.Mode),
		"days_inactive", result.DaysInactive,
		"overdue", result.OverdueTasks,
		"recent", result.RecentActivities,
	)

	return result, nil
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
