// Package services contains the pattern analysis services.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/daybrief/daybrief/internal/patterns/domain"
)

// Baseline boosts that apply before any history accumulates. They are small on
// purpose and still subject to the influence cap.
const (
	fridayAdminBoost = 3.0
	mondayLightBoost = 2.0
)

// Minimum share of a category's completions before a learned ratio produces a
// human-readable reason fragment.
const reasonRatioThreshold = 0.4

// Config tunes the analyzer. Mirrors the config.patterns block.
type Config struct {
	Enabled     bool
	Influence   domain.InfluenceLevel
	MinimumDays int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		Influence:   domain.InfluenceMedium,
		MinimumDays: domain.DefaultMinimumDays,
	}
}

// Analyzer turns completion history into bounded priority boosts and
// human-readable insights.
type Analyzer struct {
	repo   domain.CompletionRepository
	cfg    Config
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer over the given completion store.
func NewAnalyzer(repo domain.CompletionRepository, cfg Config, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{repo: repo, cfg: cfg, logger: logger}
}

// Enabled reports whether pattern boosts are active at all.
func (a *Analyzer) Enabled() bool {
	return a.cfg.Enabled
}

// Profile recomputes the frequency profile from all records currently in the
// store.
func (a *Analyzer) Profile(ctx context.Context) (*domain.PatternProfile, error) {
	records, err := a.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completion records: %w", err)
	}
	profile := domain.BuildProfile(records, a.cfg.MinimumDays)
	a.logger.Debug("pattern profile rebuilt",
		"completions", profile.TotalCompletions,
		"distinct_days", profile.DistinctDays,
		"sufficient", profile.HasSufficientData,
	)
	return profile, nil
}

// Boost returns the combined pattern boost for an item on a given weekday and
// time of day, with reason fragments for any contribution. The result is
// clamped to the configured influence cap; the cap is what keeps pattern
// influence subtle enough that it can never outrank a deadline-driven score.
func (a *Analyzer) Boost(profile *domain.PatternProfile, title, category string, weekday time.Weekday, timeOfDay domain.TimeOfDay) (float64, []string) {
	if !a.cfg.Enabled {
		return 0, nil
	}

	limit := a.cfg.Influence.Cap()
	inferred := domain.InferCategory(title, category)

	var boost float64
	var reasons []string

	// Baseline heuristics need no history at all.
	if weekday == time.Friday && inferred == "admin" {
		boost += fridayAdminBoost
		reasons = append(reasons, "Fridays suit admin work")
	}
	if weekday == time.Monday && domain.IsLightTask(title) {
		boost += mondayLightBoost
		reasons = append(reasons, "light task for a Monday")
	}

	// Learned boost only activates with enough distinct completion days.
	if profile != nil && profile.HasSufficientData {
		if total := profile.ByCategory[inferred]; total > 0 {
			dayRatio := float64(profile.ByCategoryDay[inferred][weekday]) / float64(total)
			timeRatio := float64(profile.ByCategoryTime[inferred][timeOfDay]) / float64(total)

			boost += (dayRatio*0.6 + timeRatio*0.4) * limit

			if dayRatio >= reasonRatioThreshold {
				reasons = append(reasons, fmt.Sprintf("you complete %.0f%% of %s tasks on %ss", dayRatio*100, inferred, weekday))
			}
			if timeRatio >= reasonRatioThreshold {
				reasons = append(reasons, fmt.Sprintf("%s is a productive time for %s tasks", timeOfDay, inferred))
			}
		}
	}

	if boost > limit {
		boost = limit
	}
	if boost == 0 {
		return 0, nil
	}
	return boost, reasons
}

// ProfileBoost binds an analyzer to a precomputed profile so a ranking pass can
// score many items without reloading history.
type ProfileBoost struct {
	analyzer *Analyzer
	profile  *domain.PatternProfile
}

// Bind pairs the analyzer with a profile.
func (a *Analyzer) Bind(profile *domain.PatternProfile) *ProfileBoost {
	return &ProfileBoost{analyzer: a, profile: profile}
}

// Boost implements the pattern source consumed by the priority scorer.
func (b *ProfileBoost) Boost(title, category string, weekday time.Weekday, timeOfDay domain.TimeOfDay) (float64, []string) {
	return b.analyzer.Boost(b.profile, title, category, weekday, timeOfDay)
}

// PatternSummary is the weekly-review view over completion history.
type PatternSummary struct {
	HasSufficientData bool
	TotalCompletions  int
	DistinctDays      int
	Insights          []string
}

// IdentifyPatterns produces ranked natural-language insight strings from the
// current history: most productive day and time, then category distribution.
func (a *Analyzer) IdentifyPatterns(ctx context.Context) (*PatternSummary, error) {
	profile, err := a.Profile(ctx)
	if err != nil {
		return nil, err
	}

	summary := &PatternSummary{
		HasSufficientData: profile.HasSufficientData,
		TotalCompletions:  profile.TotalCompletions,
		DistinctDays:      profile.DistinctDays,
	}

	if profile.TotalCompletions == 0 {
		summary.Insights = append(summary.Insights, "No completion history yet - insights will appear as you finish tasks.")
		return summary, nil
	}

	if !profile.HasSufficientData {
		summary.Insights = append(summary.Insights,
			fmt.Sprintf("Collecting data: %d of %d days logged before learned patterns activate.", profile.DistinctDays, a.minimumDays()))
	}

	if day, count, ok := maxWeekday(profile.ByDay); ok {
		share := float64(count) / float64(profile.TotalCompletions) * 100
		summary.Insights = append(summary.Insights,
			fmt.Sprintf("%s is your most productive day (%.0f%% of completions).", day, share))
	}

	if tod, count, ok := maxTimeOfDay(profile.ByTime); ok {
		share := float64(count) / float64(profile.TotalCompletions) * 100
		summary.Insights = append(summary.Insights,
			fmt.Sprintf("You complete the most tasks in the %s (%.0f%%).", tod, share))
	}

	for _, cat := range rankedCategories(profile.ByCategory) {
		share := float64(profile.ByCategory[cat]) / float64(profile.TotalCompletions) * 100
		summary.Insights = append(summary.Insights,
			fmt.Sprintf("%s: %d completions (%.0f%%).", cat, profile.ByCategory[cat], share))
	}

	return summary, nil
}

func (a *Analyzer) minimumDays() int {
	if a.cfg.MinimumDays > 0 {
		return a.cfg.MinimumDays
	}
	return domain.DefaultMinimumDays
}

func maxWeekday(counts map[time.Weekday]int) (time.Weekday, int, bool) {
	best := time.Sunday
	bestCount := math.MinInt
	for day := time.Sunday; day <= time.Saturday; day++ {
		if c, ok := counts[day]; ok && c > bestCount {
			best, bestCount = day, c
		}
	}
	if bestCount == math.MinInt {
		return time.Sunday, 0, false
	}
	return best, bestCount, true
}

func maxTimeOfDay(counts map[domain.TimeOfDay]int) (domain.TimeOfDay, int, bool) {
	order := []domain.TimeOfDay{domain.TimeMorning, domain.TimeAfternoon, domain.TimeEvening, domain.TimeNight}
	var best domain.TimeOfDay
	bestCount := -1
	for _, tod := range order {
		if c := counts[tod]; c > bestCount {
			best, bestCount = tod, c
		}
	}
	if bestCount <= 0 {
		return "", 0, false
	}
	return best, bestCount, true
}

func rankedCategories(counts map[string]int) []string {
	cats := make([]string, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if counts[cats[i]] != counts[cats[j]] {
			return counts[cats[i]] > counts[cats[j]]
		}
		return cats[i] < cats[j]
	})
	return cats
}
