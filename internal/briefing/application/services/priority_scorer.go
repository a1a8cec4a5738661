// Package services contains the briefing scoring and mode-selection services.
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daybrief/daybrief/internal/briefing/domain"
	patternsdomain "github.com/daybrief/daybrief/internal/patterns/domain"
)

// Item-type weights. Stated priorities outrank commitments, which outrank
// weekly tasks.
const (
	weightPriority   = 35.0
	weightCommitment = 25.0
	weightTask       = 15.0
)

// Urgency tier thresholds over the final total score.
const (
	tierCritical = 90.0
	tierHigh     = 60.0
	tierMedium   = 30.0
)

// workCategories flag an item as work-related for the weekday/weekend context
// adjustment. Matched case-insensitively as substrings of the category.
var workCategories = []string{"work", "project", "team", "meeting", "client"}

// complexKeywords mark deep-work titles; simpleKeywords mark quick actions.
// The tables are checked in this order when classifying task type, so a title
// matching both buckets classifies as deep work.
var (
	complexKeywords = []string{"design", "architect", "plan", "research", "analyze", "write"}
	simpleKeywords  = []string{"send", "email", "call", "schedule", "update", "review"}
)

// fridayAdminKeywords trigger the Friday admin-task heuristic.
var fridayAdminKeywords = []string{"admin", "expense", "timesheet", "report", "update"}

// PatternSource provides the bounded pattern boost for an item. Implemented by
// the pattern analyzer; nil disables the pattern step entirely.
type PatternSource interface {
	Boost(title, category string, weekday time.Weekday, timeOfDay patternsdomain.TimeOfDay) (float64, []string)
}

// ScoreInput is the per-call environment for scoring a batch of items.
type ScoreInput struct {
	Today     time.Time
	Weekday   time.Weekday
	IsWeekend bool
	TimeOfDay patternsdomain.TimeOfDay

	// EnergyLevel is an optional 1-10 reading from a health collaborator or a
	// manual prompt. Out-of-range values are ignored.
	EnergyLevel *int

	Patterns PatternSource
}

// Scorer computes a numeric score, urgency tier, and a reason trail for each
// item. Scoring is pure; all shared state arrives through ScoreInput.
type Scorer struct {
	logger *slog.Logger
}

// NewScorer creates a priority scorer.
func NewScorer(logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{logger: logger}
}

// Score evaluates a single item. The steps are additive; their order matters
// only for the reason trail, not for the sum.
func (s *Scorer) Score(item domain.ScorableItem, in ScoreInput) domain.ScoredItem {
	var score float64
	var reasons []domain.Reason

	// Step 1: deadline urgency. Malformed deadlines are treated as absent.
	provisional := domain.UrgencyLow
	if deadline := domain.ParseDeadline(item.Deadline); deadline != nil {
		var delta float64
		delta, provisional, reasons = deadlineUrgency(*deadline, in.Today, reasons)
		score += delta
	}

	// Step 2: item-type weight.
	switch item.Type {
	case domain.ItemTypePriority:
		score += weightPriority
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonItemType, Text: "focus priority"})
	case domain.ItemTypeCommitment:
		score += weightCommitment
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonItemType, Text: "commitment"})
	default:
		score += weightTask
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonItemType, Text: "weekly task"})
	}

	// Step 3: weekday context.
	work := isWorkRelated(item.Category)
	if in.IsWeekend {
		switch {
		case work && (provisional == domain.UrgencyCritical || provisional == domain.UrgencyHigh):
			reasons = append(reasons, domain.Reason{Kind: domain.ReasonWeekContext, Text: "urgent work (weekend)"})
		case work:
			score -= 30
			reasons = append(reasons, domain.Reason{Kind: domain.ReasonWeekContext, Text: "work item (weekend - lower priority)"})
		default:
			score += 10
			reasons = append(reasons, domain.Reason{Kind: domain.ReasonWeekContext, Text: "personal time"})
		}
	} else {
		if work {
			score += 20
			reasons = append(reasons, domain.Reason{Kind: domain.ReasonWeekContext, Text: "work priority (weekday)"})
		} else {
			score += 5
		}
	}

	// Step 4: energy adjustment, only with a valid reading.
	if in.EnergyLevel != nil && *in.EnergyLevel >= 1 && *in.EnergyLevel <= 10 {
		energy := *in.EnergyLevel
		heavy := matchesAny(item.Title, complexKeywords)
		quick := matchesAny(item.Title, simpleKeywords)

		switch {
		case energy >= 7 && heavy:
			score += 15
			reasons = append(reasons, domain.Reason{Kind: domain.ReasonEnergy, Text: "good energy for deep work"})
		case energy <= 4 && heavy:
			score -= 20
			reasons = append(reasons, domain.Reason{Kind: domain.ReasonEnergy, Text: "low energy - heavy task"})
		}
		if energy <= 4 && quick {
			score += 10
			reasons = append(reasons, domain.Reason{Kind: domain.ReasonEnergy, Text: "low energy - quick win"})
		}
	}

	// Step 5: day-of-week heuristics.
	if in.Weekday == time.Monday && (matchesAny(item.Title, []string{"meeting", "standup"}) || matchesAny(item.Category, []string{"meeting", "standup"})) {
		score += 10
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonDayOfWeek, Text: "Monday meeting"})
	}
	if in.Weekday == time.Friday && matchesAny(item.Title, fridayAdminKeywords) {
		score += 10
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonDayOfWeek, Text: "Friday admin task"})
	}

	// Step 6: pattern boost, added verbatim with its own reason fragments.
	if in.Patterns != nil {
		boost, fragments := in.Patterns.Boost(item.Title, item.Category, in.Weekday, in.TimeOfDay)
		score += boost
		for _, f := range fragments {
			reasons = append(reasons, domain.Reason{Kind: domain.ReasonPattern, Text: f})
		}
	}

	return domain.ScoredItem{
		ScorableItem: item,
		Score:        score,
		Reasons:      reasons,
		Urgency:      urgencyForScore(score),
		TaskType:     ClassifyTaskType(item.Title),
	}
}

// deadlineUrgency scores the deadline step and returns the provisional tier
// consulted by the weekend rule.
func deadlineUrgency(deadline, today time.Time, reasons []domain.Reason) (float64, domain.UrgencyLevel, []domain.Reason) {
	days := domain.DaysUntil(deadline, today)
	switch {
	case days < 0:
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonDeadline, Text: fmt.Sprintf("OVERDUE by %d days", -days)})
		return 100, domain.UrgencyCritical, reasons
	case days == 0:
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonDeadline, Text: "due TODAY"})
		return 90, domain.UrgencyCritical, reasons
	case days == 1:
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonDeadline, Text: "due tomorrow"})
		return 75, domain.UrgencyHigh, reasons
	case days <= 3:
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonDeadline, Text: fmt.Sprintf("due in %d days", days)})
		return 60, domain.UrgencyHigh, reasons
	case days <= 7:
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonDeadline, Text: "due this week"})
		return 40, domain.UrgencyMedium, reasons
	default:
		reasons = append(reasons, domain.Reason{Kind: domain.ReasonDeadline, Text: fmt.Sprintf("due in %d days", days)})
		return 20, domain.UrgencyLow, reasons
	}
}

// urgencyForScore recomputes the display tier from the final total.
func urgencyForScore(score float64) domain.UrgencyLevel {
	switch {
	case score >= tierCritical:
		return domain.UrgencyCritical
	case score >= tierHigh:
		return domain.UrgencyHigh
	case score >= tierMedium:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

// ClassifyTaskType buckets a title by effort. Complex keywords win over simple
// ones; that ordering is part of the contract.
func ClassifyTaskType(title string) domain.TaskType {
	if matchesAny(title, complexKeywords) {
		return domain.TaskTypeDeepWork
	}
	if matchesAny(title, simpleKeywords) {
		return domain.TaskTypeAdmin
	}
	return domain.TaskTypeGeneral
}

func isWorkRelated(category string) bool {
	return matchesAny(category, workCategories)
}

func matchesAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
