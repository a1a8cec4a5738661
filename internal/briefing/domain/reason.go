package domain

import "strings"

// ReasonKind identifies which scoring step produced a reason fragment.
type ReasonKind string

const (
	ReasonDeadline    ReasonKind = "deadline"
	ReasonItemType    ReasonKind = "item_type"
	ReasonWeekContext ReasonKind = "week_context"
	ReasonEnergy      ReasonKind = "energy"
	ReasonDayOfWeek   ReasonKind = "day_of_week"
	ReasonPattern     ReasonKind = "pattern"
)

// Reason is one triggered scoring justification. Reasons stay structured inside
// the engine and are only joined to a display string at the boundary.
type Reason struct {
	Kind ReasonKind
	Text string
}

// JoinReasons renders the display form of a reason trail.
func JoinReasons(reasons []Reason) string {
	if len(reasons) == 0 {
		return "standard priority"
	}
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = r.Text
	}
	return strings.Join(parts, "; ")
}
