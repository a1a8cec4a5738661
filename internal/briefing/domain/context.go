package domain

import "time"

// BriefingContext is the parsed daily context supplied by the state-file parser.
type BriefingContext struct {
	Today     time.Time
	Weekday   time.Weekday
	IsWeekend bool
	Items     []ScorableItem
}

// NewBriefingContext builds a context for a given day, deriving the weekday and
// weekend flag from the date.
func NewBriefingContext(today time.Time, items []ScorableItem) BriefingContext {
	wd := today.Weekday()
	return BriefingContext{
		Today:     today,
		Weekday:   wd,
		IsWeekend: wd == time.Saturday || wd == time.Sunday,
		Items:     items,
	}
}

// CountOverdue returns the number of incomplete items whose deadline parses and
// falls strictly before today.
func (c BriefingContext) CountOverdue() int {
	count := 0
	for _, item := range c.Items {
		if item.Completed {
			continue
		}
		deadline := ParseDeadline(item.Deadline)
		if deadline != nil && DaysUntil(*deadline, c.Today) < 0 {
			count++
		}
	}
	return count
}
