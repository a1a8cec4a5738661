package domain

import "time"

// DefaultMinimumDays is the number of distinct completion dates required before
// learned boosts activate.
const DefaultMinimumDays = 14

// InfluenceLevel bounds how much historical pattern data may shift a score.
type InfluenceLevel string

const (
	InfluenceLow    InfluenceLevel = "low"
	InfluenceMedium InfluenceLevel = "medium"
	InfluenceHigh   InfluenceLevel = "high"
)

// Cap returns the hard ceiling on the combined pattern boost for a single item.
// The caps are deliberately small: a pattern boost must never be able to outrank
// a deadline-driven score on its own. Unknown levels get the medium cap.
func (l InfluenceLevel) Cap() float64 {
	switch l {
	case InfluenceLow:
		return 5.0
	case InfluenceHigh:
		return 15.0
	default:
		return 10.0
	}
}

// PatternProfile is the derived frequency view over all completion records.
// It is recomputed on demand and never stored.
type PatternProfile struct {
	TotalCompletions  int
	DistinctDays      int
	HasSufficientData bool

	ByCategory     map[string]int
	ByCategoryDay  map[string]map[time.Weekday]int
	ByCategoryTime map[string]map[TimeOfDay]int
	ByDay          map[time.Weekday]int
	ByTime         map[TimeOfDay]int
}

// BuildProfile aggregates records into frequency tables. Categories are
// normalized through InferCategory so untagged completions still contribute.
func BuildProfile(records []CompletionRecord, minimumDays int) *PatternProfile {
	if minimumDays <= 0 {
		minimumDays = DefaultMinimumDays
	}

	p := &PatternProfile{
		ByCategory:     make(map[string]int),
		ByCategoryDay:  make(map[string]map[time.Weekday]int),
		ByCategoryTime: make(map[string]map[TimeOfDay]int),
		ByDay:          make(map[time.Weekday]int),
		ByTime:         make(map[TimeOfDay]int),
	}

	days := make(map[string]struct{})
	for _, rec := range records {
		category := InferCategory(rec.Title, rec.Category)

		p.TotalCompletions++
		days[rec.DateKey()] = struct{}{}
		p.ByCategory[category]++
		p.ByDay[rec.Weekday]++
		p.ByTime[rec.TimeOfDay]++

		if p.ByCategoryDay[category] == nil {
			p.ByCategoryDay[category] = make(map[time.Weekday]int)
		}
		p.ByCategoryDay[category][rec.Weekday]++

		if p.ByCategoryTime[category] == nil {
			p.ByCategoryTime[category] = make(map[TimeOfDay]int)
		}
		p.ByCategoryTime[category][rec.TimeOfDay]++
	}

	p.DistinctDays = len(days)
	p.HasSufficientData = p.DistinctDays >= minimumDays

	return p
}
