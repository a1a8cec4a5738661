package domain

import "strings"

// categoryRule maps a keyword set to a category bucket. Rules are checked in
// order and the first match wins; the ordering is part of the contract since a
// title like "send email update" can match more than one set.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"admin", []string{"email", "expense", "timesheet", "invoice", "report", "schedule", "admin", "form", "paperwork"}},
	{"work", []string{"meeting", "client", "project", "presentation", "review", "standup", "deploy", "release"}},
	{"learning", []string{"read", "study", "course", "learn", "research", "tutorial", "book"}},
	{"health", []string{"gym", "run", "workout", "exercise", "doctor", "yoga", "walk"}},
	{"household", []string{"clean", "laundry", "groceries", "cook", "repair", "garden", "errand"}},
}

// GeneralCategory is the fallback bucket when nothing matches.
const GeneralCategory = "general"

// InferCategory returns the explicit category when present, otherwise infers a
// bucket from title keywords, falling back to "general".
func InferCategory(title, category string) string {
	if c := strings.TrimSpace(strings.ToLower(category)); c != "" {
		return c
	}
	lower := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return GeneralCategory
}

// lightTaskKeywords mark quick, low-effort items. Shared with the Monday
// baseline heuristic.
var lightTaskKeywords = []string{"send", "email", "call", "schedule", "update", "review"}

// IsLightTask reports whether a title looks like a quick administrative action.
func IsLightTask(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range lightTaskKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
