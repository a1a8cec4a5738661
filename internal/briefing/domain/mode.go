package domain

// BriefingMode is one of the four adaptive briefing modes.
type BriefingMode string

const (
	ModeNormal  BriefingMode = "normal"
	ModeReentry BriefingMode = "reentry"
	ModeCatchup BriefingMode = "catchup"
	ModeConcise BriefingMode = "concise"
)

// ModeResult carries the selected mode plus the signals that drove the decision.
type ModeResult struct {
	Mode             BriefingMode
	DaysInactive     int
	RecentActivities int
	OverdueTasks     int
	Reasoning        string
	Recommendations  []string
}
