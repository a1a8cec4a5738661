package commands

import (
	"context"
	"log/slog"
	"strings"

	activityservices "github.com/daybrief/daybrief/internal/activity/application/services"
)

// TrackActivityCommand appends a briefing-generation event to the activity log.
type TrackActivityCommand struct {
	Type string
}

// TrackActivityHandler handles the TrackActivityCommand.
type TrackActivityHandler struct {
	tracker *activityservices.Tracker
	logger  *slog.Logger
}

// NewTrackActivityHandler creates the handler.
func NewTrackActivityHandler(tracker *activityservices.Tracker, logger *slog.Logger) *TrackActivityHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackActivityHandler{tracker: tracker, logger: logger}
}

// Handle appends the activity. Empty types default to "briefing".
func (h *TrackActivityHandler) Handle(ctx context.Context, cmd TrackActivityCommand) error {
	activityType := strings.TrimSpace(cmd.Type)
	if activityType == "" {
		activityType = "briefing"
	}
	return h.tracker.Track(ctx, activityType)
}
