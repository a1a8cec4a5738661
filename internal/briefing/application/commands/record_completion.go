// Package commands contains the write-side handlers for the briefing context.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	patternsdomain "github.com/daybrief/daybrief/internal/patterns/domain"
)

// ErrEmptyTitle is returned when a completion has no title.
var ErrEmptyTitle = errors.New("completion title cannot be empty")

// RecordCompletionCommand appends a task completion to the pattern store.
// CompletedAt supplies the completion date and defaults to today; the time of
// day comes from ClockTime ("HH:MM") when present, falling back to the current
// clock. Malformed ClockTime values are ignored.
type RecordCompletionCommand struct {
	Title       string
	Category    string
	CompletedAt *time.Time
	ClockTime   string
}

// RecordCompletionHandler handles the RecordCompletionCommand.
type RecordCompletionHandler struct {
	completions patternsdomain.CompletionRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewRecordCompletionHandler creates the handler.
func NewRecordCompletionHandler(completions patternsdomain.CompletionRepository, logger *slog.Logger) *RecordCompletionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordCompletionHandler{completions: completions, logger: logger, now: time.Now}
}

// SetClock overrides the handler's clock. Intended for tests.
func (h *RecordCompletionHandler) SetClock(now func() time.Time) {
	h.now = now
}

// Handle appends the completion record.
func (h *RecordCompletionHandler) Handle(ctx context.Context, cmd RecordCompletionCommand) error {
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return ErrEmptyTitle
	}

	now := h.now()
	completedAt := now
	if cmd.CompletedAt != nil {
		// A backdated completion keeps the current wall clock unless an
		// explicit time overrides it below.
		d := *cmd.CompletedAt
		completedAt = time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), 0, 0, now.Location())
	}
	if clock, err := time.Parse("15:04", strings.TrimSpace(cmd.ClockTime)); err == nil {
		completedAt = time.Date(
			completedAt.Year(), completedAt.Month(), completedAt.Day(),
			clock.Hour(), clock.Minute(), 0, 0, completedAt.Location(),
		)
	}

	record := patternsdomain.NewCompletionRecord(title, strings.TrimSpace(cmd.Category), completedAt)
	if err := h.completions.Append(ctx, record); err != nil {
		return fmt.Errorf("append completion: %w", err)
	}

	h.logger.Info("completion recorded",
		"title", record.Title,
		"category", patternsdomain.InferCategory(record.Title, record.Category),
		"date", record.DateKey(),
		"time_of_day", string(record.TimeOfDay),
	)
	return nil
}
