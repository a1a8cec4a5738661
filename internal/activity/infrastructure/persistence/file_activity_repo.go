package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/daybrief/daybrief/internal/activity/domain"
	"github.com/daybrief/daybrief/internal/shared/infrastructure/database"
)

// activityEntryJSON is the on-disk shape of one activity entry.
type activityEntryJSON struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	CreatedAt string `json:"timestamp,omitempty"`
}

// FileActivityRepository stores the activity log as a JSON array on disk with
// atomic whole-file writes.
type FileActivityRepository struct {
	path string
}

// NewFileActivityRepository creates a repository at the given file path.
func NewFileActivityRepository(path string) *FileActivityRepository {
	return &FileActivityRepository{path: path}
}

// Append loads the log, adds the entry at the end, and rewrites the file.
func (r *FileActivityRepository) Append(ctx context.Context, entry domain.Entry) error {
	entries, err := r.load()
	if err != nil {
		return err
	}

	entries = append(entries, activityEntryJSON{
		ID:        entry.ID.String(),
		Type:      entry.Type,
		Date:      entry.Date.Format("2006-01-02"),
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	})

	return r.write(entries)
}

// All returns every entry in insertion order, skipping rows that no longer
// parse.
func (r *FileActivityRepository) All(ctx context.Context) ([]domain.Entry, error) {
	raw, err := r.load()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(raw))
	for _, row := range raw {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			continue
		}
		entry := domain.Entry{Type: row.Type, Date: date}
		if id, err := uuid.Parse(row.ID); err == nil {
			entry.ID = id
		}
		if createdAt, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
			entry.CreatedAt = createdAt
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *FileActivityRepository) load() ([]activityEntryJSON, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read activity log: %w", err)
	}

	var entries []activityEntryJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode activity log: %w", err)
	}
	return entries, nil
}

func (r *FileActivityRepository) write(entries []activityEntryJSON) error {
	if err := database.EnsureDirectory(r.path); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode activity log: %w", err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write activity log: %w", err)
	}
	return nil
}
