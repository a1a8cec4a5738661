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

	"github.com/daybrief/daybrief/internal/patterns/domain"
	"github.com/daybrief/daybrief/internal/shared/infrastructure/database"
)

// completionRecordJSON is the on-disk shape of one completion record.
type completionRecordJSON struct {
	ID        string `json:"id"`
	Title     string `json:"task_title"`
	Category  string `json:"task_category,omitempty"`
	Date      string `json:"completion_date"`
	ClockTime string `json:"completion_time,omitempty"`
	Weekday   int    `json:"day_of_week"`
	TimeOfDay string `json:"time_of_day"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FileCompletionRepository stores the completion log as a JSON array on disk.
// Writes replace the whole file atomically so a crash never leaves a
// half-written log behind.
type FileCompletionRepository struct {
	path string
}

// NewFileCompletionRepository creates a repository at the given file path.
func NewFileCompletionRepository(path string) *FileCompletionRepository {
	return &FileCompletionRepository{path: path}
}

// Append loads the log, adds the record at the end, and rewrites the file.
func (r *FileCompletionRepository) Append(ctx context.Context, record domain.CompletionRecord) error {
	records, err := r.load()
	if err != nil {
		return err
	}

	records = append(records, completionRecordJSON{
		ID:        record.ID.String(),
		Title:     record.Title,
		Category:  record.Category,
		Date:      record.Date.Format("2006-01-02"),
		ClockTime: record.ClockTime,
		Weekday:   int(record.Weekday),
		TimeOfDay: string(record.TimeOfDay),
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	})

	return r.write(records)
}

// All returns every record in insertion order. Rows that no longer parse are
// skipped rather than failing the whole load.
func (r *FileCompletionRepository) All(ctx context.Context) ([]domain.CompletionRecord, error) {
	raw, err := r.load()
	if err != nil {
		return nil, err
	}

	records := make([]domain.CompletionRecord, 0, len(raw))
	for _, row := range raw {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			continue
		}
		rec := domain.CompletionRecord{
			Title:     row.Title,
			Category:  row.Category,
			Date:      date,
			ClockTime: row.ClockTime,
			Weekday:   time.Weekday(row.Weekday),
			TimeOfDay: domain.TimeOfDay(row.TimeOfDay),
		}
		if id, err := uuid.Parse(row.ID); err == nil {
			rec.ID = id
		}
		if createdAt, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
			rec.CreatedAt = createdAt
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *FileCompletionRepository) load() ([]completionRecordJSON, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read completion log: %w", err)
	}

	var records []completionRecordJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode completion log: %w", err)
	}
	return records, nil
}

func (r *FileCompletionRepository) write(records []completionRecordJSON) error {
	if err := database.EnsureDirectory(r.path); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode completion log: %w", err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write completion log: %w", err)
	}
	return nil
}
