package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daybrief/daybrief/internal/patterns/domain"
)

// SQLiteCompletionRepository implements domain.CompletionRepository using SQLite.
type SQLiteCompletionRepository struct {
	db *sql.DB
}

// NewSQLiteCompletionRepository creates a new SQLite completion repository.
func NewSQLiteCompletionRepository(db *sql.DB) *SQLiteCompletionRepository {
	return &SQLiteCompletionRepository{db: db}
}

// EnsureSchema creates the completion_records table if it does not exist.
func (r *SQLiteCompletionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS completion_records (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			completed_on TEXT NOT NULL,
			clock_time TEXT NOT NULL DEFAULT '',
			weekday INTEGER NOT NULL,
			time_of_day TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure completion_records schema: %w", err)
	}
	return nil
}

// Append inserts a record. The log is append-only; there is no dedup.
func (r *SQLiteCompletionRepository) Append(ctx context.Context, record domain.CompletionRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO completion_records (id, title, category, completed_on, clock_time, weekday, time_of_day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		record.ID.String(),
		record.Title,
		record.Category,
		record.Date.Format("2006-01-02"),
		record.ClockTime,
		int(record.Weekday),
		string(record.TimeOfDay),
		record.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert completion record: %w", err)
	}
	return nil
}

// All returns every record in insertion order.
func (r *SQLiteCompletionRepository) All(ctx context.Context) ([]domain.CompletionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, category, completed_on, clock_time, weekday, time_of_day, created_at
		FROM completion_records
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("query completion records: %w", err)
	}
	defer rows.Close()

	var records []domain.CompletionRecord
	for rows.Next() {
		rec, err := scanCompletionRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompletionRow(row rowScanner) (domain.CompletionRecord, error) {
	var rec domain.CompletionRecord
	var id, completedOn, tod, created string
	var weekday int
	if err := row.Scan(&id, &rec.Title, &rec.Category, &completedOn, &rec.ClockTime, &weekday, &tod, &created); err != nil {
		return rec, fmt.Errorf("scan completion record: %w", err)
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return rec, fmt.Errorf("invalid completion id: %w", err)
	}
	rec.ID = parsedID

	date, err := time.Parse("2006-01-02", completedOn)
	if err != nil {
		return rec, fmt.Errorf("invalid completed_on: %w", err)
	}
	rec.Date = date
	rec.Weekday = time.Weekday(weekday)
	rec.TimeOfDay = domain.TimeOfDay(tod)

	if createdAt, err := time.Parse(time.RFC3339, created); err == nil {
		rec.CreatedAt = createdAt
	}

	return rec, nil
}
