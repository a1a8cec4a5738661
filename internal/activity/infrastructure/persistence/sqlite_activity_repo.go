package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daybrief/daybrief/internal/activity/domain"
)

// SQLiteActivityRepository implements domain.Repository using SQLite.
type SQLiteActivityRepository struct {
	db *sql.DB
}

// NewSQLiteActivityRepository creates a new SQLite activity repository.
func NewSQLiteActivityRepository(db *sql.DB) *SQLiteActivityRepository {
	return &SQLiteActivityRepository{db: db}
}

// EnsureSchema creates the activity_entries table if it does not exist.
func (r *SQLiteActivityRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS activity_entries (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			type TEXT NOT NULL,
			date TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure activity_entries schema: %w", err)
	}
	return nil
}

// Append inserts an entry at the end of the log.
func (r *SQLiteActivityRepository) Append(ctx context.Context, entry domain.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_entries (id, type, date, created_at)
		VALUES (?, ?, ?, ?)
	`,
		entry.ID.String(),
		entry.Type,
		entry.Date.Format("2006-01-02"),
		entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}

// All returns every entry in insertion order.
func (r *SQLiteActivityRepository) All(ctx context.Context) ([]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, date, created_at
		FROM activity_entries
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("query activity entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var entry domain.Entry
		var id, date, created string
		if err := rows.Scan(&id, &entry.Type, &date, &created); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}

		parsedID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid activity id: %w", err)
		}
		entry.ID = parsedID

		parsedDate, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("invalid activity date: %w", err)
		}
		entry.Date = parsedDate

		if createdAt, err := time.Parse(time.RFC3339, created); err == nil {
			entry.CreatedAt = createdAt
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
