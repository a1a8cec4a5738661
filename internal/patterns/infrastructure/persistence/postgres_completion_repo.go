package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybrief/daybrief/internal/patterns/domain"
)

// PostgresCompletionRepository implements domain.CompletionRepository using
// PostgreSQL.
type PostgresCompletionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCompletionRepository creates a new Postgres completion repository.
func NewPostgresCompletionRepository(pool *pgxpool.Pool) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{pool: pool}
}

// EnsureSchema creates the completion_records table if it does not exist.
func (r *PostgresCompletionRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS completion_records (
			seq BIGSERIAL PRIMARY KEY,
			id UUID NOT NULL,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			completed_on DATE NOT NULL,
			clock_time TEXT NOT NULL DEFAULT '',
			weekday INT NOT NULL,
			time_of_day TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure completion_records schema: %w", err)
	}
	return nil
}

// Append inserts a record. The log is append-only; there is no dedup.
func (r *PostgresCompletionRepository) Append(ctx context.Context, record domain.CompletionRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO completion_records (id, title, category, completed_on, clock_time, weekday, time_of_day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		record.ID,
		record.Title,
		record.Category,
		record.Date,
		record.ClockTime,
		int(record.Weekday),
		string(record.TimeOfDay),
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert completion record: %w", err)
	}
	return nil
}

// All returns every record in insertion order.
func (r *PostgresCompletionRepository) All(ctx context.Context) ([]domain.CompletionRecord, error) {
	rows, err := r.pool.Query(ctx, `
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
		var rec domain.CompletionRecord
		var id uuid.UUID
		var date, created time.Time
		var weekday int
		var tod string
		if err := rows.Scan(&id, &rec.Title, &rec.Category, &date, &rec.ClockTime, &weekday, &tod, &created); err != nil {
			return nil, fmt.Errorf("scan completion record: %w", err)
		}
		rec.ID = id
		rec.Date = date
		rec.Weekday = time.Weekday(weekday)
		rec.TimeOfDay = domain.TimeOfDay(tod)
		rec.CreatedAt = created
		records = append(records, rec)
	}
	return records, rows.Err()
}
