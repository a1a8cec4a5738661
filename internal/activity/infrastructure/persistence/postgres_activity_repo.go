package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybrief/daybrief/internal/activity/domain"
)

// PostgresActivityRepository implements domain.Repository using PostgreSQL.
type PostgresActivityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresActivityRepository creates a new Postgres activity repository.
func NewPostgresActivityRepository(pool *pgxpool.Pool) *PostgresActivityRepository {
	return &PostgresActivityRepository{pool: pool}
}

// EnsureSchema creates the activity_entries table if it does not exist.
func (r *PostgresActivityRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS activity_entries (
			seq BIGSERIAL PRIMARY KEY,
			id UUID NOT NULL,
			type TEXT NOT NULL,
			date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure activity_entries schema: %w", err)
	}
	return nil
}

// Append inserts an entry at the end of the log.
func (r *PostgresActivityRepository) Append(ctx context.Context, entry domain.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activity_entries (id, type, date, created_at)
		VALUES ($1, $2, $3, $4)
	`,
		entry.ID,
		entry.Type,
		entry.Date,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}

// All returns every entry in insertion order.
func (r *PostgresActivityRepository) All(ctx context.Context) ([]domain.Entry, error) {
	rows, err := r.pool.Query(ctx, `
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
		var id uuid.UUID
		var date, created time.Time
		if err := rows.Scan(&id, &entry.Type, &date, &created); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		entry.ID = id
		entry.Date = date
		entry.CreatedAt = created
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
