// Package persistence contains storage implementations for the activity context.
package persistence

import (
	"context"

	"github.com/daybrief/daybrief/internal/activity/domain"
)

// MemoryActivityRepository is an in-memory activity log used in tests and in
// limited mode. Single-writer access is assumed, matching the engine's
// concurrency model.
type MemoryActivityRepository struct {
	entries []domain.Entry
}

// NewMemoryActivityRepository creates an empty in-memory log.
func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{}
}

// Append adds an entry at the end of the log.
func (r *MemoryActivityRepository) Append(ctx context.Context, entry domain.Entry) error {
	r.entries = append(r.entries, entry)
	return nil
}

// All returns the entries in insertion order.
func (r *MemoryActivityRepository) All(ctx context.Context) ([]domain.Entry, error) {
	out := make([]domain.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}
