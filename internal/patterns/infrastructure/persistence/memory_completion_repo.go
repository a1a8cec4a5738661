// Package persistence contains storage implementations for the patterns context.
package persistence

import (
	"context"

	"github.com/daybrief/daybrief/internal/patterns/domain"
)

// MemoryCompletionRepository is an in-memory completion log used in tests and
// in limited mode when no storage backend is available. The engine assumes a
// single writer per log, so no locking is needed here.
type MemoryCompletionRepository struct {
	records []domain.CompletionRecord
}

// NewMemoryCompletionRepository creates an empty in-memory log.
func NewMemoryCompletionRepository() *MemoryCompletionRepository {
	return &MemoryCompletionRepository{}
}

// Append adds a record at the end of the log.
func (r *MemoryCompletionRepository) Append(ctx context.Context, record domain.CompletionRecord) error {
	r.records = append(r.records, record)
	return nil
}

// All returns the records in insertion order.
func (r *MemoryCompletionRepository) All(ctx context.Context) ([]domain.CompletionRecord, error) {
	out := make([]domain.CompletionRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
