// Package domain contains the domain model for the activity bounded context.
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry records one briefing-generation event. Entries are append-only and are
// never pruned by the engine; retention is the storage layer's concern.
type Entry struct {
	ID        uuid.UUID
	Type      string
	Date      time.Time
	CreatedAt time.Time
}

// NewEntry builds an entry for an activity of the given type happening now.
func NewEntry(activityType string, at time.Time) Entry {
	return Entry{
		ID:        uuid.New(),
		Type:      activityType,
		Date:      at,
		CreatedAt: at,
	}
}

// Repository is the append-only store of activity entries.
type Repository interface {
	Append(ctx context.Context, entry Entry) error
	All(ctx context.Context) ([]Entry, error)
}
