package domain

import "context"

// CompletionRepository is the append-only store of completion records.
// Implementations must preserve insertion order and must not deduplicate.
type CompletionRepository interface {
	Append(ctx context.Context, record CompletionRecord) error
	All(ctx context.Context) ([]CompletionRecord, error)
}
