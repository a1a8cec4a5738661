package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybrief/daybrief/internal/patterns/domain"
	"github.com/daybrief/daybrief/internal/shared/infrastructure/database"
)

func sampleRecords() []domain.CompletionRecord {
	return []domain.CompletionRecord{
		domain.NewCompletionRecord("Send invoice", "", time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)),
		domain.NewCompletionRecord("Gym session", "health", time.Date(2026, 9, 2, 18, 30, 0, 0, time.UTC)),
		domain.NewCompletionRecord("Send invoice", "", time.Date(2026, 9, 3, 9, 15, 0, 0, time.UTC)),
	}
}

func assertRoundTrip(t *testing.T, repo domain.CompletionRepository) {
	t.Helper()
	ctx := context.Background()

	want := sampleRecords()
	for _, rec := range want {
		require.NoError(t, repo.Append(ctx, rec))
	}

	got, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i, rec := range got {
		assert.Equal(t, want[i].ID, rec.ID)
		assert.Equal(t, want[i].Title, rec.Title)
		assert.Equal(t, want[i].Category, rec.Category)
		assert.Equal(t, want[i].DateKey(), rec.DateKey())
		assert.Equal(t, want[i].ClockTime, rec.ClockTime)
		assert.Equal(t, want[i].Weekday, rec.Weekday)
		assert.Equal(t, want[i].TimeOfDay, rec.TimeOfDay)
	}

	// Duplicates are kept; the log is append-only.
	require.NoError(t, repo.Append(ctx, want[0]))
	got, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, got, len(want)+1)
}

func TestMemoryCompletionRepository(t *testing.T) {
	repo := NewMemoryCompletionRepository()
	assertRoundTrip(t, repo)

	t.Run("All returns a copy", func(t *testing.T) {
		records, err := repo.All(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, records)

		records[0].Title = "mutated"

		fresh, err := repo.All(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", fresh[0].Title)
	})
}

func TestSQLiteCompletionRepository(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLiteCompletionRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	// EnsureSchema is idempotent.
	require.NoError(t, repo.EnsureSchema(ctx))

	assertRoundTrip(t, repo)
}

func TestFileCompletionRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "completions.json")
	repo := NewFileCompletionRepository(path)

	t.Run("empty before first write", func(t *testing.T) {
		records, err := repo.All(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	assertRoundTrip(t, repo)

	t.Run("survives a reopen", func(t *testing.T) {
		reopened := NewFileCompletionRepository(path)
		records, err := reopened.All(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 4)
	})

	t.Run("skips rows with unparseable dates", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		corrupted := []byte(`[{"id":"x","task_title":"ghost","completion_date":"not a date","day_of_week":1,"time_of_day":"morning"}]`)
		require.NoError(t, os.WriteFile(path, corrupted, 0o644))

		records, err := repo.All(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)

		require.NoError(t, os.WriteFile(path, data, 0o644))
	})
}
