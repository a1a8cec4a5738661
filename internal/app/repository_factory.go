package app

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	activitydomain "github.com/daybrief/daybrief/internal/activity/domain"
	activitypersistence "github.com/daybrief/daybrief/internal/activity/infrastructure/persistence"
	patternsdomain "github.com/daybrief/daybrief/internal/patterns/domain"
	patternspersistence "github.com/daybrief/daybrief/internal/patterns/infrastructure/persistence"
	"github.com/daybrief/daybrief/internal/shared/infrastructure/database"
	"github.com/daybrief/daybrief/pkg/config"
)

// repositories bundles the two log stores plus whatever connection must be
// closed on shutdown.
type repositories struct {
	completions patternsdomain.CompletionRepository
	activities  activitydomain.Repository

	sqlDB  *sql.DB
	pgPool *pgxpool.Pool
}

func (r *repositories) close() error {
	if r.sqlDB != nil {
		return r.sqlDB.Close()
	}
	if r.pgPool != nil {
		r.pgPool.Close()
	}
	return nil
}

// newRepositories creates repositories for the configured storage backend.
func newRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	backend := database.DetectBackend(cfg.Storage, cfg.DatabaseURL)

	switch backend {
	case database.BackendPostgres:
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		completions := patternspersistence.NewPostgresCompletionRepository(pool)
		activities := activitypersistence.NewPostgresActivityRepository(pool)
		if err := completions.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		if err := activities.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &repositories{completions: completions, activities: activities, pgPool: pool}, nil

	case database.BackendFile:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = database.DefaultDataDir()
		}
		return &repositories{
			completions: patternspersistence.NewFileCompletionRepository(filepath.Join(dataDir, "completions.json")),
			activities:  activitypersistence.NewFileActivityRepository(filepath.Join(dataDir, "activity.json")),
		}, nil

	case database.BackendSQLite:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = database.DefaultDataDir()
		}
		db, err := database.OpenSQLite(ctx, filepath.Join(dataDir, "daybrief.db"))
		if err != nil {
			return nil, err
		}
		completions := patternspersistence.NewSQLiteCompletionRepository(db)
		activities := activitypersistence.NewSQLiteActivityRepository(db)
		if err := completions.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		if err := activities.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{completions: completions, activities: activities, sqlDB: db}, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}
