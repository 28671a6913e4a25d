package repository

import (
	"context"
	"fmt"

	"campus-navigator/internal/config"
	"campus-navigator/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Source provides the locations and paths used to seed the campus graph
type Source interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListPaths(ctx context.Context) ([]models.Path, error)
}

// OpenSource returns the seed source selected by cfg and a function releasing it
func OpenSource(ctx context.Context, cfg config.Config) (Source, func(), error) {
	switch cfg.SeedSource {
	case config.SeedSample:
		return NewSampleCampus(), func() {}, nil
	case config.SeedPostgres:
		pool, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: failed to connect to db: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("repository: failed to reach db: %w", err)
		}
		return NewRepository(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("repository: unknown seed source %q", cfg.SeedSource)
	}
}
