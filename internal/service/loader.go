package service

import (
	"context"
	"fmt"

	"campus-navigator/internal/campus"
	"campus-navigator/internal/models"

	"github.com/rs/zerolog"
)

// CampusRepository is the seed source for the campus graph
type CampusRepository interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListPaths(ctx context.Context) ([]models.Path, error)
}

// LoadGraph builds a campus graph from repo. All locations are added before any
// path. Paths naming an unknown location are skipped by the graph and reported here.
func LoadGraph(ctx context.Context, repo CampusRepository, logger zerolog.Logger) (*campus.Graph, error) {
	locations, err := repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load locations: %w", err)
	}

	paths, err := repo.ListPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load paths: %w", err)
	}

	g := campus.NewGraph()
	for _, loc := range locations {
		g.AddLocation(loc)
	}

	skipped := 0
	for _, p := range paths {
		if !g.Exists(p.From) || !g.Exists(p.To) {
			logger.Warn().Str("from", p.From).Str("to", p.To).Msg("skipping path with unknown endpoint")
			skipped++
		}
		g.AddPath(p.From, p.To)
	}

	logger.Info().
		Int("locations", g.Len()).
		Int("paths", len(paths)-skipped).
		Int("skipped", skipped).
		Msg("campus graph loaded")

	return g, nil
}
