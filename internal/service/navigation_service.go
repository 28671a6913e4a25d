package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"campus-navigator/internal/campus"
	"campus-navigator/internal/models"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by NavigationService. Match them with errors.Is.
var (
	// ErrLocationNotFound is returned when a requested name is not on the map.
	ErrLocationNotFound = errors.New("location not found")
	// ErrNoRoute is returned when both endpoints exist but no walkable path connects them.
	ErrNoRoute = errors.New("no route between locations")
	// ErrInvalidSpeed is returned for a walking speed that is not a positive finite number.
	ErrInvalidSpeed = errors.New("walking speed must be positive")
)

// NavigationService answers route queries against a loaded campus graph.
// The graph must not be mutated once the service is serving requests.
type NavigationService struct {
	graph        *campus.Graph
	walkingSpeed float64
	logger       zerolog.Logger
}

// NewNavigationService creates a navigation service; walkingSpeed (km/h) is used
// whenever a query does not supply its own.
func NewNavigationService(graph *campus.Graph, walkingSpeed float64, logger zerolog.Logger) *NavigationService {
	return &NavigationService{graph: graph, walkingSpeed: walkingSpeed, logger: logger}
}

// Locations lists every location ordered by name
func (s *NavigationService) Locations(ctx context.Context) ([]models.Location, error) {
	return s.graph.Locations(), nil
}

// Location looks up a single location by name
func (s *NavigationService) Location(ctx context.Context, name string) (*models.Location, error) {
	loc, ok := s.graph.Get(name)
	if !ok {
		return nil, fmt.Errorf("service: %w: %q", ErrLocationNotFound, name)
	}
	return &loc, nil
}

// Neighbors returns the locations directly connected to name
func (s *NavigationService) Neighbors(ctx context.Context, name string) ([]string, error) {
	if !s.graph.Exists(name) {
		return nil, fmt.Errorf("service: %w: %q", ErrLocationNotFound, name)
	}
	return s.graph.Neighbors(name), nil
}

// ShortestRoute finds the shortest walking route between two locations. A speed of
// zero selects the configured default.
func (s *NavigationService) ShortestRoute(ctx context.Context, from, to string, speed float64) (*models.Route, error) {
	speed, err := s.resolve(from, to, speed)
	if err != nil {
		return nil, err
	}

	path := s.graph.ShortestPath(from, to)
	if len(path) == 0 {
		return nil, fmt.Errorf("service: %w: %q -> %q", ErrNoRoute, from, to)
	}

	route := &models.Route{
		Path:       path,
		Distance:   s.graph.PathDistance(path),
		TravelTime: s.graph.TravelTime(path, speed),
	}
	s.logger.Debug().
		Str("from", from).
		Str("to", to).
		Int("stops", len(path)).
		Float64("distance", route.Distance).
		Msg("shortest route computed")

	return route, nil
}

// RouteOptions returns up to three ranked routes between two locations, fastest first
func (s *NavigationService) RouteOptions(ctx context.Context, from, to string, speed float64) ([]models.RouteOption, error) {
	speed, err := s.resolve(from, to, speed)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: route options canceled: %w", err)
	}

	options := s.graph.RankedRouteOptions(from, to, speed)
	if len(options) == 0 {
		return nil, fmt.Errorf("service: %w: %q -> %q", ErrNoRoute, from, to)
	}

	s.logger.Debug().
		Str("from", from).
		Str("to", to).
		Int("options", len(options)).
		Msg("route options computed")

	return options, nil
}

// resolve validates both endpoints and returns the walking speed to use.
func (s *NavigationService) resolve(from, to string, speed float64) (float64, error) {
	if speed == 0 {
		speed = s.walkingSpeed
	}
	if !(speed > 0) || math.IsInf(speed, 1) {
		return 0, fmt.Errorf("service: %w: %v", ErrInvalidSpeed, speed)
	}
	for _, name := range []string{from, to} {
		if !s.graph.Exists(name) {
			return 0, fmt.Errorf("service: %w: %q", ErrLocationNotFound, name)
		}
	}
	return speed, nil
}
