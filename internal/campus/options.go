package campus

import (
	"cmp"
	"slices"

	"campus-navigator/internal/models"
)

const (
	// MaxRouteOptions caps the number of options returned by RankedRouteOptions.
	MaxRouteOptions = 3

	// AlternateTimeFactor bounds how much slower than the shortest route an alternate may be.
	AlternateTimeFactor = 1.5

	// ShortestRouteDescription labels the first, shortest-distance option.
	ShortestRouteDescription = "Shortest Distance Route"
)

// RankedRouteOptions returns up to MaxRouteOptions routes from source to
// destination, fastest first. The first candidate is the shortest path; the
// others are two-leg routes through every other location m, built as
// ShortestPath(source, m) followed by ShortestPath(m, destination). A candidate is
// kept only if its stop sequence is new and its travel time is within
// AlternateTimeFactor of the shortest route. Waypoints are tried in name order and
// the final sort is stable, so the shortest route always ranks first among equals.
//
// This is a waypoint heuristic, not a k-shortest-paths search: it can miss good
// alternates, and it runs two searches per location, which is quadratic in the
// number of locations.
func (g *Graph) RankedRouteOptions(source, destination string, walkingSpeed float64) []models.RouteOption {
	shortest := g.ShortestPath(source, destination)
	if len(shortest) == 0 {
		return []models.RouteOption{}
	}

	options := []models.RouteOption{g.newOption(shortest, walkingSpeed, ShortestRouteDescription)}
	limit := options[0].TravelTime * AlternateTimeFactor

	for _, waypoint := range g.store.AllNames() {
		if waypoint == source || waypoint == destination {
			continue
		}
		first := g.ShortestPath(source, waypoint)
		second := g.ShortestPath(waypoint, destination)
		if len(first) == 0 || len(second) == 0 {
			continue
		}

		combined := append(first, second[1:]...)
		if containsPath(options, combined) {
			continue
		}
		if g.TravelTime(combined, walkingSpeed) > limit {
			continue
		}
		options = append(options, g.newOption(combined, walkingSpeed, "Alternative Route via "+waypoint))
	}

	slices.SortStableFunc(options, func(a, b models.RouteOption) int {
		return cmp.Compare(a.TravelTime, b.TravelTime)
	})
	if len(options) > MaxRouteOptions {
		options = options[:MaxRouteOptions]
	}
	return options
}

func (g *Graph) newOption(path []string, walkingSpeed float64, description string) models.RouteOption {
	return models.NewRouteOption(path, g.PathDistance(path), g.TravelTime(path, walkingSpeed), description)
}

func containsPath(options []models.RouteOption, path []string) bool {
	return slices.ContainsFunc(options, func(o models.RouteOption) bool {
		return slices.Equal(o.Path, path)
	})
}
