package campus

import (
	"campus-navigator/internal/models"
)

// Graph is an undirected walking graph over the locations in a Store. Edge weights
// are not stored; every traversal recomputes the Euclidean distance between endpoints.
//
// A Graph has no internal locking. AddLocation and AddPath must not run concurrently
// with each other or with any query; concurrent queries on a graph that is no longer
// mutated are safe.
type Graph struct {
	store     *Store
	adjacency map[string][]string
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		store:     NewStore(),
		adjacency: make(map[string][]string),
	}
}

// AddLocation upserts loc and makes sure it has an adjacency entry. Re-adding a
// known name keeps its existing neighbors.
func (g *Graph) AddLocation(loc models.Location) {
	g.store.Upsert(loc)
	if _, ok := g.adjacency[loc.Name]; !ok {
		g.adjacency[loc.Name] = []string{}
	}
}

// AddPath connects a and b in both directions. If either name is unknown the call
// is a silent no-op. Repeated calls add parallel entries; they cost iteration time
// but never change path weights.
func (g *Graph) AddPath(a, b string) {
	if !g.store.Exists(a) || !g.store.Exists(b) {
		return
	}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
}

// Neighbors returns a copy of the neighbor sequence of name, in insertion order.
// Unknown names yield an empty slice.
func (g *Graph) Neighbors(name string) []string {
	return append([]string{}, g.adjacency[name]...)
}

// Exists reports whether name is a known location.
func (g *Graph) Exists(name string) bool {
	return g.store.Exists(name)
}

// Get returns the location stored under name.
func (g *Graph) Get(name string) (models.Location, bool) {
	return g.store.Get(name)
}

// AllNames returns all location names in ascending order.
func (g *Graph) AllNames() []string {
	return g.store.AllNames()
}

// Locations returns all location records ordered by name.
func (g *Graph) Locations() []models.Location {
	names := g.store.AllNames()
	locations := make([]models.Location, 0, len(names))
	for _, name := range names {
		loc, _ := g.store.Get(name)
		locations = append(locations, loc)
	}
	return locations
}

// Len returns the number of locations in the graph.
func (g *Graph) Len() int {
	return g.store.Len()
}

// Distance returns the straight-line distance between two locations, or Unreachable.
func (g *Graph) Distance(a, b string) float64 {
	return g.store.DistanceBetween(a, b)
}

// PathDistance sums the distances between consecutive stops of path. Paths with
// fewer than two stops have zero length.
func (g *Graph) PathDistance(path []string) float64 {
	if len(path) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += g.store.DistanceBetween(path[i], path[i+1])
	}
	return total
}

// TravelTime estimates the walking time of path in minutes. Coordinates are taken
// as meters and walkingSpeed as km/h. walkingSpeed must be positive.
func (g *Graph) TravelTime(path []string, walkingSpeed float64) float64 {
	if len(path) < 2 {
		return 0
	}
	km := g.PathDistance(path) / 1000
	return km / walkingSpeed * 60
}
