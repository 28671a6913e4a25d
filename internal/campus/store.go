// Package campus holds the routing core: an in-memory store of campus locations and
// the walking graph built on top of it. Nothing in this package performs I/O or
// returns errors; unknown names yield empty results or the Unreachable distance.
package campus

import (
	"math"
	"slices"

	"campus-navigator/internal/models"
)

// Unreachable is the distance reported when either endpoint is not in the store.
var Unreachable = math.Inf(1)

// Store keeps one Location record per name.
type Store struct {
	locations map[string]models.Location
}

// NewStore creates an empty location store
func NewStore() *Store {
	return &Store{locations: make(map[string]models.Location)}
}

// Upsert inserts loc, replacing any record already stored under the same name.
func (s *Store) Upsert(loc models.Location) {
	s.locations[loc.Name] = loc
}

// Exists reports whether name is stored.
func (s *Store) Exists(name string) bool {
	_, ok := s.locations[name]
	return ok
}

// Get returns the record for name and whether it was found.
func (s *Store) Get(name string) (models.Location, bool) {
	loc, ok := s.locations[name]
	return loc, ok
}

// DistanceBetween returns the Euclidean distance between a and b, or Unreachable
// if either is unknown. Callers that need to tell the two apart must check Exists.
func (s *Store) DistanceBetween(a, b string) float64 {
	from, ok := s.locations[a]
	if !ok {
		return Unreachable
	}
	to, ok := s.locations[b]
	if !ok {
		return Unreachable
	}
	return from.DistanceTo(to)
}

// AllNames returns every stored name in ascending order.
func (s *Store) AllNames() []string {
	names := make([]string, 0, len(s.locations))
	for name := range s.locations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of stored locations.
func (s *Store) Len() int {
	return len(s.locations)
}
