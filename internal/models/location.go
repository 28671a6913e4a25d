package models

import (
	"fmt"
	"math"
)

// Location represents a named point on the campus map with a category label and planar coordinates.
// Two locations are the same place when their names match; category and coordinates are not part of identity.
type Location struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance between l and other
func (l Location) DistanceTo(other Location) float64 {
	return math.Hypot(l.X-other.X, l.Y-other.Y)
}

// String renders the location as "Name (Category) at coordinates (x, y)"
func (l Location) String() string {
	return fmt.Sprintf("%s (%s) at coordinates (%.2f, %.2f)", l.Name, l.Category, l.X, l.Y)
}

// Path is a bidirectional walkway between two named locations.
type Path struct {
	From string `json:"from"`
	To   string `json:"to"`
}
