package models

// Route is a single walking route: the ordered stops, their total distance in meters and the travel time in minutes.
type Route struct {
	Path       []string `json:"path"`
	Distance   float64  `json:"distance"`
	TravelTime float64  `json:"travel_time"`
}

// RouteOption is a ranked candidate route together with a description of how it was derived.
type RouteOption struct {
	Path        []string `json:"path"`
	Distance    float64  `json:"distance"`
	TravelTime  float64  `json:"travel_time"`
	Description string   `json:"description"`
}

// NewRouteOption copies path so the option cannot be changed through the caller's slice
func NewRouteOption(path []string, distance, travelTime float64, description string) RouteOption {
	return RouteOption{
		Path:        append([]string(nil), path...),
		Distance:    distance,
		TravelTime:  travelTime,
		Description: description,
	}
}
