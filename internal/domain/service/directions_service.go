// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit
// within a single entity.
package service

import "context"

// TravelMode selects how a route is traversed.
type TravelMode string

const (
	TravelWalking TravelMode = "walking"
	TravelDriving TravelMode = "driving"
)

// Valid reports whether the mode is supported.
func (m TravelMode) Valid() bool {
	return m == TravelWalking || m == TravelDriving
}

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteInfo is the human-facing result of a directions query.
type RouteInfo struct {
	DistanceText string  `json:"distance_text"` // e.g. "0.5 mi"
	DurationText string  `json:"duration_text"` // e.g. "9 mins"
	DistanceKm   float64 `json:"distance_km"`
	DurationMin  float64 `json:"duration_min"`
}

// DirectionsService is the external mapping collaborator. The core only
// needs this contract; any mapping/directions backend can satisfy it.
// There is no timeout and no retry: a failure is reported to the user and
// the caller falls back to centering on the destination.
type DirectionsService interface {
	// Route resolves a route from origin to destination for the given
	// travel mode.
	Route(ctx context.Context, origin, destination Coordinate, mode TravelMode) (*RouteInfo, error)
}
