package usecase

import (
	"context"

	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/service"
)

// DirectoryView is the filtered location directory plus the map marker
// visibility it implies.
type DirectoryView struct {
	Campus    string                  `json:"campus"`
	Locations []entity.DiningLocation `json:"locations"`

	// Markers maps every directory ID to whether its map marker is
	// visible under the current campus filter.
	Markers map[string]bool `json:"markers"`
}

// AddReviewInput submits a review for a dining location. The author is
// optional and defaults to a generic student name.
type AddReviewInput struct {
	Author string `json:"name"`
	Text   string `json:"text" validate:"required"`
}

// ReviewsView lists a location's reviews, newest last, with the latest
// one called out for the card summary.
type ReviewsView struct {
	LocationID string                  `json:"location_id"`
	Reviews    []entity.LocationReview `json:"reviews"`
	Latest     *entity.LocationReview  `json:"latest,omitempty"`
}

// DirectionsInput asks for a route from the user's position to a
// location.
type DirectionsInput struct {
	Lat  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" validate:"gte=-180,lte=180"`
	Mode string  `json:"mode" validate:"required,oneof=walking driving"`
}

// DirectionsView is either a resolved route or a fallback that centers
// the map on the destination.
type DirectionsView struct {
	Route  *service.RouteInfo `json:"route"`
	Center service.Coordinate `json:"center"`

	// Fallback is set when routing failed and only the center is usable.
	Fallback bool `json:"fallback"`
}

// LocationUsecase serves the dining directory, its reviews, and the map
// directions.
type LocationUsecase interface {
	// GetDirectory filters by campus ("all" or empty disables the
	// filter).
	GetDirectory(ctx context.Context, campus string) (*DirectoryView, error)

	GetReviews(ctx context.Context, locationID string) (*ReviewsView, error)
	AddReview(ctx context.Context, locationID string, input *AddReviewInput) (*ReviewsView, error)

	// GetDirections routes from the given origin to the location. A
	// routing failure is not an error to the caller: the view falls back
	// to centering on the destination.
	GetDirections(ctx context.Context, locationID string, input *DirectionsInput) (*DirectionsView, error)
}
