// Package directions provides a self-contained implementation of the
// mapping collaborator: a great-circle estimator with per-mode speeds.
// Swapping in a real directions backend only means providing another
// service.DirectionsService.
package directions

import (
	"context"
	"fmt"
	"math"

	"gwdining/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	defaultWalkingSpeedKmh = 4.8
	defaultDrivingSpeedKmh = 30.0

	kmPerMile = 1.609344
)

type greatCircleService struct {
	walkingSpeedKmh float64
	drivingSpeedKmh float64
}

// NewGreatCircleService creates the estimator. Non-positive speeds fall
// back to the defaults.
func NewGreatCircleService(walkingSpeedKmh, drivingSpeedKmh float64) service.DirectionsService {
	if walkingSpeedKmh <= 0 {
		walkingSpeedKmh = defaultWalkingSpeedKmh
	}
	if drivingSpeedKmh <= 0 {
		drivingSpeedKmh = defaultDrivingSpeedKmh
	}

	return &greatCircleService{
		walkingSpeedKmh: walkingSpeedKmh,
		drivingSpeedKmh: drivingSpeedKmh,
	}
}

// Route resolves a straight-line route estimate between two coordinates.
func (s *greatCircleService) Route(_ context.Context, origin, destination service.Coordinate, mode service.TravelMode) (*service.RouteInfo, error) {
	if !mode.Valid() {
		return nil, errors.Errorf("unsupported travel mode: %s", mode)
	}
	if !validCoordinate(origin) || !validCoordinate(destination) {
		return nil, errors.New("coordinate is outside valid bounds")
	}

	from := orb.Point{origin.Lng, origin.Lat}
	to := orb.Point{destination.Lng, destination.Lat}
	distanceKm := geo.Distance(from, to) / 1000

	speed := s.walkingSpeedKmh
	if mode == service.TravelDriving {
		speed = s.drivingSpeedKmh
	}
	durationMin := distanceKm / speed * 60

	return &service.RouteInfo{
		DistanceText: formatDistance(distanceKm),
		DurationText: formatDuration(durationMin),
		DistanceKm:   distanceKm,
		DurationMin:  durationMin,
	}, nil
}

func validCoordinate(c service.Coordinate) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// formatDistance renders miles with one decimal, matching the campus
// map's US-facing display.
func formatDistance(distanceKm float64) string {
	return fmt.Sprintf("%.1f mi", distanceKm/kmPerMile)
}

func formatDuration(durationMin float64) string {
	mins := int(math.Ceil(durationMin))
	if mins <= 1 {
		return "1 min"
	}

	return fmt.Sprintf("%d mins", mins)
}
