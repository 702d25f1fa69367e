package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gwdining/internal/domain/entity"
	domainerrors "gwdining/internal/domain/errors"
	"gwdining/internal/domain/repository"
	"gwdining/internal/domain/service"
	"gwdining/internal/usecase"
	"gwdining/internal/util"
)

type locationService struct {
	directory  []entity.DiningLocation
	loadErr    error
	reviews    repository.ReviewRepository
	directions service.DirectionsService
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocationService creates a new location service instance. The
// directory is fetched once here; a load failure is remembered and
// reported per call instead of failing startup.
func NewLocationService(
	ctx context.Context,
	source repository.LocationSource,
	reviews repository.ReviewRepository,
	directions service.DirectionsService,
	logger *slog.Logger,
) usecase.LocationUsecase {
	s := &locationService{
		reviews:    reviews,
		directions: directions,
		logger:     logger,
		now:        time.Now,
	}

	directory, err := source.LoadLocations(ctx)
	if err != nil {
		logger.Error("Failed to load dining locations", slog.Any("error", err))
		s.loadErr = err

		return s
	}

	s.directory = directory
	logger.Info("Dining locations loaded", slog.Int("locations", len(directory)))

	return s
}

// GetDirectory filters the directory by campus and derives the map
// marker visibility for every location.
func (s *locationService) GetDirectory(_ context.Context, campus string) (*usecase.DirectoryView, error) {
	if s.loadErr != nil {
		return nil, domainerrors.ErrLocationsUnavailable
	}

	campus = util.NormalizeFilter(campus)
	showAll := util.FilterDisabled(campus)

	view := &usecase.DirectoryView{
		Campus:    campus,
		Locations: make([]entity.DiningLocation, 0, len(s.directory)),
		Markers:   make(map[string]bool, len(s.directory)),
	}
	if showAll {
		view.Campus = "all"
	}

	for _, loc := range s.directory {
		visible := showAll || strings.EqualFold(loc.Campus, campus)
		view.Markers[loc.ID] = visible
		if visible {
			view.Locations = append(view.Locations, loc)
		}
	}

	return view, nil
}

// GetReviews lists a location's reviews with the latest one called out.
func (s *locationService) GetReviews(ctx context.Context, locationID string) (*usecase.ReviewsView, error) {
	if _, err := s.find(locationID); err != nil {
		return nil, err
	}

	all, err := s.reviews.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return reviewsView(locationID, all), nil
}

// AddReview appends a review. The text must be non-empty after trimming;
// a missing author falls back to the generic student name.
func (s *locationService) AddReview(ctx context.Context, locationID string, input *usecase.AddReviewInput) (*usecase.ReviewsView, error) {
	if _, err := s.find(locationID); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrReviewTextEmpty
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = entity.DefaultReviewer
	}

	all, err := s.reviews.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	all[locationID] = append(all[locationID], entity.LocationReview{
		Author: author,
		Text:   text,
		Time:   s.now(),
	})

	if err := s.reviews.Save(ctx, all); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return reviewsView(locationID, all), nil
}

// GetDirections routes from the given origin to the location. A routing
// failure degrades to a center-on-destination fallback instead of an
// error.
func (s *locationService) GetDirections(ctx context.Context, locationID string, input *usecase.DirectionsInput) (*usecase.DirectionsView, error) {
	loc, err := s.find(locationID)
	if err != nil {
		return nil, err
	}

	destination := service.Coordinate{Lat: loc.Latitude, Lng: loc.Longitude}
	origin := service.Coordinate{Lat: input.Lat, Lng: input.Lng}

	route, routeErr := s.directions.Route(ctx, origin, destination, service.TravelMode(input.Mode))
	if routeErr != nil {
		s.logger.Warn("Directions request failed",
			slog.String("location_id", locationID),
			slog.Any("error", routeErr),
		)

		return &usecase.DirectionsView{Center: destination, Fallback: true}, nil
	}

	return &usecase.DirectionsView{Route: route, Center: destination}, nil
}

// find resolves a directory entry by ID.
func (s *locationService) find(locationID string) (*entity.DiningLocation, error) {
	if s.loadErr != nil {
		return nil, domainerrors.ErrLocationsUnavailable
	}

	for i := range s.directory {
		if s.directory[i].ID == locationID {
			return &s.directory[i], nil
		}
	}

	return nil, domainerrors.ErrLocationNotFound
}

func reviewsView(locationID string, all entity.ReviewsByLocation) *usecase.ReviewsView {
	reviews := all[locationID]
	if reviews == nil {
		reviews = []entity.LocationReview{}
	}

	return &usecase.ReviewsView{
		LocationID: locationID,
		Reviews:    reviews,
		Latest:     all.Latest(locationID),
	}
}
