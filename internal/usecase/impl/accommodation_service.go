package impl

import (
	"context"
	"strings"
	"time"

	"gwdining/internal/domain/entity"
	domainerrors "gwdining/internal/domain/errors"
	"gwdining/internal/domain/repository"
	"gwdining/internal/usecase"

	"github.com/google/uuid"
)

type accommodationService struct {
	repo repository.AccommodationRepository
	now  func() time.Time
}

// NewAccommodationService creates a new accommodation service instance.
func NewAccommodationService(repo repository.AccommodationRepository) usecase.AccommodationUsecase {
	return &accommodationService{
		repo: repo,
		now:  time.Now,
	}
}

// Submit appends a dietary accommodation request.
func (s *accommodationService) Submit(ctx context.Context, input *usecase.AccommodationInput) (*usecase.AccommodationAck, error) {
	text := strings.TrimSpace(input.Request)
	if text == "" {
		return nil, domainerrors.ErrRequestTextEmpty
	}

	requests, err := s.repo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	request := entity.AccommodationRequest{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Request: text,
		Time:    s.now(),
	}
	requests = append(requests, request)

	if err := s.repo.Save(ctx, requests); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return &usecase.AccommodationAck{
		ID:      request.ID.String(),
		Message: "Your accommodation request has been sent to the dining team.",
	}, nil
}

// List returns all submitted requests in submission order.
func (s *accommodationService) List(ctx context.Context) ([]entity.AccommodationRequest, error) {
	requests, err := s.repo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return requests, nil
}
