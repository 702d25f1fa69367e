package usecase

import (
	"context"

	"gwdining/internal/domain/entity"
)

// AccommodationInput is the dietary accommodation request form.
type AccommodationInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Request string `json:"request" validate:"required"`
}

// AccommodationAck acknowledges a submitted request.
type AccommodationAck struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// AccommodationUsecase records dietary accommodation requests. Requests
// are append-only; nothing in this system processes them further.
type AccommodationUsecase interface {
	Submit(ctx context.Context, input *AccommodationInput) (*AccommodationAck, error)
	List(ctx context.Context) ([]entity.AccommodationRequest, error)
}
