package repository

import (
	"context"

	"gwdining/internal/domain/entity"
)

// AccommodationRepository persists dietary accommodation requests as an
// append-only list.
type AccommodationRepository interface {
	// Load retrieves all submitted requests in submission order.
	Load(ctx context.Context) ([]entity.AccommodationRequest, error)

	// Save rewrites the whole request list.
	Save(ctx context.Context, requests []entity.AccommodationRequest) error
}
