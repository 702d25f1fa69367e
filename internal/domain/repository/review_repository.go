package repository

import (
	"context"

	"gwdining/internal/domain/entity"
)

// ReviewRepository persists the per-location review lists as one map.
type ReviewRepository interface {
	// Load retrieves all reviews keyed by location ID, or an empty map
	// when nothing usable is stored.
	Load(ctx context.Context) (entity.ReviewsByLocation, error)

	// Save rewrites the whole review map.
	Save(ctx context.Context, reviews entity.ReviewsByLocation) error
}
