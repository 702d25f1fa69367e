package kv

import (
	"context"
	"log/slog"

	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/repository"
)

type accommodationRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewAccommodationRepository creates the KV-backed accommodation request
// repository.
func NewAccommodationRepository(store repository.KVStore, logger *slog.Logger) repository.AccommodationRepository {
	return &accommodationRepository{store: store, logger: logger}
}

// Load retrieves all submitted requests in submission order.
func (r *accommodationRepository) Load(ctx context.Context) ([]entity.AccommodationRequest, error) {
	var requests []entity.AccommodationRequest
	if _, err := loadJSON(ctx, r.store, r.logger, repository.KeyAccommodations, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// Save rewrites the whole request list.
func (r *accommodationRepository) Save(ctx context.Context, requests []entity.AccommodationRequest) error {
	return saveJSON(ctx, r.store, repository.KeyAccommodations, requests)
}
