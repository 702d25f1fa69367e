package kv

import (
	"context"
	"log/slog"

	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/repository"
)

type reviewRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewReviewRepository creates the KV-backed review repository.
func NewReviewRepository(store repository.KVStore, logger *slog.Logger) repository.ReviewRepository {
	return &reviewRepository{store: store, logger: logger}
}

// Load retrieves all reviews keyed by location ID.
func (r *reviewRepository) Load(ctx context.Context) (entity.ReviewsByLocation, error) {
	reviews := entity.ReviewsByLocation{}
	if _, err := loadJSON(ctx, r.store, r.logger, repository.KeyReviews, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// Save rewrites the whole review map.
func (r *reviewRepository) Save(ctx context.Context, reviews entity.ReviewsByLocation) error {
	return saveJSON(ctx, r.store, repository.KeyReviews, reviews)
}
