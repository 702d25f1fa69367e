package kv

import (
	"context"
	"log/slog"

	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/repository"
)

type cartRepository struct {
	store  repository.KVStore
	logger *slog.Logger
}

// NewCartRepository creates the KV-backed cart repository.
func NewCartRepository(store repository.KVStore, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{store: store, logger: logger}
}

// Load retrieves the current cart, or an empty cart when nothing usable
// is stored.
func (r *cartRepository) Load(ctx context.Context) (*entity.Cart, error) {
	cart := &entity.Cart{}
	if _, err := loadJSON(ctx, r.store, r.logger, repository.KeyCart, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// Save rewrites the whole cart.
func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	return saveJSON(ctx, r.store, repository.KeyCart, cart)
}
