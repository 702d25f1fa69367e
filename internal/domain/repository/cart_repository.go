package repository

import (
	"context"

	"gwdining/internal/domain/entity"
)

// CartRepository persists the single shopping cart. Load never fails the
// caller: a missing or corrupt stored value yields an empty cart.
type CartRepository interface {
	// Load retrieves the current cart, or an empty cart when nothing
	// usable is stored.
	Load(ctx context.Context) (*entity.Cart, error)

	// Save rewrites the whole cart.
	Save(ctx context.Context, cart *entity.Cart) error
}
