package repository

import (
	"context"

	"gwdining/internal/domain/entity"
)

// MenuSource supplies the read-only menu catalog. It is fetched once at
// startup; the catalog never changes afterwards.
type MenuSource interface {
	LoadMenu(ctx context.Context) ([]entity.MenuItem, error)
}

// LocationSource supplies the read-only dining location directory,
// fetched once at startup.
type LocationSource interface {
	LoadLocations(ctx context.Context) ([]entity.DiningLocation, error)
}
