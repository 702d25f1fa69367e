package usecase

import (
	"context"

	"gwdining/internal/domain/entity"
)

// MenuControlsInput stages the location, meal, and search controls. The
// staged values only take effect on the next explicit search.
type MenuControlsInput struct {
	Location string `json:"location"`
	Meal     string `json:"meal"`
	Search   string `json:"search"`
}

// MenuTagInput applies a tag filter immediately.
type MenuTagInput struct {
	Tag string `json:"tag"`
}

// MenuView is the visible slice of the catalog plus the result heading.
type MenuView struct {
	Title string            `json:"title"`
	Count int               `json:"count"`
	Items []entity.MenuItem `json:"items"`
}

// MenuUsecase is the catalog filter engine. The catalog is read-only; all
// operations recompute a view over it.
type MenuUsecase interface {
	// GetMenu returns the currently visible items under the committed
	// filters.
	GetMenu(ctx context.Context) (*MenuView, error)

	// UpdateControls stages control values without changing the visible
	// subset.
	UpdateControls(ctx context.Context, input *MenuControlsInput) error

	// ApplySearch commits the staged controls and recomputes the subset.
	ApplySearch(ctx context.Context) (*MenuView, error)

	// SetTag commits a tag filter immediately, using the last committed
	// controls.
	SetTag(ctx context.Context, input *MenuTagInput) (*MenuView, error)
}
