// Package usecase defines the application-layer interfaces and their
// input/output DTOs. Implementations live in impl.
package usecase

import (
	"context"

	"gwdining/internal/domain/entity"
)

// CartLineView is a rendered cart line with a pre-formatted line total.
type CartLineView struct {
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"price"`
	Quantity      int     `json:"qty"`
	LineTotal     float64 `json:"line_total"`
	LineTotalText string  `json:"line_total_text"`
}

// CartView is the full cart panel payload.
type CartView struct {
	Lines     []CartLineView `json:"lines"`
	Count     int            `json:"count"`
	Total     float64        `json:"total"`
	TotalText string         `json:"total_text"`
}

// AddItemInput adds one unit of a menu item to the cart.
type AddItemInput struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// AdjustQuantityInput changes a line's quantity by a signed delta.
type AdjustQuantityInput struct {
	Name  string `json:"name" validate:"required"`
	Delta int    `json:"delta" validate:"required"`
}

// CartUsecase defines the cart operations. Every mutation persists the
// whole cart and forces the checkout flow back to its review stage.
type CartUsecase interface {
	GetCart(ctx context.Context) (*CartView, error)
	AddItem(ctx context.Context, input *AddItemInput) (*CartView, error)
	AdjustQuantity(ctx context.Context, input *AdjustQuantityInput) (*CartView, error)
	RemoveItem(ctx context.Context, name string) (*CartView, error)
	ClearCart(ctx context.Context) (*CartView, error)
}

// NewCartView renders a cart entity into its view form.
func NewCartView(cart *entity.Cart, formatMoney func(float64) string) *CartView {
	view := &CartView{
		Lines:     make([]CartLineView, 0, len(cart.Lines)),
		Count:     cart.Count(),
		Total:     cart.Total(),
		TotalText: formatMoney(cart.Total()),
	}
	for _, line := range cart.Lines {
		lineTotal := line.UnitPrice * float64(line.Quantity)
		view.Lines = append(view.Lines, CartLineView{
			Name:          line.Name,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			LineTotal:     lineTotal,
			LineTotalText: formatMoney(lineTotal),
		})
	}

	return view
}
