// Package impl contains the concrete usecase services.
package impl

import (
	"context"
	"log/slog"

	"gwdining/internal/domain/entity"
	domainerrors "gwdining/internal/domain/errors"
	"gwdining/internal/domain/repository"
	"gwdining/internal/usecase"
	"gwdining/internal/util"
)

type cartService struct {
	cartRepo repository.CartRepository
	checkout usecase.CheckoutUsecase
	logger   *slog.Logger
}

// NewCartService creates a new cart service instance. Every mutation
// notifies the checkout flow so a half-finished checkout never survives a
// cart change.
func NewCartService(cartRepo repository.CartRepository, checkout usecase.CheckoutUsecase, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		checkout: checkout,
		logger:   logger,
	}
}

// GetCart returns the current cart contents.
func (s *cartService) GetCart(ctx context.Context) (*usecase.CartView, error) {
	cart, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return usecase.NewCartView(cart, util.FormatMoney), nil
}

// AddItem adds one unit of a menu item to the cart.
func (s *cartService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*usecase.CartView, error) {
	cart, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	cart.Add(input.Name, input.Price)

	return s.persist(ctx, cart)
}

// AdjustQuantity changes a line's quantity by a signed delta.
func (s *cartService) AdjustQuantity(ctx context.Context, input *usecase.AdjustQuantityInput) (*usecase.CartView, error) {
	cart, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	cart.AdjustQuantity(input.Name, input.Delta)

	return s.persist(ctx, cart)
}

// RemoveItem deletes the named line regardless of quantity.
func (s *cartService) RemoveItem(ctx context.Context, name string) (*usecase.CartView, error) {
	cart, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	cart.Remove(name)

	return s.persist(ctx, cart)
}

// ClearCart empties the cart.
func (s *cartService) ClearCart(ctx context.Context) (*usecase.CartView, error) {
	cart, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	cart.Clear()

	return s.persist(ctx, cart)
}

// persist writes the mutated cart and forces the checkout flow back to
// its review stage. A checkout reset failure is logged, never surfaced;
// the cart write already happened.
func (s *cartService) persist(ctx context.Context, cart *entity.Cart) (*usecase.CartView, error) {
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	if err := s.checkout.Reopen(ctx); err != nil {
		s.logger.Warn("Failed to reset checkout after cart mutation", slog.Any("error", err))
	}

	return usecase.NewCartView(cart, util.FormatMoney), nil
}
