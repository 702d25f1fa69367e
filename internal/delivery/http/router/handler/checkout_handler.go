package handler

import (
	"net/http"

	"gwdining/internal/delivery/http/response"
	"gwdining/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout endpoints.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// GetState returns the current checkout stage and pending ticket.
func (h *CheckoutHandler) GetState(c echo.Context) error {
	view, err := h.uc.GetState(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// SelectMode chooses dine-in or pickup.
func (h *CheckoutHandler) SelectMode(c echo.Context) error {
	var input usecase.SelectModeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order mode")
	}

	view, err := h.uc.SelectMode(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Mode selected")
}

// Proceed issues a ticket for the current cart.
func (h *CheckoutHandler) Proceed(c echo.Context) error {
	view, err := h.uc.Proceed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// SubmitPayment completes the simulated pickup payment form.
func (h *CheckoutHandler) SubmitPayment(c echo.Context) error {
	var input usecase.PaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment form")
	}

	view, err := h.uc.SubmitPayment(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Payment accepted")
}

// Finalize confirms a Ready checkout and returns the order confirmation.
func (h *CheckoutHandler) Finalize(c echo.Context) error {
	confirmation, err := h.uc.Finalize(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, confirmation, "Order placed")
}

// Reopen resets the flow to the review stage.
func (h *CheckoutHandler) Reopen(c echo.Context) error {
	if err := h.uc.Reopen(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Checkout reset")
}

// TicketQR streams the pending ticket as a PNG.
func (h *CheckoutHandler) TicketQR(c echo.Context) error {
	png, err := h.uc.TicketQR(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
