package handler

import (
	"net/http"

	"gwdining/internal/delivery/http/response"
	"gwdining/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccommodationHandler holds dependencies for the accommodation request
// endpoints.
type AccommodationHandler struct {
	uc usecase.AccommodationUsecase
}

// NewAccommodationHandler is the constructor for AccommodationHandler,
// injected by Fx.
func NewAccommodationHandler(uc usecase.AccommodationUsecase) *AccommodationHandler {
	return &AccommodationHandler{uc: uc}
}

// Submit records a dietary accommodation request.
func (h *AccommodationHandler) Submit(c echo.Context) error {
	var input usecase.AccommodationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accommodation request")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ack, err := h.uc.Submit(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ack, "Request submitted")
}

// List returns all submitted requests.
func (h *AccommodationHandler) List(c echo.Context) error {
	requests, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}
