package handler

import (
	"net/http"

	"gwdining/internal/delivery/http/response"
	"gwdining/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for the dining directory endpoints.
type LocationHandler struct {
	uc usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// GetDirectory returns the directory filtered by the campus query param.
func (h *LocationHandler) GetDirectory(c echo.Context) error {
	campus := c.QueryParam("campus")

	view, err := h.uc.GetDirectory(c.Request().Context(), campus)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// GetReviews lists a location's reviews.
func (h *LocationHandler) GetReviews(c echo.Context) error {
	view, err := h.uc.GetReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddReview appends a review to a location.
func (h *LocationHandler) AddReview(c echo.Context) error {
	var input usecase.AddReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review")
	}

	view, err := h.uc.AddReview(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Review posted")
}

// GetDirections routes from the caller's position to a location.
func (h *LocationHandler) GetDirections(c echo.Context) error {
	var input usecase.DirectionsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid directions request")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.GetDirections(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
