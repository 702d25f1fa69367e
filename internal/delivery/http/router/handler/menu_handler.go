package handler

import (
	"net/http"

	"gwdining/internal/delivery/http/response"
	"gwdining/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler holds dependencies for the menu endpoints.
type MenuHandler struct {
	uc usecase.MenuUsecase
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// GetMenu returns the currently visible catalog slice.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	view, err := h.uc.GetMenu(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateControls stages the location/meal/search controls.
func (h *MenuHandler) UpdateControls(c echo.Context) error {
	var input usecase.MenuControlsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter controls")
	}

	if err := h.uc.UpdateControls(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Controls staged")
}

// ApplySearch commits the staged controls.
func (h *MenuHandler) ApplySearch(c echo.Context) error {
	view, err := h.uc.ApplySearch(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// SetTag applies a tag filter immediately.
func (h *MenuHandler) SetTag(c echo.Context) error {
	var input usecase.MenuTagInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tag filter")
	}

	view, err := h.uc.SetTag(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
