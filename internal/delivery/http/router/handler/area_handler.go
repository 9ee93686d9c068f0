package handler

import (
	"log/slog"
	"net/http"

	"bhwconnect/internal/delivery/http/response"
	"bhwconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AreaHandler holds dependencies for area-related handlers.
type AreaHandler struct {
	uc     usecase.AreaUsecase
	logger *slog.Logger
}

// NewAreaHandler is the constructor for AreaHandler, injected by Fx.
func NewAreaHandler(uc usecase.AreaUsecase, logger *slog.Logger) *AreaHandler {
	return &AreaHandler{uc: uc, logger: logger}
}

// CreateArea handles the area creation request.
func (h *AreaHandler) CreateArea(c echo.Context) error {
	var input usecase.CreateAreaInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid area input")
	}

	output, err := h.uc.CreateArea(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Area created successfully")
}

// BhwAreas returns the areas assigned to one BHW.
func (h *AreaHandler) BhwAreas(c echo.Context) error {
	outputs, err := h.uc.AreasByBhw(c.Request().Context(), c.Param("bhwId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}
