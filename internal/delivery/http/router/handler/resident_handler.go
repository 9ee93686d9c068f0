package handler

import (
	"log/slog"
	"net/http"

	"bhwconnect/internal/delivery/http/response"
	"bhwconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResidentHandler holds dependencies for resident-related handlers.
type ResidentHandler struct {
	uc     usecase.ResidentUsecase
	logger *slog.Logger
}

// NewResidentHandler is the constructor for ResidentHandler, injected by Fx.
func NewResidentHandler(uc usecase.ResidentUsecase, logger *slog.Logger) *ResidentHandler {
	return &ResidentHandler{uc: uc, logger: logger}
}

// CreateResident handles the resident creation request.
func (h *ResidentHandler) CreateResident(c echo.Context) error {
	var input usecase.CreateResidentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resident input")
	}

	output, err := h.uc.CreateResident(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Resident created successfully")
}

// UpdateResident handles the partial update of a resident record.
func (h *ResidentHandler) UpdateResident(c echo.Context) error {
	var input usecase.UpdateResidentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resident input")
	}

	output, err := h.uc.UpdateResident(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Resident updated successfully")
}

// DeleteResident handles the resident deletion request.
func (h *ResidentHandler) DeleteResident(c echo.Context) error {
	if err := h.uc.DeleteResident(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Resident deleted"}, "Resident deleted successfully")
}

// AreaResidents returns an area together with all of its residents.
func (h *ResidentHandler) AreaResidents(c echo.Context) error {
	output, err := h.uc.ListByArea(c.Request().Context(), c.Param("areaId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
