package handler

import (
	"log/slog"
	"net/http"

	"zapshift/internal/delivery/http/response"
	"zapshift/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RiderHandler holds dependencies for rider onboarding handlers.
type RiderHandler struct {
	uc     usecase.RiderUsecase
	logger *slog.Logger
}

// NewRiderHandler is the constructor for RiderHandler, injected by Fx.
func NewRiderHandler(uc usecase.RiderUsecase, logger *slog.Logger) *RiderHandler {
	return &RiderHandler{
		uc:     uc,
		logger: logger,
	}
}

type applyRiderRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required"`
	Region string `json:"region" validate:"required"`
}

// ApplyRider handles a new rider application submission.
func (h *RiderHandler) ApplyRider(c echo.Context) error {
	var req applyRiderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rider application input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Name, email, phone and region are required")
	}

	rider, err := h.uc.ApplyRider(c.Request().Context(), &usecase.ApplyRiderInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Region: req.Region,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rider, "Rider application submitted successfully")
}

// ListRiders lists rider applications, optionally filtered by status via
// the "status" query parameter.
func (h *RiderHandler) ListRiders(c echo.Context) error {
	riders, err := h.uc.ListRiders(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, riders, "Riders retrieved successfully")
}

type setRiderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetRiderStatus decides a rider application. Approving elevates the
// matching user account to the rider role in the same transaction.
func (h *RiderHandler) SetRiderStatus(c echo.Context) error {
	riderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rider ID format")
	}

	var req setRiderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rider status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Status is required")
	}

	output, err := h.uc.SetRiderStatus(c.Request().Context(), &usecase.SetRiderStatusInput{
		RiderID: riderID,
		Status:  req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Rider status updated successfully")
}

// DeleteRider handles the request to delete a rider application.
func (h *RiderHandler) DeleteRider(c echo.Context) error {
	riderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rider ID format")
	}

	if err := h.uc.DeleteRider(c.Request().Context(), riderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": riderID.String()}, "Rider deleted successfully")
}
