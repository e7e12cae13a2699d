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

// ParcelHandler holds dependencies for parcel-related handlers.
type ParcelHandler struct {
	uc     usecase.ParcelUsecase
	logger *slog.Logger
}

// NewParcelHandler is the constructor for ParcelHandler, injected by Fx.
func NewParcelHandler(uc usecase.ParcelUsecase, logger *slog.Logger) *ParcelHandler {
	return &ParcelHandler{
		uc:     uc,
		logger: logger,
	}
}

type createParcelRequest struct {
	Name        string `json:"name" validate:"required"`
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	Cost        int64  `json:"cost" validate:"required,gt=0"`
}

// CreateParcel handles the parcel submission request.
func (h *ParcelHandler) CreateParcel(c echo.Context) error {
	var req createParcelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid parcel input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Name, sender email and a positive cost are required")
	}

	parcel, err := h.uc.CreateParcel(c.Request().Context(), &usecase.CreateParcelInput{
		Name:        req.Name,
		SenderEmail: req.SenderEmail,
		Cost:        req.Cost,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, parcel, "Parcel created successfully")
}

// ListParcels handles the request to list parcels, optionally filtered by
// sender email via the "email" query parameter.
func (h *ParcelHandler) ListParcels(c echo.Context) error {
	parcels, err := h.uc.ListParcels(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, parcels, "Parcels retrieved successfully")
}

// GetParcel handles the request to retrieve a single parcel by ID.
func (h *ParcelHandler) GetParcel(c echo.Context) error {
	parcelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID format")
	}

	parcel, err := h.uc.GetParcel(c.Request().Context(), parcelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, parcel, "Parcel retrieved successfully")
}

// DeleteParcel handles the request to delete a parcel.
func (h *ParcelHandler) DeleteParcel(c echo.Context) error {
	parcelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid parcel ID format")
	}

	if err := h.uc.DeleteParcel(c.Request().Context(), parcelID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": parcelID.String()}, "Parcel deleted successfully")
}
