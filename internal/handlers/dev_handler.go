package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleDataService services.SampleDataServiceInterface
	enabled           bool
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleDataService services.SampleDataServiceInterface, enabled bool) *DevHandler {
	return &DevHandler{
		sampleDataService: sampleDataService,
		enabled:           enabled,
	}
}

// SeedData generates realistic multi-month transaction history
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Body parameters:
//   - months: Number of months of history to generate (default: 6, max: 36)
//   - expenses_per_month: Expense transactions per month (default: 25, max: 200)
//
// Success Response: 201 Created with counts and the covered date range
//
// Error Responses:
//   - 400: Invalid parameters or seeding disabled in this environment
//   - 500: Internal server error
func (h *DevHandler) SeedData(c echo.Context) error {
	if !h.enabled {
		return SendError(c, errors.ValidationGeneral,
			errors.WithMessage("Seeding is disabled in this environment"))
	}

	var req dto.SeedRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	slog.Info("Seed requested", "months", req.Months, "ip", getClientIP(c))

	response, err := h.sampleDataService.SeedHistory(req.Months, req.ExpensesPerMonth, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, response)
}
