package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"fintrack/internal/errors"
	"fintrack/internal/forecast"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ForecastHandler handles forecasting and recommendation HTTP requests
type ForecastHandler struct {
	forecastService       services.ForecastServiceInterface
	recommendationService services.RecommendationServiceInterface
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(
	forecastService services.ForecastServiceInterface,
	recommendationService services.RecommendationServiceInterface,
) *ForecastHandler {
	return &ForecastHandler{
		forecastService:       forecastService,
		recommendationService: recommendationService,
	}
}

// GetForecast predicts next-month spending
// @Summary Spending forecast
// @Description Predict next month's total expenses from historical data. Requires at least three months of history.
// @Tags Forecast
// @Produce json
// @Param strategy query string false "Prediction strategy" Enums(moving_average, regression) default(moving_average)
// @Success 200 {object} dto.ForecastResponse "Forecast, available=false when history is too short"
// @Failure 400 {object} errors.ErrorResponse "FORECAST_001 - Invalid strategy"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /forecast [get]
func (h *ForecastHandler) GetForecast(c echo.Context) error {
	strategy := c.QueryParam("strategy")
	if strategy == "" {
		strategy = forecast.StrategyMovingAverage
	}
	if strategy != forecast.StrategyMovingAverage && strategy != forecast.StrategyRegression {
		return SendError(c, errors.ForecastInvalidStrategy)
	}

	response, err := h.forecastService.GetSpendingForecast(strategy, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetAccuracy reports historical prediction accuracy
// @Summary Forecast accuracy
// @Description Backtest the moving-average predictor against recorded history and report accuracy scores
// @Tags Forecast
// @Produce json
// @Success 200 {object} dto.AccuracyResponse "Recent accuracy records and overall average"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /forecast/accuracy [get]
func (h *ForecastHandler) GetAccuracy(c echo.Context) error {
	response, err := h.forecastService.GetAccuracyReport()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTrends returns monthly aggregates and category summaries
// @Summary Monthly trends
// @Description Aggregate transactions into monthly income and expense totals plus per-category expense summaries
// @Tags Forecast
// @Produce json
// @Success 200 {object} dto.TrendsResponse "Monthly buckets and category totals"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /trends [get]
func (h *ForecastHandler) GetTrends(c echo.Context) error {
	response, err := h.forecastService.GetMonthlyTrends()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// GetRecommendations produces budget advisories
// @Summary Budget recommendations
// @Description Generate prioritized budget advisories. Mode category_budget compares per-category budgets; mode surplus needs a monthly_budget figure.
// @Tags Forecast
// @Produce json
// @Param mode query string false "Recommendation mode" Enums(category_budget, surplus) default(category_budget)
// @Param monthly_budget query number false "Total monthly budget, required for surplus mode"
// @Success 200 {object} dto.RecommendationsResponse "Prioritized recommendations"
// @Failure 400 {object} errors.ErrorResponse "FORECAST_002 - Invalid mode or FORECAST_003 - Missing monthly budget"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /recommendations [get]
func (h *ForecastHandler) GetRecommendations(c echo.Context) error {
	mode := c.QueryParam("mode")
	if mode == "" {
		mode = forecast.ModeCategoryBudget
	}

	monthlyBudget := decimal.Zero
	if raw := c.QueryParam("monthly_budget"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid monthly_budget"))
		}
		monthlyBudget = parsed
	}

	response, err := h.recommendationService.GetRecommendations(mode, monthlyBudget, time.Now().UTC())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidRecommendationMode):
			return SendError(c, errors.ForecastInvalidMode)
		case stderrors.Is(err, services.ErrMonthlyBudgetRequired):
			return SendError(c, errors.ForecastMissingBudget)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, response)
}
