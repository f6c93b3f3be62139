package dto

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// ForecastResponse is the next-month spending estimate. TargetMonth is
// the YYYY-MM bucket the prediction applies to. Available is false when
// fewer than three months of history exist; Prediction and Confidence
// are meaningless in that case.
type ForecastResponse struct {
	Available       bool            `json:"available"`
	Strategy        string          `json:"strategy"`
	TargetMonth     string          `json:"target_month"`
	Prediction      decimal.Decimal `json:"prediction"`
	Confidence      float64         `json:"confidence"`
	MonthsOfHistory int             `json:"months_of_history"`
}

// AccuracyResponse summarizes the backtest for API consumers: the last
// three accuracy records, the mean accuracy over every record as a
// rounded integer, and the total record count.
type AccuracyResponse struct {
	Predictions      []models.AccuracyRecord `json:"predictions"`
	AverageAccuracy  int                     `json:"average_accuracy"`
	TotalPredictions int                     `json:"total_predictions"`
}

// TrendsResponse maps YYYY-MM keys to their aggregated totals and
// includes per-category expense summaries for the same window.
type TrendsResponse struct {
	Months     map[string]*models.MonthBucket `json:"months"`
	Categories []models.CategorySummary       `json:"categories"`
}

// RecommendationsResponse wraps the advisory list with the mode that
// produced it
type RecommendationsResponse struct {
	Mode            string                  `json:"mode"`
	Recommendations []models.Recommendation `json:"recommendations"`
}
