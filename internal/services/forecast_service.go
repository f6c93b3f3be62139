package services

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/forecast"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
)

// forecastService runs the prediction engine over the stored
// transaction history
type forecastService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metricsRecorder MetricsRecorderInterface
}

// NewForecastService creates a new forecast service
func NewForecastService(transactionRepo repositories.TransactionRepositoryInterface, metricsRecorder MetricsRecorderInterface) ForecastServiceInterface {
	return &forecastService{
		transactionRepo: transactionRepo,
		metricsRecorder: metricsRecorder,
	}
}

func (s *forecastService) GetSpendingForecast(strategy string, now time.Time) (*dto.ForecastResponse, error) {
	start := time.Now()
	defer func() {
		if s.metricsRecorder != nil {
			s.metricsRecorder.RecordProcessingTime("forecast_duration", time.Since(start))
		}
	}()

	transactions, err := s.transactionRepo.GetAll(true)
	if err != nil {
		slog.Error("Failed to load transactions for forecast", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	buckets := forecast.AggregateMonthly(transactions)
	predictor := forecast.PredictorFor(strategy)

	var series []decimal.Decimal
	if predictor.Name() == forecast.StrategyRegression {
		// regression fits individual expense amounts in chronological
		// order rather than monthly totals
		for _, t := range transactions {
			if t.IsExpense() {
				series = append(series, t.Amount)
			}
		}
	} else {
		series = forecast.MonthlyExpenseSeries(buckets)
	}

	// the estimate is for the month after the reference time
	targetMonth := now.AddDate(0, 1, 0).Format("2006-01")

	response := &dto.ForecastResponse{
		Strategy:        predictor.Name(),
		TargetMonth:     targetMonth,
		MonthsOfHistory: len(buckets),
	}

	result, ok := predictor.Predict(series)
	if !ok {
		slog.Info("Insufficient history for forecast",
			"strategy", predictor.Name(),
			"months", len(buckets))
		return response, nil
	}

	response.Available = true
	response.Prediction = result.Prediction
	response.Confidence = result.Confidence

	if s.metricsRecorder != nil {
		s.metricsRecorder.IncrementCounter("forecasts_generated", map[string]string{
			"strategy": predictor.Name(),
		})
		s.metricsRecorder.RecordGauge("forecast_confidence", result.Confidence, nil)
		s.metricsRecorder.RecordGauge("months_of_history", float64(len(buckets)), nil)
	}

	slog.Info("Forecast generated",
		"strategy", predictor.Name(),
		"target_month", targetMonth,
		"prediction", result.Prediction.String(),
		"confidence", result.Confidence,
		"months", len(buckets))

	return response, nil
}

func (s *forecastService) GetMonthlyTrends() (*dto.TrendsResponse, error) {
	transactions, err := s.transactionRepo.GetAll(false)
	if err != nil {
		slog.Error("Failed to load transactions for trends", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	buckets := forecast.AggregateMonthly(transactions)

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var order []string
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		counts[t.Category]++
	}

	categories := make([]models.CategorySummary, 0, len(order))
	for _, category := range order {
		categories = append(categories, models.CategorySummary{
			Category:         category,
			TransactionCount: int64(counts[category]),
			TotalAmount:      totals[category],
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].TotalAmount.GreaterThan(categories[j].TotalAmount)
	})

	return &dto.TrendsResponse{
		Months:     buckets,
		Categories: categories,
	}, nil
}

func (s *forecastService) GetAccuracyReport() (*dto.AccuracyResponse, error) {
	transactions, err := s.transactionRepo.GetAll(true)
	if err != nil {
		slog.Error("Failed to load transactions for accuracy report", "error", err)
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	report := forecast.Backtest(forecast.AggregateMonthly(transactions))

	return &dto.AccuracyResponse{
		Predictions:      report.Recent,
		AverageAccuracy:  int(math.Round(report.AverageAccuracy)),
		TotalPredictions: report.TotalCount,
	}, nil
}
