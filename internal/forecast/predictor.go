package forecast

import (
	"math"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Strategy names, selectable by the caller.
const (
	StrategyMovingAverage = "moving_average"
	StrategyRegression    = "regression"
)

// MovingAverageWindow is the number of recent months the moving-average
// strategy looks at.
const MovingAverageWindow = 3

// Predictor estimates next-period spending from a chronological series
// of expense amounts. The comma-ok return is false when the series is
// too short to support a forecast; that is a defined degenerate
// outcome, not an error.
//
// The moving-average strategy expects monthly expense totals (see
// MonthlyExpenseSeries). The regression strategy accepts any flat
// chronological expense series.
type Predictor interface {
	Name() string
	Predict(series []decimal.Decimal) (models.PredictionResult, bool)
}

// MovingAveragePredictor forecasts next-month spending as the mean of
// the last three monthly totals, with a confidence score derived from
// the coefficient of variation of those totals.
type MovingAveragePredictor struct{}

func (MovingAveragePredictor) Name() string { return StrategyMovingAverage }

// Predict requires at least three months of history. Confidence is
// clamp(0, 100, (1 - stdev/mean) * 100) over the window, and defined
// as 0 when the mean is 0.
func (MovingAveragePredictor) Predict(series []decimal.Decimal) (models.PredictionResult, bool) {
	if len(series) < MovingAverageWindow {
		return models.PredictionResult{}, false
	}

	recent := series[len(series)-MovingAverageWindow:]

	sum := decimal.Zero
	for _, v := range recent {
		sum = sum.Add(v)
	}
	mean := sum.Div(decimal.NewFromInt(MovingAverageWindow))

	confidence := 0.0
	if !mean.IsZero() {
		cv := populationStdev(recent) / mean.InexactFloat64()
		confidence = clamp(0, 100, (1-cv)*100)
	}

	return models.PredictionResult{
		Prediction: mean.Round(2),
		Confidence: round2(confidence),
	}, true
}

// RegressionPredictor fits an ordinary least squares line over the
// series (x = 0..n-1) and extrapolates one step past the end. It has
// no confidence heuristic; its output is meant for direct accuracy
// comparison.
type RegressionPredictor struct{}

func (RegressionPredictor) Name() string { return StrategyRegression }

// Predict returns a defined-but-degenerate 0 when the least-squares
// denominator is 0, which covers series shorter than two points.
func (RegressionPredictor) Predict(series []decimal.Decimal) (models.PredictionResult, bool) {
	n := float64(len(series))

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range series {
		x := float64(i)
		y := v.InexactFloat64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return models.PredictionResult{Prediction: decimal.Zero}, true
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	predicted := slope*n + intercept
	if predicted < 0 {
		predicted = 0
	}

	return models.PredictionResult{
		Prediction: decimal.NewFromFloat(predicted).Round(2),
	}, true
}

// PredictorFor maps a strategy name to its implementation, defaulting
// to the moving average.
func PredictorFor(strategy string) Predictor {
	if strategy == StrategyRegression {
		return RegressionPredictor{}
	}
	return MovingAveragePredictor{}
}

func populationStdev(values []decimal.Decimal) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v.InexactFloat64()
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v.InexactFloat64() - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}

func clamp(low, high, v float64) float64 {
	return math.Max(low, math.Min(high, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
