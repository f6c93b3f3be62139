package forecast

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// RecentRecordCount is how many of the newest accuracy records a
// backtest report surfaces to callers.
const RecentRecordCount = 3

// Backtest replays the moving-average predictor over historical month
// buckets and scores how close each forecast came to the realized
// spending. Each month from the fourth onward is predicted from its
// three predecessors.
//
// Fewer than four months of history produce an empty report with an
// average accuracy of 0.
func Backtest(buckets map[string]*models.MonthBucket) models.BacktestReport {
	months := SortedMonths(buckets)
	records := make([]models.AccuracyRecord, 0)

	for i := MovingAverageWindow; i < len(months); i++ {
		window := decimal.Zero
		for _, month := range months[i-MovingAverageWindow : i] {
			window = window.Add(buckets[month].Expenses)
		}
		predicted := window.Div(decimal.NewFromInt(MovingAverageWindow))
		actual := buckets[months[i]].Expenses

		records = append(records, models.AccuracyRecord{
			Month:     months[i],
			Predicted: predicted.Round(2),
			Actual:    actual.Round(2),
			Accuracy:  accuracyScore(predicted, actual),
		})
	}

	report := models.BacktestReport{
		Records:    records,
		Recent:     records,
		TotalCount: len(records),
	}

	if len(records) > RecentRecordCount {
		report.Recent = records[len(records)-RecentRecordCount:]
	}

	if len(records) > 0 {
		total := 0.0
		for _, r := range records {
			total += r.Accuracy
		}
		report.AverageAccuracy = round2(total / float64(len(records)))
	}

	return report
}

// accuracyScore is clamp(0, 100, (1 - |predicted-actual|/actual) * 100),
// defined as 0 when nothing was actually spent.
func accuracyScore(predicted, actual decimal.Decimal) float64 {
	if actual.IsZero() {
		return 0
	}

	errRatio := predicted.Sub(actual).Abs().InexactFloat64() / actual.InexactFloat64()
	return round2(clamp(0, 100, (1-errRatio)*100))
}
