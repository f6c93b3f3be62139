package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultSeedMonths        = 6
	defaultExpensesPerMonth  = 25
	salaryDayOfMonth         = 1
	expenseDayWindow         = 28
	monthlySpendDriftPercent = 15
)

// expenseRanges gives each category a realistic amount band
var expenseRanges = map[string][2]float64{
	"groceries":     {15.00, 250.00},
	"dining":        {8.00, 120.00},
	"transport":     {10.00, 80.00},
	"shopping":      {25.00, 450.00},
	"entertainment": {10.00, 60.00},
	"utilities":     {50.00, 250.00},
	"healthcare":    {20.00, 300.00},
	"rent":          {900.00, 1600.00},
}

var expenseCategories = []string{
	"groceries", "dining", "transport", "shopping",
	"entertainment", "utilities", "healthcare", "rent",
}

// sampleDataService produces plausible multi-month transaction
// history so forecasts have something to chew on in development
type sampleDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metricsRecorder MetricsRecorderInterface
	faker           *gofakeit.Faker
}

// NewSampleDataService creates a new sample data service. A fixed seed
// makes generated history reproducible across runs.
func NewSampleDataService(transactionRepo repositories.TransactionRepositoryInterface, metricsRecorder MetricsRecorderInterface, seed uint64) SampleDataServiceInterface {
	return &sampleDataService{
		transactionRepo: transactionRepo,
		metricsRecorder: metricsRecorder,
		faker:           gofakeit.New(seed),
	}
}

func (s *sampleDataService) SeedHistory(months, expensesPerMonth int, now time.Time) (*dto.SeedResponse, error) {
	if months <= 0 {
		months = defaultSeedMonths
	}
	if expensesPerMonth <= 0 {
		expensesPerMonth = defaultExpensesPerMonth
	}

	salary := decimal.NewFromFloat(s.faker.Price(3000, 6500)).Round(2)
	employer := s.faker.Company()

	transactions := make([]models.Transaction, 0, months*(expensesPerMonth+1))
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	for m := 0; m < months; m++ {
		monthStart := firstMonth.AddDate(0, m, 0)
		transactions = append(transactions, s.salaryTransaction(salary, employer, monthStart))
		transactions = append(transactions, s.monthlyExpenses(monthStart, expensesPerMonth)...)
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		slog.Error("Failed to persist sample transactions", "error", err, "count", len(transactions))
		return nil, fmt.Errorf("failed to persist sample transactions: %w", err)
	}

	if s.metricsRecorder != nil {
		for range transactions {
			s.metricsRecorder.IncrementCounter("sample_data_generated", nil)
		}
	}

	slog.Info("Sample history generated",
		"months", months,
		"transactions", len(transactions),
		"first_month", firstMonth.Format("2006-01"))

	return &dto.SeedResponse{
		Created:   len(transactions),
		FirstDate: firstMonth,
		LastDate:  firstMonth.AddDate(0, months-1, expenseDayWindow-1),
	}, nil
}

func (s *sampleDataService) salaryTransaction(salary decimal.Decimal, employer string, monthStart time.Time) models.Transaction {
	date := time.Date(monthStart.Year(), monthStart.Month(), salaryDayOfMonth, 9, 0, 0, 0, time.UTC)
	return models.Transaction{
		ID:          uuid.New(),
		Type:        models.TransactionTypeIncome,
		Amount:      salary,
		Category:    "salary",
		Description: fmt.Sprintf("Direct Deposit - %s", employer),
		Date:        date,
	}
}

func (s *sampleDataService) monthlyExpenses(monthStart time.Time, count int) []models.Transaction {
	// drift keeps month totals uneven so predictions are non-trivial
	drift := 1.0 + float64(s.faker.Number(-monthlySpendDriftPercent, monthlySpendDriftPercent))/100.0

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		category := expenseCategories[s.faker.Number(0, len(expenseCategories)-1)]
		bounds := expenseRanges[category]
		amount := decimal.NewFromFloat(s.faker.Price(bounds[0], bounds[1]) * drift).Round(2)

		day := s.faker.Number(1, expenseDayWindow)
		hour := s.faker.Number(6, 23)
		date := time.Date(monthStart.Year(), monthStart.Month(), day, hour, s.faker.Number(0, 59), 0, 0, time.UTC)

		transactions = append(transactions, models.Transaction{
			ID:          uuid.New(),
			Type:        models.TransactionTypeExpense,
			Amount:      amount,
			Category:    category,
			Description: s.faker.Company(),
			Date:        date,
		})
	}
	return transactions
}
