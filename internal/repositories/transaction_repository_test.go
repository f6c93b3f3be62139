package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) seed(txnType, category string, amount float64, date string) *models.Transaction {
	parsed, err := time.Parse("2006-01-02", date)
	s.Require().NoError(err)

	txn := &models.Transaction{
		Type:     txnType,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     parsed,
	}
	s.Require().NoError(s.repo.Create(txn))
	return txn
}

func (s *TransactionRepositorySuite) TestCreate() {
	txn := s.seed(models.TransactionTypeExpense, "Food ", 42.50, "2025-06-01")

	s.NotEqual(uuid.Nil, txn.ID)
	s.NotZero(txn.CreatedAt)
	// Category normalization happens in the BeforeCreate hook.
	s.Equal("food", txn.Category)
}

func (s *TransactionRepositorySuite) TestCreate_RejectsInvalid() {
	err := s.repo.Create(&models.Transaction{
		Type:     "transfer",
		Amount:   decimal.NewFromInt(10),
		Category: "misc",
		Date:     time.Now(),
	})
	s.ErrorIs(err, models.ErrInvalidTransactionType)

	err = s.repo.Create(&models.Transaction{
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(-5),
		Category: "misc",
		Date:     time.Now(),
	})
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestGetByID() {
	created := s.seed(models.TransactionTypeIncome, "salary", 2000, "2025-06-01")

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.True(found.Amount.Equal(decimal.NewFromInt(2000)))

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestList_FiltersAndOrder() {
	s.seed(models.TransactionTypeExpense, "food", 10, "2025-05-01")
	s.seed(models.TransactionTypeExpense, "food", 20, "2025-06-01")
	s.seed(models.TransactionTypeExpense, "travel", 30, "2025-06-02")
	s.seed(models.TransactionTypeIncome, "salary", 100, "2025-06-03")

	transactions, total, err := s.repo.List(models.TransactionFilters{Category: "food"}, 0, 20)
	s.NoError(err)
	s.EqualValues(2, total)
	s.Require().Len(transactions, 2)
	// Newest first for general queries.
	s.Equal("2025-06", transactions[0].MonthKey())
	s.True(transactions[0].Date.After(transactions[1].Date))

	start, _ := time.Parse("2006-01-02", "2025-06-01")
	transactions, total, err = s.repo.List(models.TransactionFilters{StartDate: &start, Type: models.TransactionTypeExpense}, 0, 20)
	s.NoError(err)
	s.EqualValues(2, total)
	s.Len(transactions, 2)
}

func (s *TransactionRepositorySuite) TestList_Pagination() {
	for day := 1; day <= 5; day++ {
		s.seed(models.TransactionTypeExpense, "misc", float64(day), time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
	}

	transactions, total, err := s.repo.List(models.TransactionFilters{}, 2, 2)
	s.NoError(err)
	s.EqualValues(5, total)
	s.Len(transactions, 2)
}

func (s *TransactionRepositorySuite) TestGetAll_Ordering() {
	s.seed(models.TransactionTypeExpense, "food", 10, "2025-06-02")
	s.seed(models.TransactionTypeExpense, "food", 20, "2025-06-01")

	ascending, err := s.repo.GetAll(true)
	s.NoError(err)
	s.Require().Len(ascending, 2)
	s.True(ascending[0].Date.Before(ascending[1].Date))

	descending, err := s.repo.GetAll(false)
	s.NoError(err)
	s.Require().Len(descending, 2)
	s.True(descending[0].Date.After(descending[1].Date))
}

func (s *TransactionRepositorySuite) TestGetByDateRange() {
	s.seed(models.TransactionTypeExpense, "food", 10, "2025-05-15")
	s.seed(models.TransactionTypeExpense, "food", 20, "2025-06-15")
	s.seed(models.TransactionTypeExpense, "food", 30, "2025-07-15")

	start, _ := time.Parse("2006-01-02", "2025-06-01")
	end, _ := time.Parse("2006-01-02", "2025-06-30")

	transactions, err := s.repo.GetByDateRange(start, end, true)
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.True(transactions[0].Amount.Equal(decimal.NewFromInt(20)))
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	batch := []models.Transaction{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(1), Category: "a", Date: time.Now()},
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(2), Category: "b", Date: time.Now()},
	}

	s.NoError(s.repo.CreateBatch(batch))
	s.NoError(s.repo.CreateBatch(nil))

	all, err := s.repo.GetAll(true)
	s.NoError(err)
	s.Len(all, 2)
}

func (s *TransactionRepositorySuite) TestDelete() {
	created := s.seed(models.TransactionTypeExpense, "food", 10, "2025-06-01")

	s.NoError(s.repo.Delete(created.ID))
	s.ErrorIs(s.repo.Delete(created.ID), ErrTransactionNotFound)
}
