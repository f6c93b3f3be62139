package repositories

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestBudgetRepository(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

type BudgetRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo BudgetRepositoryInterface
}

func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
}

func (s *BudgetRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetRepositorySuite) TestUpsert_CreatesAndDefaults() {
	budget := &models.Budget{
		Category: "Food",
		Amount:   decimal.NewFromInt(300),
	}

	s.NoError(s.repo.Upsert(budget))
	s.Equal("food", budget.Category)
	s.Equal(models.BudgetTypeExpense, budget.Type)
}

func (s *BudgetRepositorySuite) TestUpsert_ReplacesAmountForCategory() {
	s.NoError(s.repo.Upsert(&models.Budget{Category: "food", Amount: decimal.NewFromInt(300)}))
	s.NoError(s.repo.Upsert(&models.Budget{Category: "food", Amount: decimal.NewFromInt(450)}))

	budgets, err := s.repo.GetAll()
	s.NoError(err)
	s.Require().Len(budgets, 1)
	s.True(budgets[0].Amount.Equal(decimal.NewFromInt(450)))
}

func (s *BudgetRepositorySuite) TestGetAll_OrderedByCategory() {
	s.NoError(s.repo.Upsert(&models.Budget{Category: "travel", Amount: decimal.NewFromInt(100)}))
	s.NoError(s.repo.Upsert(&models.Budget{Category: "food", Amount: decimal.NewFromInt(200)}))

	budgets, err := s.repo.GetAll()
	s.NoError(err)
	s.Require().Len(budgets, 2)
	s.Equal("food", budgets[0].Category)
	s.Equal("travel", budgets[1].Category)
}

func (s *BudgetRepositorySuite) TestGetByCategory() {
	s.NoError(s.repo.Upsert(&models.Budget{Category: "food", Amount: decimal.NewFromInt(300)}))

	budget, err := s.repo.GetByCategory("  FOOD ")
	s.NoError(err)
	s.Equal("food", budget.Category)

	_, err = s.repo.GetByCategory("missing")
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestDeleteByCategory() {
	s.NoError(s.repo.Upsert(&models.Budget{Category: "food", Amount: decimal.NewFromInt(300)}))

	s.NoError(s.repo.DeleteByCategory("food"))
	s.ErrorIs(s.repo.DeleteByCategory("food"), ErrBudgetNotFound)
}
