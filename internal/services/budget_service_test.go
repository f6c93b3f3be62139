package services

import (
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetServiceTestSuite defines the test suite for the budget service
type BudgetServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBudgetRepo *repository_mocks.MockBudgetRepositoryInterface
	service        BudgetServiceInterface
}

// SetupTest runs before each test
func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.service = NewBudgetService(s.mockBudgetRepo, nil)
}

// TearDownTest runs after each test
func (s *BudgetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBudgetServiceSuite runs the test suite
func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) TestUpsertBudget_Success() {
	s.mockBudgetRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	budget, err := s.service.UpsertBudget(&dto.UpsertBudgetRequest{
		Category: "  Food ",
		Amount:   300,
	})

	s.NoError(err)
	s.Equal("food", budget.Category)
	s.Equal(models.BudgetTypeExpense, budget.Type)
	s.True(budget.Amount.Equal(decimal.NewFromInt(300)))
}

func (s *BudgetServiceTestSuite) TestUpsertBudget_InvalidAmount() {
	budget, err := s.service.UpsertBudget(&dto.UpsertBudgetRequest{
		Category: "food",
		Amount:   -10,
	})

	s.ErrorIs(err, models.ErrInvalidBudgetAmount)
	s.Nil(budget)
}

func (s *BudgetServiceTestSuite) TestListBudgets() {
	budgets := []models.Budget{
		{ID: uuid.New(), Category: "food", Amount: decimal.NewFromInt(300)},
		{ID: uuid.New(), Category: "rent", Amount: decimal.NewFromInt(1200)},
	}
	s.mockBudgetRepo.EXPECT().GetAll().Return(budgets, nil)

	response, err := s.service.ListBudgets()

	s.NoError(err)
	s.Len(response.Budgets, 2)
}

func (s *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	s.mockBudgetRepo.EXPECT().DeleteByCategory("food").Return(repositories.ErrBudgetNotFound)

	err := s.service.DeleteBudget("food")

	s.ErrorIs(err, repositories.ErrBudgetNotFound)
}
