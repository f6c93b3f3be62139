package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	handler        *BudgetHandler
	echo           *echo.Echo
	ctrl           *gomock.Controller
	mockBudgetRepo *repository_mocks.MockBudgetRepositoryInterface
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.handler = NewBudgetHandler(services.NewBudgetService(s.mockBudgetRepo, nil))
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *BudgetHandlerTestSuite) TestUpsertBudget_Success() {
	s.mockBudgetRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	c, rec := s.newContext(http.MethodPut, "/api/v1/budgets", `{"category":"Food","amount":300}`)

	s.NoError(s.handler.UpsertBudget(c))
	s.Equal(http.StatusOK, rec.Code)

	var budget models.Budget
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &budget))
	s.Equal("food", budget.Category)
	s.True(budget.Amount.Equal(decimal.NewFromInt(300)))
}

func (s *BudgetHandlerTestSuite) TestUpsertBudget_InvalidAmount() {
	c, rec := s.newContext(http.MethodPut, "/api/v1/budgets", `{"category":"food","amount":0}`)

	s.NoError(s.handler.UpsertBudget(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestListBudgets_Success() {
	s.mockBudgetRepo.EXPECT().GetAll().Return([]models.Budget{
		{ID: uuid.New(), Category: "food", Amount: decimal.NewFromInt(300)},
	}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/budgets", "")

	s.NoError(s.handler.ListBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListBudgetsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Budgets, 1)
}

func (s *BudgetHandlerTestSuite) TestDeleteBudget_NotFound() {
	s.mockBudgetRepo.EXPECT().DeleteByCategory("food").Return(repositories.ErrBudgetNotFound)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/budgets/food", "")
	c.SetParamNames("category")
	c.SetParamValues("food")

	s.NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "BUDGET_001")
}
