package services

import (
	"errors"
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

// TransactionServiceTestSuite defines the test suite for the
// transaction service
type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service             TransactionServiceInterface
}

// SetupTest runs before each test
func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewTransactionService(s.mockTransactionRepo, nil)
}

// TearDownTest runs after each test
func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestTransactionServiceSuite runs the test suite
func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_Success() {
	s.mockTransactionRepo.EXPECT().Create(gomock.Any()).Return(nil)

	transaction, err := s.service.RecordTransaction(&dto.CreateTransactionRequest{
		Type:        "expense",
		Amount:      42.5,
		Category:    "  Groceries ",
		Description: "weekly shop",
		Date:        "2026-03-15",
	})

	s.NoError(err)
	s.Equal("expense", transaction.Type)
	s.Equal("groceries", transaction.Category)
	s.True(transaction.Amount.Equal(decimal.NewFromFloat(42.5)))
	s.Equal("2026-03", transaction.MonthKey())
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_SanitizesDescription() {
	s.mockTransactionRepo.EXPECT().Create(gomock.Any()).Return(nil)

	transaction, err := s.service.RecordTransaction(&dto.CreateTransactionRequest{
		Type:        "expense",
		Amount:      12,
		Category:    "food",
		Description: "<script>alert(1)</script>\x07 lunch",
	})

	s.NoError(err)
	s.Equal("scriptalert(1)/script lunch", transaction.Description)
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_DefaultsDateToNow() {
	s.mockTransactionRepo.EXPECT().Create(gomock.Any()).Return(nil)

	transaction, err := s.service.RecordTransaction(&dto.CreateTransactionRequest{
		Type:     "income",
		Amount:   100,
		Category: "salary",
	})

	s.NoError(err)
	s.False(transaction.Date.IsZero())
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_InvalidDate() {
	transaction, err := s.service.RecordTransaction(&dto.CreateTransactionRequest{
		Type:     "expense",
		Amount:   10,
		Category: "food",
		Date:     "15/03/2026",
	})

	s.ErrorIs(err, ErrInvalidDateFormat)
	s.Nil(transaction)
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_InvalidType() {
	transaction, err := s.service.RecordTransaction(&dto.CreateTransactionRequest{
		Type:     "transfer",
		Amount:   10,
		Category: "food",
	})

	s.ErrorIs(err, models.ErrInvalidTransactionType)
	s.Nil(transaction)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	id := uuid.New()
	s.mockTransactionRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrTransactionNotFound)

	transaction, err := s.service.GetTransaction(id)

	s.ErrorIs(err, repositories.ErrTransactionNotFound)
	s.Nil(transaction)
}

func (s *TransactionServiceTestSuite) TestListTransactions_DefaultsAndClamping() {
	s.mockTransactionRepo.EXPECT().
		List(gomock.Any(), 0, maxListLimit).
		Return([]models.Transaction{}, int64(0), nil)

	response, err := s.service.ListTransactions(&dto.TransactionQuery{Offset: -5, Limit: 9999})

	s.NoError(err)
	s.Equal(0, response.Pagination.Offset)
	s.Equal(maxListLimit, response.Pagination.Limit)
}

func (s *TransactionServiceTestSuite) TestListTransactions_InvalidTypeFilter() {
	response, err := s.service.ListTransactions(&dto.TransactionQuery{Type: "transfer"})

	s.ErrorIs(err, models.ErrInvalidTransactionType)
	s.Nil(response)
}

func (s *TransactionServiceTestSuite) TestListTransactions_DateFilterParsing() {
	s.mockTransactionRepo.EXPECT().
		List(gomock.Any(), 0, defaultListLimit).
		DoAndReturn(func(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error) {
			s.Require().NotNil(filters.StartDate)
			s.Require().NotNil(filters.EndDate)
			s.Equal(2026, filters.StartDate.Year())
			// end date covers the whole day
			s.Equal(23, filters.EndDate.Hour())
			return []models.Transaction{}, 0, nil
		})

	_, err := s.service.ListTransactions(&dto.TransactionQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})

	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_RepositoryError() {
	id := uuid.New()
	s.mockTransactionRepo.EXPECT().Delete(id).Return(errors.New("database unavailable"))

	err := s.service.DeleteTransaction(id)

	s.Error(err)
}
