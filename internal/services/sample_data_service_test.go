package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// SampleDataServiceTestSuite defines the test suite for the sample
// data generator
type SampleDataServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service             SampleDataServiceInterface
}

// SetupTest runs before each test
func (s *SampleDataServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewSampleDataService(s.mockTransactionRepo, nil, 42)
}

// TearDownTest runs after each test
func (s *SampleDataServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSampleDataServiceSuite runs the test suite
func TestSampleDataServiceSuite(t *testing.T) {
	suite.Run(t, new(SampleDataServiceTestSuite))
}

func (s *SampleDataServiceTestSuite) TestSeedHistory_GeneratesValidTransactions() {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	var captured []models.Transaction
	s.mockTransactionRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(transactions []models.Transaction) error {
			captured = transactions
			return nil
		})

	response, err := s.service.SeedHistory(3, 10, now)

	s.NoError(err)
	// one salary plus ten expenses per month
	s.Equal(33, response.Created)
	s.Require().Len(captured, 33)

	months := make(map[string]bool)
	incomeCount := 0
	for _, txn := range captured {
		s.NoError(txn.Validate(), "generated transaction must pass model validation")
		s.True(txn.Amount.IsPositive())
		months[txn.MonthKey()] = true
		if txn.IsIncome() {
			incomeCount++
		}
	}
	s.Len(months, 3)
	s.Equal(3, incomeCount)
}

func (s *SampleDataServiceTestSuite) TestSeedHistory_AppliesDefaults() {
	s.mockTransactionRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(transactions []models.Transaction) error {
			s.Len(transactions, defaultSeedMonths*(defaultExpensesPerMonth+1))
			return nil
		})

	response, err := s.service.SeedHistory(0, 0, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	s.NoError(err)
	s.Equal(defaultSeedMonths*(defaultExpensesPerMonth+1), response.Created)
}

func (s *SampleDataServiceTestSuite) TestSeedHistory_Reproducible() {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	var first, second []models.Transaction
	s.mockTransactionRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(transactions []models.Transaction) error {
			first = transactions
			return nil
		})
	_, err := s.service.SeedHistory(2, 5, now)
	s.Require().NoError(err)

	other := NewSampleDataService(s.mockTransactionRepo, nil, 42)
	s.mockTransactionRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(transactions []models.Transaction) error {
			second = transactions
			return nil
		})
	_, err = other.SeedHistory(2, 5, now)
	s.Require().NoError(err)

	s.Require().Len(second, len(first))
	for i := range first {
		s.True(first[i].Amount.Equal(second[i].Amount))
		s.Equal(first[i].Category, second[i].Category)
	}
}
