package services_test

import (
	"context"
	"testing"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portsclients "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/clients"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/core/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MarketData ---
type MockMarketData struct {
	mock.Mock
}

func (m *MockMarketData) InvestmentDetails(ctx context.Context, investmentType string) (portsclients.InvestmentDetails, error) {
	args := m.Called(ctx, investmentType)
	return args.Get(0).(portsclients.InvestmentDetails), args.Error(1)
}

// --- Test Suite ---
type InvestmentServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockApplicationRepository
	mockTxnRepo *MockTransactionRepository
	mockMarket  *MockMarketData
	service     portssvc.InvestmentSvcFacade
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockApplicationRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockMarket = new(MockMarketData)
	suite.service = services.NewInvestmentService(suite.mockRepo, suite.mockTxnRepo, suite.mockMarket)
}

func (suite *InvestmentServiceTestSuite) sukukDetails() portsclients.InvestmentDetails {
	return portsclients.InvestmentDetails{
		Name:           "Malaysian Government Sukuk",
		ProfitRate:     decimal.NewFromFloat(4.2),
		HalalCertified: true,
		RiskRating:     "low",
	}
}

// --- Test Cases ---

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockMarket.On("InvestmentDetails", ctx, "sukuk").Return(suite.sukukDetails(), nil).Once()
	suite.mockRepo.On("SaveInvestmentAccount", ctx, mock.MatchedBy(func(a models.InvestmentAccount) bool {
		return a.UserID == userID &&
			a.InvestmentType == "sukuk" &&
			a.Amount.Equal(decimal.NewFromInt(5000)) &&
			a.CurrentValue.Equal(a.Amount) &&
			a.HalalCertified
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t models.Transaction) bool {
		return t.Type == models.TransactionInvestment &&
			t.CurrencyCode == "MYR" &&
			t.Amount.Equal(decimal.NewFromInt(5000)) &&
			t.Status == models.TransactionCompleted
	})).Return(nil).Once()

	acc, name, err := suite.service.CreateInvestment(ctx, dto.CreateInvestmentRequest{
		InvestmentType: "sukuk",
		Amount:         decimal.NewFromInt(5000),
	}, userID)

	suite.Require().NoError(err)
	suite.Equal("Malaysian Government Sukuk", name)
	suite.True(acc.ProfitRate.Equal(decimal.NewFromFloat(4.2)))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_BelowMinimumRejected() {
	ctx := context.Background()

	acc, _, err := suite.service.CreateInvestment(ctx, dto.CreateInvestmentRequest{
		InvestmentType: "sukuk",
		Amount:         decimal.NewFromInt(500),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMarket.AssertNotCalled(suite.T(), "InvestmentDetails", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvestmentAccount", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_UnknownTypeRejected() {
	ctx := context.Background()

	acc, _, err := suite.service.CreateInvestment(ctx, dto.CreateInvestmentRequest{
		InvestmentType: "crypto",
		Amount:         decimal.NewFromInt(1000),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_MarketDataRetriesOnce() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockMarket.On("InvestmentDetails", ctx, "asb").Return(portsclients.InvestmentDetails{}, assert.AnError).Once()
	suite.mockMarket.On("InvestmentDetails", ctx, "asb").Return(portsclients.InvestmentDetails{
		Name:           "Amanah Saham Bumiputera",
		ProfitRate:     decimal.NewFromFloat(5.5),
		HalalCertified: true,
		RiskRating:     "low",
	}, nil).Once()
	suite.mockRepo.On("SaveInvestmentAccount", ctx, mock.AnythingOfType("models.InvestmentAccount")).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("models.Transaction")).Return(nil).Once()

	_, name, err := suite.service.CreateInvestment(ctx, dto.CreateInvestmentRequest{
		InvestmentType: "asb",
		Amount:         decimal.NewFromInt(100),
	}, userID)

	suite.Require().NoError(err)
	suite.Equal("Amanah Saham Bumiputera", name)
	suite.mockMarket.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_MarketDataUnavailable() {
	ctx := context.Background()

	suite.mockMarket.On("InvestmentDetails", ctx, "gold").Return(portsclients.InvestmentDetails{}, assert.AnError).Twice()

	acc, _, err := suite.service.CreateInvestment(ctx, dto.CreateInvestmentRequest{
		InvestmentType: "gold",
		Amount:         decimal.NewFromInt(100),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrUpstreamFailure)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvestmentAccount", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestInvestmentService(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
