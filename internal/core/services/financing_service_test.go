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

// --- Mock ApplicationRepository ---
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) SaveFinancingApplication(ctx context.Context, app models.FinancingApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) SaveInvestmentAccount(ctx context.Context, acc models.InvestmentAccount) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

// --- Mock CreditBureau ---
type MockCreditBureau struct {
	mock.Mock
}

func (m *MockCreditBureau) CheckScore(ctx context.Context, userID string) (portsclients.CreditReport, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(portsclients.CreditReport), args.Error(1)
}

// --- Test Suite ---
type FinancingServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockApplicationRepository
	mockBureau *MockCreditBureau
	service    portssvc.FinancingSvcFacade
}

func (suite *FinancingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockApplicationRepository)
	suite.mockBureau = new(MockCreditBureau)
	suite.service = services.NewFinancingService(suite.mockRepo, suite.mockBureau)
}

func (suite *FinancingServiceTestSuite) validRequest() dto.SubmitFinancingRequest {
	return dto.SubmitFinancingRequest{
		FinancingType:       "personal",
		Amount:              decimal.NewFromInt(12000),
		TermMonths:          12,
		ProfitRate:          decimal.NewFromInt(6),
		Purpose:             "Home renovation",
		ShariahContractType: "murabahah",
		TakafulIncluded:     true,
	}
}

// --- Test Cases ---

func (suite *FinancingServiceTestSuite) TestSubmitApplication_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBureau.On("CheckScore", ctx, userID).Return(portsclients.CreditReport{Score: 720}, nil).Once()
	suite.mockRepo.On("SaveFinancingApplication", ctx, mock.MatchedBy(func(a models.FinancingApplication) bool {
		return a.UserID == userID &&
			a.Status == models.ApplicationPending &&
			a.CreditScore == 720 &&
			a.MonthlyPayment.Equal(decimal.NewFromFloat(1032.80))
	})).Return(nil).Once()

	app, err := suite.service.SubmitApplication(ctx, suite.validRequest(), userID)

	suite.Require().NoError(err)
	suite.Equal(models.ApplicationPending, app.Status)
	suite.True(app.MonthlyPayment.Equal(decimal.NewFromFloat(1032.80)), "got %s", app.MonthlyPayment)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockBureau.AssertExpectations(suite.T())
}

func (suite *FinancingServiceTestSuite) TestSubmitApplication_AmountOverCapRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.FinancingType = "sme"
	req.Amount = decimal.NewFromInt(50001)

	app, err := suite.service.SubmitApplication(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBureau.AssertNotCalled(suite.T(), "CheckScore", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFinancingApplication", mock.Anything, mock.Anything)
}

func (suite *FinancingServiceTestSuite) TestSubmitApplication_UnknownTypeRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.FinancingType = "mortgage"

	app, err := suite.service.SubmitApplication(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FinancingServiceTestSuite) TestSubmitApplication_LowCreditScoreRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBureau.On("CheckScore", ctx, userID).Return(portsclients.CreditReport{Score: 649}, nil).Once()

	app, err := suite.service.SubmitApplication(ctx, suite.validRequest(), userID)

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrCreditScoreTooLow)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFinancingApplication", mock.Anything, mock.Anything)
}

func (suite *FinancingServiceTestSuite) TestSubmitApplication_BureauRetriesOnce() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBureau.On("CheckScore", ctx, userID).Return(portsclients.CreditReport{}, assert.AnError).Once()
	suite.mockBureau.On("CheckScore", ctx, userID).Return(portsclients.CreditReport{Score: 700}, nil).Once()
	suite.mockRepo.On("SaveFinancingApplication", ctx, mock.AnythingOfType("models.FinancingApplication")).Return(nil).Once()

	app, err := suite.service.SubmitApplication(ctx, suite.validRequest(), userID)

	suite.Require().NoError(err)
	suite.Equal(700, app.CreditScore)
	suite.mockBureau.AssertExpectations(suite.T())
}

func (suite *FinancingServiceTestSuite) TestSubmitApplication_BureauUnavailable() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBureau.On("CheckScore", ctx, userID).Return(portsclients.CreditReport{}, assert.AnError).Twice()

	app, err := suite.service.SubmitApplication(ctx, suite.validRequest(), userID)

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrUpstreamFailure)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFinancingApplication", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestFinancingService(t *testing.T) {
	suite.Run(t, new(FinancingServiceTestSuite))
}
