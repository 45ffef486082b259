package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/core/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ZakatRepository ---
type MockZakatRepository struct {
	mock.Mock
}

func (m *MockZakatRepository) SaveCalculation(ctx context.Context, calc models.ZakatCalculation) error {
	args := m.Called(ctx, calc)
	return args.Error(0)
}

func (m *MockZakatRepository) FindCalculationByID(ctx context.Context, calculationID string) (*models.ZakatCalculation, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZakatCalculation), args.Error(1)
}

func (m *MockZakatRepository) ListCalculationsByUser(ctx context.Context, userID string) ([]models.ZakatCalculation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ZakatCalculation), args.Error(1)
}

func (m *MockZakatRepository) CreatePayment(ctx context.Context, payment models.ZakatPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockZakatRepository) CompletePayment(ctx context.Context, payment models.ZakatPayment, ledger models.Transaction) (bool, error) {
	args := m.Called(ctx, payment, ledger)
	return args.Bool(0), args.Error(1)
}

func (m *MockZakatRepository) FailPayment(ctx context.Context, paymentID, cause string) (bool, error) {
	args := m.Called(ctx, paymentID, cause)
	return args.Bool(0), args.Error(1)
}

func (m *MockZakatRepository) FindPaymentByID(ctx context.Context, paymentID string) (*models.ZakatPayment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZakatPayment), args.Error(1)
}

func (m *MockZakatRepository) FindActivePaymentByCalculation(ctx context.Context, calculationID string) (*models.ZakatPayment, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZakatPayment), args.Error(1)
}

// --- Mock CurrencyReaderSvc ---
type MockCurrencyReader struct {
	mock.Mock
}

func (m *MockCurrencyReader) GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}

func (m *MockCurrencyReader) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}

func (m *MockCurrencyReader) EffectiveNisab(ctx context.Context, currencyCode string, at time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode, at)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.CurrencyReaderSvc = (*MockCurrencyReader)(nil)

// --- Test Suite ---
type ZakatServiceTestSuite struct {
	suite.Suite
	mockCurrency *MockCurrencyReader
	mockRepo     *MockZakatRepository
	service      portssvc.ZakatSvcFacade
}

func (suite *ZakatServiceTestSuite) SetupTest() {
	suite.mockCurrency = new(MockCurrencyReader)
	suite.mockRepo = new(MockZakatRepository)
	suite.service = services.NewZakatService(suite.mockCurrency, suite.mockRepo)
}

func (suite *ZakatServiceTestSuite) myrCurrency() *models.Currency {
	return &models.Currency{
		CurrencyCode:   "MYR",
		Name:           "Malaysian Ringgit",
		Symbol:         "RM",
		NisabThreshold: decimal.NewFromInt(21500),
		TokenRate:      decimal.NewFromInt(100),
	}
}

// expectCurrentNisab stubs revision resolution to the currency row's value.
func (suite *ZakatServiceTestSuite) expectCurrentNisab(ctx context.Context) {
	suite.mockCurrency.On("EffectiveNisab", ctx, "MYR", mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(21500), nil)
}

// --- Test Cases ---

func (suite *ZakatServiceTestSuite) TestCalculate_ExactlyAtThresholdIsAbove() {
	ctx := context.Background()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MYR").Return(suite.myrCurrency(), nil).Once()
	suite.expectCurrentNisab(ctx)

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromInt(21500),
		Debts:    decimal.Zero,
		Currency: "MYR",
	}

	calc, err := suite.service.Calculate(ctx, req, "")

	suite.Require().NoError(err)
	suite.Equal(models.NisabAbove, calc.NisabStatus)
	suite.True(calc.ZakatAmount.Equal(decimal.NewFromFloat(537.5)), "got %s", calc.ZakatAmount)
	suite.True(calc.ZakatTokens.Equal(decimal.NewFromInt(53750)), "got %s", calc.ZakatTokens)
	suite.Equal(models.CalculationUnpaid, calc.PaymentStatus)
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *ZakatServiceTestSuite) TestCalculate_BelowThresholdYieldsZero() {
	ctx := context.Background()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MYR").Return(suite.myrCurrency(), nil).Once()
	suite.expectCurrentNisab(ctx)

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromInt(1000),
		Debts:    decimal.Zero,
		Currency: "MYR",
	}

	calc, err := suite.service.Calculate(ctx, req, "")

	suite.Require().NoError(err)
	suite.Equal(models.NisabBelow, calc.NisabStatus)
	suite.True(calc.ZakatAmount.IsZero())
	suite.True(calc.ZakatTokens.IsZero())
}

func (suite *ZakatServiceTestSuite) TestCalculate_DebtsExceedingAssetsAllowed() {
	ctx := context.Background()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MYR").Return(suite.myrCurrency(), nil).Once()
	suite.expectCurrentNisab(ctx)

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromInt(500),
		Debts:    decimal.NewFromInt(1000),
		Currency: "MYR",
	}

	calc, err := suite.service.Calculate(ctx, req, "")

	suite.Require().NoError(err)
	suite.True(calc.NetAssets.Equal(decimal.NewFromInt(-500)))
	suite.Equal(models.NisabBelow, calc.NisabStatus)
	suite.True(calc.ZakatAmount.IsZero())
}

func (suite *ZakatServiceTestSuite) TestCalculate_NegativeAssetsRejected() {
	ctx := context.Background()

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromInt(-1),
		Debts:    decimal.Zero,
		Currency: "MYR",
	}

	calc, err := suite.service.Calculate(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(calc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrency.AssertNotCalled(suite.T(), "GetCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *ZakatServiceTestSuite) TestCalculate_UnknownCurrency() {
	ctx := context.Background()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "XYZ").Return(nil, apperrors.ErrUnknownCurrency).Once()

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromInt(1000),
		Debts:    decimal.Zero,
		Currency: "XYZ",
	}

	calc, err := suite.service.Calculate(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(calc)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *ZakatServiceTestSuite) TestCalculate_AnonymousDoesNotPersist() {
	ctx := context.Background()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MYR").Return(suite.myrCurrency(), nil).Once()
	suite.expectCurrentNisab(ctx)

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromInt(30000),
		Debts:    decimal.Zero,
		Currency: "MYR",
	}

	_, err := suite.service.Calculate(ctx, req, "")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCalculation", mock.Anything, mock.Anything)
}

func (suite *ZakatServiceTestSuite) TestCalculate_AuthenticatedPersists() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MYR").Return(suite.myrCurrency(), nil).Once()
	suite.expectCurrentNisab(ctx)
	suite.mockRepo.On("SaveCalculation", ctx, mock.MatchedBy(func(c models.ZakatCalculation) bool {
		return c.UserID == userID && c.NisabStatus == models.NisabAbove
	})).Return(nil).Once()

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromInt(30000),
		Debts:    decimal.Zero,
		Currency: "MYR",
	}

	calc, err := suite.service.Calculate(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Equal(userID, calc.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ZakatServiceTestSuite) TestCalculate_Deterministic() {
	ctx := context.Background()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MYR").Return(suite.myrCurrency(), nil).Twice()
	suite.expectCurrentNisab(ctx)

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromFloat(123456.78),
		Debts:    decimal.NewFromFloat(3456.78),
		Currency: "MYR",
	}

	first, err := suite.service.Calculate(ctx, req, "")
	suite.Require().NoError(err)
	second, err := suite.service.Calculate(ctx, req, "")
	suite.Require().NoError(err)

	suite.True(first.ZakatAmount.Equal(second.ZakatAmount))
	suite.True(first.ZakatTokens.Equal(second.ZakatTokens))
	suite.Equal(first.NisabStatus, second.NisabStatus)
}

func (suite *ZakatServiceTestSuite) TestCalculate_RevisedThresholdTakesEffect() {
	ctx := context.Background()
	suite.mockCurrency.On("GetCurrencyByCode", ctx, "MYR").Return(suite.myrCurrency(), nil).Once()
	// A revision past its effective date overrides the currency row's value.
	suite.mockCurrency.On("EffectiveNisab", ctx, "MYR", mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(22000), nil).Once()

	req := dto.CalculateZakatRequest{
		Country:  "malaysia",
		Assets:   decimal.NewFromInt(21500),
		Debts:    decimal.Zero,
		Currency: "MYR",
	}

	calc, err := suite.service.Calculate(ctx, req, "")

	suite.Require().NoError(err)
	suite.True(calc.NisabThreshold.Equal(decimal.NewFromInt(22000)))
	suite.Equal(models.NisabBelow, calc.NisabStatus)
	suite.True(calc.ZakatAmount.IsZero())
}

// --- Run Suite ---
func TestZakatService(t *testing.T) {
	suite.Run(t, new(ZakatServiceTestSuite))
}
