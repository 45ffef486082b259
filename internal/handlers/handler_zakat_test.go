package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/handlers"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/ZakatAsean/zakat_platform_app/internal/platform/config"
)

// --- Mock Services ---

type MockZakatService struct {
	mock.Mock
}

func (m *MockZakatService) Calculate(ctx context.Context, req dto.CalculateZakatRequest, userID string) (*models.ZakatCalculation, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZakatCalculation), args.Error(1)
}
func (m *MockZakatService) ListCalculationsForUser(ctx context.Context, userID string) ([]models.ZakatCalculation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ZakatCalculation), args.Error(1)
}

var _ portssvc.ZakatSvcFacade = (*MockZakatService)(nil)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) IssueSession(ctx context.Context, calc *models.ZakatCalculation) (string, time.Time, error) {
	args := m.Called(ctx, calc)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockPaymentService) Confirm(ctx context.Context, req dto.PayZakatRequest, userID string) (*models.ZakatPayment, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZakatPayment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}
func (m *MockCurrencyService) EffectiveNisab(ctx context.Context, currencyCode string, at time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode, at)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockCurrencyService) ApplyNisabUpdate(ctx context.Context, req dto.NisabUpdateRequest, actorID string) ([]string, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

type MockCharityService struct {
	mock.Mock
}

func (m *MockCharityService) ListByCurrency(ctx context.Context, currencyCode string) ([]models.CharityOrganization, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CharityOrganization), args.Error(1)
}
func (m *MockCharityService) GetByID(ctx context.Context, orgID string) (*models.CharityOrganization, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CharityOrganization), args.Error(1)
}

var _ portssvc.CharitySvcFacade = (*MockCharityService)(nil)

// --- Test Suite ---

type ZakatHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockZakatService    *MockZakatService
	mockPaymentService  *MockPaymentService
	mockCurrencyService *MockCurrencyService
	mockCharityService  *MockCharityService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ZakatHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "zakat-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ZakatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockZakatService = new(MockZakatService)
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockCurrencyService = new(MockCurrencyService)
	suite.mockCharityService = new(MockCharityService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes
	}
	services := &portssvc.ServiceContainer{
		Currency: suite.mockCurrencyService,
		Zakat:    suite.mockZakatService,
		Payment:  suite.mockPaymentService,
		Charity:  suite.mockCharityService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, nil)
}

func (suite *ZakatHandlerTestSuite) sampleCalculation(userID string) *models.ZakatCalculation {
	return &models.ZakatCalculation{
		CalculationID:  uuid.NewString(),
		UserID:         userID,
		Country:        "Malaysia",
		CurrencyCode:   "MYR",
		Assets:         decimal.NewFromInt(25000),
		Debts:          decimal.NewFromInt(3500),
		NetAssets:      decimal.NewFromInt(21500),
		NisabThreshold: decimal.NewFromInt(21500),
		NisabStatus:    models.NisabAbove,
		ZakatAmount:    decimal.NewFromFloat(537.5),
		ZakatTokens:    decimal.NewFromInt(53750),
		PaymentStatus:  models.CalculationUnpaid,
		CreatedAt:      time.Now(),
	}
}

// --- Calculate ---

func (suite *ZakatHandlerTestSuite) TestCalculate_AnonymousOmitsSessionToken() {
	calc := suite.sampleCalculation("")

	suite.mockZakatService.On("Calculate",
		mock.Anything,
		mock.MatchedBy(func(r dto.CalculateZakatRequest) bool {
			return r.Currency == "MYR" && r.Assets.Equal(decimal.NewFromInt(25000))
		}),
		"", // no bearer token, so no user ID
	).Return(calc, nil).Once()
	suite.mockCurrencyService.On("GetCurrencyByCode", mock.Anything, "MYR").
		Return(&models.Currency{CurrencyCode: "MYR", Symbol: "RM"}, nil).Once()

	body := `{"country":"Malaysia","assets":25000,"debts":3500,"currency":"MYR"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/zakat/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CalculateZakatResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("above", resp.NisabStatus)
	suite.Equal("RM", resp.CurrencySymbol)
	suite.True(resp.ZakatAmount.Equal(decimal.NewFromFloat(537.5)))
	suite.Empty(resp.SessionToken, "anonymous calculations must not get a payment session")

	suite.mockZakatService.AssertExpectations(suite.T())
	suite.mockPaymentService.AssertNotCalled(suite.T(), "IssueSession")
}

func (suite *ZakatHandlerTestSuite) TestCalculate_AuthenticatedGetsSessionToken() {
	userID := uuid.NewString()
	calc := suite.sampleCalculation(userID)
	expiry := time.Now().Add(30 * time.Minute)

	suite.mockZakatService.On("Calculate", mock.Anything, mock.Anything, userID).
		Return(calc, nil).Once()
	suite.mockCurrencyService.On("GetCurrencyByCode", mock.Anything, "MYR").
		Return(&models.Currency{CurrencyCode: "MYR", Symbol: "RM"}, nil).Once()
	suite.mockPaymentService.On("IssueSession", mock.Anything, calc).
		Return("session-token-abc", expiry, nil).Once()

	body := `{"country":"Malaysia","assets":25000,"debts":3500,"currency":"MYR"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/zakat/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CalculateZakatResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("session-token-abc", resp.SessionToken)
	suite.NotNil(resp.SessionExpiry)

	suite.mockZakatService.AssertExpectations(suite.T())
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *ZakatHandlerTestSuite) TestCalculate_UnsupportedCurrencyReturns400() {
	suite.mockZakatService.On("Calculate", mock.Anything, mock.Anything, "").
		Return(nil, fmt.Errorf("looking up currency: %w", apperrors.ErrUnknownCurrency)).Once()

	body := `{"country":"France","assets":1000,"debts":0,"currency":"EUR"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/zakat/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "EUR")
	suite.mockZakatService.AssertExpectations(suite.T())
}

func (suite *ZakatHandlerTestSuite) TestCalculate_MalformedCurrencyFailsBinding() {
	// lowercase fails the currencycode binding validator before the service runs
	body := `{"country":"Malaysia","assets":1000,"debts":0,"currency":"myr"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/zakat/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockZakatService.AssertNotCalled(suite.T(), "Calculate")
}

// --- Pay ---

func (suite *ZakatHandlerTestSuite) TestPay_RequiresAuthentication() {
	body := `{"sessionToken":"some-token","charityId":"JAKIM-001"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/zakat/pay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "Confirm")
}

func (suite *ZakatHandlerTestSuite) TestPay_Success() {
	userID := uuid.NewString()
	completedAt := time.Now()
	payment := &models.ZakatPayment{
		PaymentID:      "zkt2026-0a1b2c3d4",
		CalculationID:  uuid.NewString(),
		UserID:         userID,
		OrgID:          "JAKIM-001",
		Amount:         decimal.NewFromFloat(537.5),
		CurrencyCode:   "MYR",
		Status:         models.PaymentCompleted,
		SettlementRef:  "0xdeadbeef",
		CertificateURL: "https://certificates.zakatcalculator.asean/zkt2026-0a1b2c3d4.pdf",
		CreatedAt:      completedAt.Add(-time.Second),
		CompletedAt:    &completedAt,
	}

	suite.mockPaymentService.On("Confirm",
		mock.Anything,
		mock.MatchedBy(func(r dto.PayZakatRequest) bool {
			return r.SessionToken == "session-token-abc" && r.CharityID == "JAKIM-001"
		}),
		userID,
	).Return(payment, nil).Once()

	body := `{"sessionToken":"session-token-abc","charityId":"JAKIM-001"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/zakat/pay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PayZakatResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("zkt2026-0a1b2c3d4", resp.PaymentID)
	suite.Equal("completed", resp.Status)
	suite.Equal("0xdeadbeef", resp.TransactionHash)
	suite.Equal(payment.CertificateURL, resp.ZakatCertificateURL)

	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *ZakatHandlerTestSuite) TestPay_FailedAttemptReturns402() {
	userID := uuid.NewString()
	payment := &models.ZakatPayment{
		PaymentID:     "zkt2026-badbadbad",
		CalculationID: uuid.NewString(),
		UserID:        userID,
		OrgID:         "JAKIM-001",
		Amount:        decimal.NewFromFloat(537.5),
		CurrencyCode:  "MYR",
		Status:        models.PaymentFailed,
		FailureCause:  apperrors.ErrUpstreamFailure.Error(),
		CreatedAt:     time.Now(),
	}

	suite.mockPaymentService.On("Confirm", mock.Anything, mock.Anything, userID).
		Return(payment, nil).Once()

	body := `{"sessionToken":"session-token-abc","charityId":"JAKIM-001"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/zakat/pay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusPaymentRequired, w.Code)
	var resp dto.PayZakatResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("failed", resp.Status)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *ZakatHandlerTestSuite) TestPay_UnknownOrganizationReturns404() {
	userID := uuid.NewString()
	suite.mockPaymentService.On("Confirm", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("resolving organization: %w", apperrors.ErrUnknownOrganization)).Once()

	body := `{"sessionToken":"session-token-abc","charityId":"NOPE-999"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/zakat/pay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

// --- History ---

func (suite *ZakatHandlerTestSuite) TestListCalculations_Success() {
	userID := uuid.NewString()
	calcs := []models.ZakatCalculation{*suite.sampleCalculation(userID)}

	suite.mockZakatService.On("ListCalculationsForUser", mock.Anything, userID).
		Return(calcs, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/zakat/calculations", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ZakatCalculationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(calcs[0].CalculationID, resp[0].CalculationID)
	suite.mockZakatService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestZakatHandler(t *testing.T) {
	suite.Run(t, new(ZakatHandlerTestSuite))
}
