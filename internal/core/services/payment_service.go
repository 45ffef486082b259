package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portsclients "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/clients"
	portsrepo "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/ZakatAsean/zakat_platform_app/internal/platform/config"
	"github.com/ZakatAsean/zakat_platform_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

const paymentSessionAudience = "zakat-payment-session"

// paymentSessionClaims is the signed content of a payment session token. The
// amount and currency embedded here are authoritative at redemption; values
// supplied by the client are only cross-checked, never trusted.
type paymentSessionClaims struct {
	Amount   string `json:"amt"`
	Currency string `json:"cur"`
	jwt.RegisteredClaims
}

// paymentService drives the payment state machine:
// AwaitingSelection -> Processing -> Completed | Failed.
// AwaitingSelection is represented by an unredeemed session token; a payment
// row exists only from Processing onward.
type paymentService struct {
	cfg            *config.Config
	zakatRepo      portsrepo.ZakatRepositoryFacade
	charityService portssvc.CharitySvcFacade
	gateway        portsclients.PaymentGateway
}

// NewPaymentService creates a new payment orchestration service.
func NewPaymentService(
	cfg *config.Config,
	zakatRepo portsrepo.ZakatRepositoryFacade,
	charityService portssvc.CharitySvcFacade,
	gateway portsclients.PaymentGateway,
) *paymentService {
	return &paymentService{
		cfg:            cfg,
		zakatRepo:      zakatRepo,
		charityService: charityService,
		gateway:        gateway,
	}
}

// IssueSession produces the opaque handle carrying {amount, currency} for a
// calculation with a positive zakat amount. Paying zero is refused.
func (s *paymentService) IssueSession(ctx context.Context, calc *models.ZakatCalculation) (string, time.Time, error) {
	if !calc.ZakatAmount.IsPositive() {
		return "", time.Time{}, apperrors.ErrNothingToPay
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.PaymentSessionDuration)
	claims := paymentSessionClaims{
		Amount:   calc.ZakatAmount.String(),
		Currency: calc.CurrencyCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWTIssuer,
			Subject:   calc.CalculationID,
			Audience:  jwt.ClaimStrings{paymentSessionAudience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign payment session: %w", err)
	}
	return signed, expiresAt, nil
}

// Confirm redeems a session and runs the payment attempt. Exactly one payment
// row per calculation may complete; a duplicate confirmation returns the
// original result without a second gateway call or transaction record.
func (s *paymentService) Confirm(ctx context.Context, req dto.PayZakatRequest, userID string) (*models.ZakatPayment, error) {
	claims, err := s.parseSession(req.SessionToken)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(claims.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment session carries no valid amount", apperrors.ErrValidation)
	}
	calculationID := claims.Subject
	currencyCode := claims.Currency

	// Clients using the legacy wire shape still echo amount/currency; a
	// mismatch means the client is trying to pay something other than what
	// was computed.
	if !req.Amount.IsZero() && !req.Amount.Equal(amount) {
		return nil, fmt.Errorf("%w: amount does not match the payment session", apperrors.ErrValidation)
	}
	if req.Currency != "" && req.Currency != currencyCode {
		return nil, fmt.Errorf("%w: currency does not match the payment session", apperrors.ErrValidation)
	}

	// Duplicate confirmation fast path.
	if existing, err := s.zakatRepo.FindActivePaymentByCalculation(ctx, calculationID); err == nil {
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up existing payment: %w", err)
	}

	if req.CharityID == "" {
		return nil, apperrors.ErrOrganizationRequired
	}
	org, err := s.charityService.GetByID(ctx, req.CharityID)
	if err != nil {
		return nil, err
	}
	// A mismatched organization leaves the session unredeemed; the caller can
	// select again.
	if org.CurrencyCode != currencyCode {
		return nil, fmt.Errorf("%w: organization %s accepts %s, session is %s",
			apperrors.ErrOrganizationCurrencyMismatch, org.OrgID, org.CurrencyCode, currencyCode)
	}

	paymentID, err := utils.GeneratePaymentID(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment ID: %w", err)
	}

	payment := models.ZakatPayment{
		PaymentID:     paymentID,
		CalculationID: calculationID,
		UserID:        userID,
		OrgID:         org.OrgID,
		Amount:        amount,
		CurrencyCode:  currencyCode,
		Status:        models.PaymentProcessing,
		CreatedAt:     time.Now(),
	}
	if err := s.zakatRepo.CreatePayment(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent confirmation inserted first; observe its outcome.
			return s.zakatRepo.FindActivePaymentByCalculation(ctx, calculationID)
		}
		return nil, fmt.Errorf("failed to create payment record: %w", err)
	}

	return s.process(ctx, payment, org)
}

// process runs the single suspension point of the state machine: the gateway
// call, bounded by a deadline. A timeout or gateway error fails the attempt
// with its cause recorded; there is no automatic retry.
func (s *paymentService) process(ctx context.Context, payment models.ZakatPayment, org *models.CharityOrganization) (*models.ZakatPayment, error) {
	gatewayCtx, cancel := context.WithTimeout(ctx, s.cfg.GatewayTimeout)
	defer cancel()

	result, chargeErr := s.gateway.Charge(gatewayCtx, portsclients.ChargeRequest{
		PaymentID:    payment.PaymentID,
		Amount:       payment.Amount,
		CurrencyCode: payment.CurrencyCode,
		OrgID:        payment.OrgID,
	})
	if chargeErr != nil {
		cause := apperrors.ErrUpstreamFailure
		if errors.Is(chargeErr, context.DeadlineExceeded) || errors.Is(gatewayCtx.Err(), context.DeadlineExceeded) {
			cause = apperrors.ErrGatewayTimeout
		}
		return s.fail(ctx, payment, cause)
	}

	completedAt := time.Now()
	payment.SettlementRef = result.SettlementRef
	payment.CertificateURL = fmt.Sprintf("https://certificates.zakatcalculator.asean/%s.pdf", payment.PaymentID)
	payment.CompletedAt = &completedAt
	ledger := models.Transaction{
		TransactionID: payment.PaymentID + "-txn",
		UserID:        payment.UserID,
		Type:          models.TransactionZakat,
		Amount:        payment.Amount,
		CurrencyCode:  payment.CurrencyCode,
		Description:   fmt.Sprintf("Zakat payment to %s", org.Name),
		ReferenceID:   payment.PaymentID,
		Status:        models.TransactionCompleted,
		CreatedAt:     completedAt,
	}

	// Terminal writes run detached from the request context: the gateway has
	// already charged, so a client disconnect must not strand the row in
	// PROCESSING. Atomicity of the three effects lives in the repository.
	won, err := s.zakatRepo.CompletePayment(context.WithoutCancel(ctx), payment, ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to complete payment %s: %w", payment.PaymentID, err)
	}
	if !won {
		// Another confirmation reached the terminal state first.
		return s.zakatRepo.FindPaymentByID(ctx, payment.PaymentID)
	}

	payment.Status = models.PaymentCompleted
	return &payment, nil
}

// fail records the FAILED terminal state. The write is detached from the
// request context; a canceled request must still leave the row terminal,
// otherwise the active-payment index would block every retry.
func (s *paymentService) fail(ctx context.Context, payment models.ZakatPayment, cause error) (*models.ZakatPayment, error) {
	won, err := s.zakatRepo.FailPayment(context.WithoutCancel(ctx), payment.PaymentID, cause.Error())
	if err != nil {
		return nil, fmt.Errorf("failed to fail payment %s: %w", payment.PaymentID, err)
	}
	if !won {
		return s.zakatRepo.FindPaymentByID(ctx, payment.PaymentID)
	}
	payment.Status = models.PaymentFailed
	payment.FailureCause = cause.Error()
	return &payment, nil
}

func (s *paymentService) parseSession(tokenString string) (*paymentSessionClaims, error) {
	claims := &paymentSessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithAudience(paymentSessionAudience))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid or expired payment session", apperrors.ErrValidation)
	}
	return claims, nil
}
