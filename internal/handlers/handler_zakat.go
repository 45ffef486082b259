package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/middleware"
	"github.com/ZakatAsean/zakat_platform_app/internal/platform/config"
	"github.com/ZakatAsean/zakat_platform_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// zakatHandler handles HTTP requests for zakat calculation and payment.
type zakatHandler struct {
	zakatService    portssvc.ZakatSvcFacade
	paymentService  portssvc.PaymentSvcFacade
	currencyService portssvc.CurrencyReaderSvc
	posthogClient   *utils.PosthogClientWrapper
}

func newZakatHandler(zs portssvc.ZakatSvcFacade, ps portssvc.PaymentSvcFacade, cs portssvc.CurrencyReaderSvc, pc *utils.PosthogClientWrapper) *zakatHandler {
	return &zakatHandler{
		zakatService:    zs,
		paymentService:  ps,
		currencyService: cs,
		posthogClient:   pc,
	}
}

// registerPublicZakatRoutes registers the anonymous-friendly calculation
// endpoint. Optional auth lets signed-in callers get their calculations
// persisted; rate limiting protects the unauthenticated surface.
func registerPublicZakatRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) {
	h := newZakatHandler(services.Zakat, services.Payment, services.Currency, posthogClient)

	// 30 calculations per minute per IP
	rate, _ := limiter.NewRateFromFormatted("30-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	rg.POST("/api/v1/zakat/calculate",
		middleware.RateLimit(ipLimiter),
		middleware.OptionalAuthMiddleware(cfg.JWTSecret),
		h.calculateZakat,
	)
}

// registerAuthedZakatRoutes registers payment confirmation and history under
// the authenticated group.
func registerAuthedZakatRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) {
	h := newZakatHandler(services.Zakat, services.Payment, services.Currency, posthogClient)

	zakat := rg.Group("/zakat")
	{
		zakat.POST("/pay", h.payZakat)
		zakat.GET("/calculations", h.listCalculations)
	}
}

// calculateZakat godoc
// @Summary Calculate zakat obligation
// @Description Computes net assets, nisab status and the zakat amount for the given inputs. Signed-in callers get the calculation persisted and, when an amount is due, a payment session token.
// @Tags zakat
// @Accept json
// @Produce json
// @Param calculation body dto.CalculateZakatRequest true "Calculation inputs"
// @Success 200 {object} dto.CalculateZakatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /zakat/calculate [post]
func (h *zakatHandler) calculateZakat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateZakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	// Empty for anonymous callers; calculation still runs, nothing persists.
	userID, _ := middleware.GetUserIDFromContext(c)

	calc, err := h.zakatService.Calculate(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Calculation for unsupported currency", slog.String("currency", req.Currency))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported currency: " + req.Currency})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error calculating zakat", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to calculate zakat", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to calculate zakat"})
		}
		return
	}

	symbol := ""
	if cur, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), calc.CurrencyCode); err == nil {
		symbol = cur.Symbol
	}
	resp := dto.ToCalculateZakatResponse(calc, symbol)

	// Issue a payment session only for persisted calculations with an amount
	// due. Anonymous calculations cannot be paid.
	if userID != "" && calc.ZakatAmount.IsPositive() {
		token, expiry, err := h.paymentService.IssueSession(c.Request.Context(), calc)
		if err != nil {
			logger.Error("Failed to issue payment session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to prepare payment session"})
			return
		}
		resp.SessionToken = token
		resp.SessionExpiry = &expiry
	}

	middleware.PosthogEvent(c, h.posthogClient, "zakat_calculated", map[string]any{
		"currency":     calc.CurrencyCode,
		"nisab_status": string(calc.NisabStatus),
	})

	logger.Info("Zakat calculated",
		slog.String("currency", calc.CurrencyCode),
		slog.String("nisab_status", string(calc.NisabStatus)),
	)
	c.JSON(http.StatusOK, resp)
}

// payZakat godoc
// @Summary Confirm a zakat payment
// @Description Redeems a payment session token against a chosen charity organization and runs the payment. Confirming an already-paid calculation returns the original payment.
// @Tags zakat
// @Accept json
// @Produce json
// @Param payment body dto.PayZakatRequest true "Payment confirmation"
// @Success 200 {object} dto.PayZakatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 402 {object} dto.PayZakatResponse "Payment attempt failed"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /zakat/pay [post]
func (h *zakatHandler) payZakat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PayZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayZakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.Confirm(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			logger.Warn("Payment session rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired payment session"})
		case errors.Is(err, apperrors.ErrOrganizationRequired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A charity organization must be selected"})
		case errors.Is(err, apperrors.ErrUnknownOrganization):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Charity organization not found"})
		case errors.Is(err, apperrors.ErrOrganizationCurrencyMismatch):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Selected organization does not accept the payment currency"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error confirming payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Calculation not found"})
		default:
			logger.Error("Failed to confirm payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process payment"})
		}
		return
	}

	resp := dto.ToPayZakatResponse(payment)
	middleware.PosthogEvent(c, h.posthogClient, "zakat_payment_confirmed", map[string]any{
		"payment_id": payment.PaymentID,
		"status":     resp.Status,
	})

	// A failed gateway attempt is a terminal record, not a server error.
	if resp.Status == "failed" {
		logger.Warn("Payment attempt failed", slog.String("payment_id", payment.PaymentID), slog.String("cause", payment.FailureCause))
		c.JSON(http.StatusPaymentRequired, resp)
		return
	}

	logger.Info("Payment confirmed", slog.String("payment_id", payment.PaymentID), slog.String("status", resp.Status))
	c.JSON(http.StatusOK, resp)
}

// listCalculations godoc
// @Summary List calculation history
// @Description Retrieves the authenticated user's zakat calculations, newest first.
// @Tags zakat
// @Produce json
// @Success 200 {array} dto.ZakatCalculationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /zakat/calculations [get]
func (h *zakatHandler) listCalculations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	calcs, err := h.zakatService.ListCalculationsForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list calculations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list calculations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListZakatCalculationResponse(calcs))
}
