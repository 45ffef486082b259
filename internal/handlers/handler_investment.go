package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests for investment accounts.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)
	rg.POST("/investments", h.createInvestment)
}

// createInvestment godoc
// @Summary Open an investment account
// @Description Validates the per-product minimum amount, resolves product details and opens the account.
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Market data unavailable"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for investment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	acc, productName, err := h.investmentService.CreateInvestment(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating investment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUpstreamFailure):
			logger.Error("Market data unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Market data is temporarily unavailable"})
		default:
			logger.Error("Failed to create investment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create investment"})
		}
		return
	}

	logger.Info("Investment account opened", slog.String("investment_id", acc.InvestmentID))
	c.JSON(http.StatusCreated, dto.ToInvestmentAccountResponse(acc, productName))
}
