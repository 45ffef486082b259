package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/middleware"
	"github.com/ZakatAsean/zakat_platform_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// nisabUpdateActor is recorded as the author of webhook-driven revisions.
const nisabUpdateActor = "nisab-webhook"

// nisabHandler handles the out-of-band nisab update webhook.
type nisabHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newNisabHandler(cs portssvc.CurrencySvcFacade) *nisabHandler {
	return &nisabHandler{currencyService: cs}
}

// registerNisabRoutes registers the shared-secret guarded webhook. It lives
// outside /api/v1 because the caller is an operational system, not a user.
func registerNisabRoutes(rg *gin.Engine, cfg *config.Config, currencyService portssvc.CurrencySvcFacade) {
	h := newNisabHandler(currencyService)
	rg.POST("/internal/nisab-update", middleware.SharedSecretMiddleware(cfg.NisabWebhookSecret), h.updateNisab)
}

// updateNisab godoc
// @Summary Apply a nisab threshold update
// @Description Records new nisab thresholds for a set of currencies. The whole batch is validated before any value is written; a single bad entry rejects the request.
// @Tags internal
// @Accept json
// @Produce json
// @Param update body dto.NisabUpdateRequest true "Nisab values by currency"
// @Success 200 {object} dto.NisabUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /internal/nisab-update [post]
func (h *nisabHandler) updateNisab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.NisabUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for nisab update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.currencyService.ApplyNisabUpdate(c.Request.Context(), req, nisabUpdateActor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownCurrency), errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Rejected nisab update", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to apply nisab update", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to apply nisab update"})
		}
		return
	}

	logger.Info("Nisab update applied", slog.Int("currencies", len(updated)))
	c.JSON(http.StatusOK, dto.NisabUpdateResponse{
		Success:           true,
		Message:           fmt.Sprintf("Applied nisab revisions for %d currencies", len(updated)),
		EffectiveDate:     req.EffectiveDate,
		UpdatedCurrencies: updated,
	})
}
