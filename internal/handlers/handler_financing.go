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

// financingHandler handles HTTP requests for financing applications.
type financingHandler struct {
	financingService portssvc.FinancingSvcFacade
}

func newFinancingHandler(fs portssvc.FinancingSvcFacade) *financingHandler {
	return &financingHandler{financingService: fs}
}

func registerFinancingRoutes(rg *gin.RouterGroup, financingService portssvc.FinancingSvcFacade) {
	h := newFinancingHandler(financingService)
	rg.POST("/financing/applications", h.submitApplication)
}

// submitApplication godoc
// @Summary Submit a financing application
// @Description Validates the financing limits and the applicant's credit score, then records a pending application.
// @Tags financing
// @Accept json
// @Produce json
// @Param application body dto.SubmitFinancingRequest true "Application details"
// @Success 201 {object} dto.FinancingApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Credit score below threshold"
// @Failure 502 {object} ErrorResponse "Credit bureau unavailable"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /financing/applications [post]
func (h *financingHandler) submitApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitFinancingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for financing application", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	app, err := h.financingService.SubmitApplication(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCreditScoreTooLow):
			logger.Warn("Application rejected on credit score")
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Credit score does not meet the minimum requirement"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error on financing application", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUpstreamFailure):
			logger.Error("Credit bureau unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Credit check is temporarily unavailable"})
		default:
			logger.Error("Failed to submit financing application", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit application"})
		}
		return
	}

	logger.Info("Financing application submitted", slog.String("application_id", app.ApplicationID))
	c.JSON(http.StatusCreated, dto.ToFinancingApplicationResponse(app))
}
