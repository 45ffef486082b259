package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// charityHandler handles HTTP requests for the charity directory.
type charityHandler struct {
	charityService portssvc.CharitySvcFacade
}

func newCharityHandler(cs portssvc.CharitySvcFacade) *charityHandler {
	return &charityHandler{charityService: cs}
}

// registerCharityRoutes registers the public charity directory endpoint.
func registerCharityRoutes(rg *gin.Engine, charityService portssvc.CharitySvcFacade) {
	h := newCharityHandler(charityService)
	rg.GET("/api/v1/charities", h.listCharities)
}

// listCharities godoc
// @Summary List charity organizations
// @Description Retrieves charity organizations accepting the given currency. An empty list is a valid response.
// @Tags charities
// @Produce json
// @Param currency query string true "Currency code (3 letters)"
// @Success 200 {array} dto.CharityOrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /charities [get]
func (h *charityHandler) listCharities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyCode := strings.ToUpper(c.Query("currency"))
	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter 'currency' must be a 3-letter code"})
		return
	}

	orgs, err := h.charityService.ListByCurrency(c.Request.Context(), currencyCode)
	if err != nil {
		logger.Error("Failed to list charity organizations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list charity organizations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCharityOrganizationResponse(orgs))
}
