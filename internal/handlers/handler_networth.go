package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/middleware"
)

// netWorthHandler handles HTTP requests for the net-worth report and
// monthly timeline.
type netWorthHandler struct {
	netWorthService portssvc.NetWorthSvcFacade
}

// newNetWorthHandler creates a new netWorthHandler.
func newNetWorthHandler(ns portssvc.NetWorthSvcFacade) *netWorthHandler {
	return &netWorthHandler{netWorthService: ns}
}

// registerNetWorthRoutes registers routes related to net worth.
func registerNetWorthRoutes(rg *gin.RouterGroup, netWorthService portssvc.NetWorthSvcFacade) {
	h := newNetWorthHandler(netWorthService)

	networth := rg.Group("/networth")
	{
		networth.GET("", h.getNetWorth)
		networth.GET("/timeline", h.getTimeline)
	}
}

// getNetWorth godoc
// @Summary Current net worth
// @Description Returns the cash balance plus the projected value range of active investment plans
// @Tags networth
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Success 200 {object} domain.NetWorthReport
// @Failure 500 {object} map[string]string "Failed to compute net worth"
// @Router /owners/{owner_id}/networth [get]
func (h *netWorthHandler) getNetWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.netWorthService.NetWorth(c.Request.Context(), ownerID(c))
	if err != nil {
		logger.Error("Failed to compute net worth", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute net worth"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getTimeline godoc
// @Summary Net-worth timeline
// @Description Returns the month-by-month cash and net-worth history extended by a projection horizon
// @Tags networth
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   months query int false "Projection horizon in months"
// @Success 200 {array} domain.TimelinePoint
// @Failure 400 {object} map[string]string "Invalid months value"
// @Failure 500 {object} map[string]string "Failed to build timeline"
// @Router /owners/{owner_id}/networth/timeline [get]
func (h *netWorthHandler) getTimeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months, ok := parseMonthsQuery(c)
	if !ok {
		return
	}

	timeline, err := h.netWorthService.Timeline(c.Request.Context(), ownerID(c), months)
	if err != nil {
		logger.Error("Failed to build net-worth timeline", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build timeline"})
		return
	}

	c.JSON(http.StatusOK, timeline)
}
