package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/middleware"
)

// planHandler handles HTTP requests related to investment plans.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

// newPlanHandler creates a new planHandler.
func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{planService: ps}
}

// registerPlanRoutes registers routes related to investment plans.
func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)

	plans := rg.Group("/plans")
	{
		plans.POST("", h.createPlan)
		plans.GET("", h.listPlans)
		plans.PATCH("/:plan_id/status", h.updatePlanStatus)
		plans.GET("/:plan_id/projection", h.projectPlan)
	}
	rg.GET("/portfolio/projection", h.projectPortfolio)
}

// createPlan godoc
// @Summary Start an investment plan
// @Description Starts a systematic investment plan with an expected annual return range
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   plan body dto.CreateInvestmentPlanRequest true "Plan details"
// @Success 201 {object} dto.InvestmentPlanResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create plan"
// @Router /owners/{owner_id}/plans [post]
func (h *planHandler) createPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), ownerID(c), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating plan", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create investment plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentPlanResponse(plan))
}

// listPlans godoc
// @Summary List investment plans
// @Description Lists all of the owner's plans in any lifecycle state
// @Tags plans
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Success 200 {array} dto.InvestmentPlanResponse
// @Failure 500 {object} map[string]string "Failed to list plans"
// @Router /owners/{owner_id}/plans [get]
func (h *planHandler) listPlans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	plans, err := h.planService.ListPlans(c.Request.Context(), ownerID(c))
	if err != nil {
		logger.Error("Failed to list investment plans", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list plans"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentPlanResponses(plans))
}

// updatePlanStatus godoc
// @Summary Update a plan's lifecycle status
// @Description Moves a plan between ACTIVE, PAUSED and ARCHIVED
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   plan_id path string true "Plan ID"
// @Param   status body dto.UpdatePlanStatusRequest true "New status"
// @Success 200 {object} dto.InvestmentPlanResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 403 {object} map[string]string "Plan belongs to another owner"
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 500 {object} map[string]string "Failed to update plan"
// @Router /owners/{owner_id}/plans/{plan_id}/status [patch]
func (h *planHandler) updatePlanStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePlanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePlanStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	plan, err := h.planService.SetPlanStatus(c.Request.Context(), ownerID(c), c.Param("plan_id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Plan belongs to another owner"})
		default:
			logger.Error("Failed to update plan status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentPlanResponse(plan))
}

// projectPlan godoc
// @Summary Project a plan
// @Description Simulates the plan over the horizon and reports year-end rows as a min/max range
// @Tags plans
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   plan_id path string true "Plan ID"
// @Param   months query int false "Projection horizon in months"
// @Success 200 {object} dto.PlanProjectionResponse
// @Failure 400 {object} map[string]string "Invalid months value"
// @Failure 403 {object} map[string]string "Plan belongs to another owner"
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 500 {object} map[string]string "Failed to project plan"
// @Router /owners/{owner_id}/plans/{plan_id}/projection [get]
func (h *planHandler) projectPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months, ok := parseMonthsQuery(c)
	if !ok {
		return
	}

	years, err := h.planService.ProjectPlan(c.Request.Context(), ownerID(c), c.Param("plan_id"), months)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Plan belongs to another owner"})
		default:
			logger.Error("Failed to project plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project plan"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PlanProjectionResponse{
		PlanID: c.Param("plan_id"),
		Months: months,
		Years:  years,
	})
}

// projectPortfolio godoc
// @Summary Project the portfolio
// @Description Combines the owner's active plans at midpoint returns into one year-by-year series
// @Tags plans
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   months query int false "Projection horizon in months"
// @Success 200 {object} dto.PortfolioProjectionResponse
// @Failure 400 {object} map[string]string "Invalid months value"
// @Failure 500 {object} map[string]string "Failed to project portfolio"
// @Router /owners/{owner_id}/portfolio/projection [get]
func (h *planHandler) projectPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months, ok := parseMonthsQuery(c)
	if !ok {
		return
	}

	years, err := h.planService.ProjectPortfolio(c.Request.Context(), ownerID(c), months)
	if err != nil {
		logger.Error("Failed to project portfolio", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project portfolio"})
		return
	}

	c.JSON(http.StatusOK, dto.PortfolioProjectionResponse{
		Months: months,
		Years:  years,
	})
}

// parseMonthsQuery reads the optional months query parameter, writing a
// 400 response itself when the value is not a non-negative integer.
func parseMonthsQuery(c *gin.Context) (int, bool) {
	raw := c.Query("months")
	if raw == "" {
		return 0, true
	}
	months, err := strconv.Atoi(raw)
	if err != nil || months < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid months value"})
		return 0, false
	}
	return months, true
}
