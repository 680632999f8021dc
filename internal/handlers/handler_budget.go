package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/middleware"
)

// budgetHandler handles HTTP requests related to budget rules and the
// monthly summary.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budget := rg.Group("/budget")
	{
		budget.PUT("/rule", h.setBudgetRule)
		budget.GET("/summary", h.monthSummary)
	}
}

// setBudgetRule godoc
// @Summary Set the budget rule
// @Description Creates or replaces the owner's needs/wants/savings percentage split
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   rule body dto.SetBudgetRuleRequest true "Percentage split summing to 100"
// @Success 200 {object} domain.BudgetRule
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to save rule"
// @Router /owners/{owner_id}/budget/rule [put]
func (h *budgetHandler) setBudgetRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBudgetRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBudgetRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.budgetService.SetBudgetRule(c.Request.Context(), ownerID(c), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting budget rule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save budget rule", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rule"})
		}
		return
	}

	c.JSON(http.StatusOK, rule)
}

// monthSummary godoc
// @Summary Monthly budget summary
// @Description Compares the month's spend against the owner's rule (50/30/20 when none is saved)
// @Tags budget
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} domain.BudgetSummary
// @Failure 400 {object} map[string]string "Invalid month value"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /owners/{owner_id}/budget/summary [get]
func (h *budgetHandler) monthSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month := time.Now().UTC()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
			return
		}
		month = parsed
	}

	summary, err := h.budgetService.MonthSummary(c.Request.Context(), ownerID(c), month)
	if err != nil {
		logger.Error("Failed to build budget summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
