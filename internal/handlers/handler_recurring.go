package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nkhandel/personal_finance_app/internal/apperrors"
	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/middleware"
)

// recurringHandler handles HTTP requests related to recurring rules.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

// newRecurringHandler creates a new recurringHandler.
func newRecurringHandler(rs portssvc.RecurringSvcFacade) *recurringHandler {
	return &recurringHandler{recurringService: rs}
}

// registerRecurringRoutes registers routes related to recurring rules.
func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := newRecurringHandler(recurringService)

	rules := rg.Group("/recurring-rules")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
		rules.PATCH("/:rule_id", h.updateRule)
	}
}

// createRule godoc
// @Summary Register a recurring rule
// @Description Registers an obligation that materializes into ledger entries on its cadence
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   rule body dto.CreateRecurringRuleRequest true "Rule details"
// @Success 201 {object} dto.RecurringRuleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to register rule"
// @Router /owners/{owner_id}/recurring-rules [post]
func (h *recurringHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurringRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.recurringService.CreateRule(c.Request.Context(), ownerID(c), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating rule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create recurring rule", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register rule"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecurringRuleResponse(rule))
}

// listRules godoc
// @Summary List recurring rules
// @Description Lists all of the owner's rules, active or paused
// @Tags recurring
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Success 200 {array} dto.RecurringRuleResponse
// @Failure 500 {object} map[string]string "Failed to list rules"
// @Router /owners/{owner_id}/recurring-rules [get]
func (h *recurringHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rules, err := h.recurringService.ListRules(c.Request.Context(), ownerID(c))
	if err != nil {
		logger.Error("Failed to list recurring rules", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rules"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringRuleResponses(rules))
}

// updateRule godoc
// @Summary Pause or resume a recurring rule
// @Description Toggles the rule's active flag; rules are never deleted
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   rule_id path string true "Rule ID"
// @Param   update body dto.UpdateRecurringRuleRequest true "Active flag"
// @Success 200 {object} dto.RecurringRuleResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 403 {object} map[string]string "Rule belongs to another owner"
// @Failure 404 {object} map[string]string "Rule not found"
// @Failure 500 {object} map[string]string "Failed to update rule"
// @Router /owners/{owner_id}/recurring-rules/{rule_id} [patch]
func (h *recurringHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRecurringRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rule, err := h.recurringService.SetRuleActive(c.Request.Context(), ownerID(c), c.Param("rule_id"), *req.Active)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rule not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Rule belongs to another owner"})
		default:
			logger.Error("Failed to update recurring rule", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rule"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringRuleResponse(rule))
}
