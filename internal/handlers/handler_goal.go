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

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// newGoalHandler creates a new goalHandler.
func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// registerGoalRoutes registers routes related to savings goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goal_id/evaluation", h.evaluateGoal)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Description Registers a target amount and date; progress is derived from linked plans
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Router /owners/{owner_id}/goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), ownerID(c), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create goal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// listGoals godoc
// @Summary List savings goals
// @Description Lists all of the owner's goals with their last derived status
// @Tags goals
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Success 200 {array} dto.GoalResponse
// @Failure 500 {object} map[string]string "Failed to list goals"
// @Router /owners/{owner_id}/goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.goalService.ListGoals(c.Request.Context(), ownerID(c))
	if err != nil {
		logger.Error("Failed to list goals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponses(goals))
}

// evaluateGoal godoc
// @Summary Evaluate a savings goal
// @Description Projects linked plans over the remaining horizon and classifies progress
// @Tags goals
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   goal_id path string true "Goal ID"
// @Success 200 {object} domain.GoalProgress
// @Failure 403 {object} map[string]string "Goal belongs to another owner"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to evaluate goal"
// @Router /owners/{owner_id}/goals/{goal_id}/evaluation [get]
func (h *goalHandler) evaluateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	progress, err := h.goalService.EvaluateGoal(c.Request.Context(), ownerID(c), c.Param("goal_id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Goal belongs to another owner"})
		default:
			logger.Error("Failed to evaluate goal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate goal"})
		}
		return
	}

	c.JSON(http.StatusOK, progress)
}
