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

// salaryHandler handles HTTP requests related to salary history.
type salaryHandler struct {
	salaryService portssvc.SalarySvcFacade
}

// newSalaryHandler creates a new salaryHandler.
func newSalaryHandler(ss portssvc.SalarySvcFacade) *salaryHandler {
	return &salaryHandler{salaryService: ss}
}

// registerSalaryRoutes registers routes related to salary history.
func registerSalaryRoutes(rg *gin.RouterGroup, salaryService portssvc.SalarySvcFacade) {
	h := newSalaryHandler(salaryService)

	salaries := rg.Group("/salaries")
	{
		salaries.POST("", h.addSalary)
		salaries.GET("", h.listSalaries)
	}
}

// addSalary godoc
// @Summary Record a salary change
// @Description Appends a record to the owner's salary history; the effective day of month anchors crediting
// @Tags salary
// @Accept  json
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Param   salary body dto.CreateSalaryRequest true "Salary details"
// @Success 201 {object} dto.SalaryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record salary"
// @Router /owners/{owner_id}/salaries [post]
func (h *salaryHandler) addSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddSalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.salaryService.AddSalary(c.Request.Context(), ownerID(c), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding salary", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add salary record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record salary"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSalaryResponse(record))
}

// listSalaries godoc
// @Summary List salary history
// @Description Lists the owner's salary records, most recent first
// @Tags salary
// @Produce  json
// @Param   owner_id path string true "Owner ID"
// @Success 200 {array} dto.SalaryResponse
// @Failure 500 {object} map[string]string "Failed to list salaries"
// @Router /owners/{owner_id}/salaries [get]
func (h *salaryHandler) listSalaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.salaryService.ListSalaries(c.Request.Context(), ownerID(c))
	if err != nil {
		logger.Error("Failed to list salary records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list salaries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalaryResponses(records))
}
