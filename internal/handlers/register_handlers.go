package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/dto"
	"github.com/nkhandel/personal_finance_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// All data is scoped to an owner via the path; request authentication is
// handled by the deployment's gateway and is not re-checked here.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	owners := v1.Group("/owners/:owner_id")

	registerLedgerRoutes(owners, services.Ledger)
	registerRecurringRoutes(owners, services.Recurring)
	registerSalaryRoutes(owners, services.Salary)
	registerPlanRoutes(owners, services.Plan)
	registerGoalRoutes(owners, services.Goal)
	registerBudgetRoutes(owners, services.Budget)
	registerNetWorthRoutes(owners, services.NetWorth)
}

// registerCustomValidators wires the request validators that cannot be
// expressed as plain binding tags.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// returnrange: ExpectedReturnMax >= ExpectedReturnMin on plan creation.
	_ = v.RegisterValidation("returnrange", func(fl validator.FieldLevel) bool {
		req, ok := fl.Parent().Interface().(dto.CreateInvestmentPlanRequest)
		if !ok {
			return true
		}
		return !req.ExpectedReturnMax.LessThan(req.ExpectedReturnMin)
	})

	// budgetrule100: the three percentages sum to 100 within tolerance.
	_ = v.RegisterValidation("budgetrule100", func(fl validator.FieldLevel) bool {
		req, ok := fl.Parent().Interface().(dto.SetBudgetRuleRequest)
		if !ok {
			return true
		}
		sum := req.NeedsPercent.Add(req.WantsPercent).Add(req.SavingsPercent)
		return sum.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(decimal.RequireFromString("0.01"))
	})
}

// ownerID extracts the owner scope from the route.
func ownerID(c *gin.Context) string {
	return c.Param("owner_id")
}
