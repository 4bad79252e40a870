package placementRoutes

import (
	controllers "lmms/controllers/placement"
	"lmms/middleware"
	"lmms/models"
	validators "lmms/validators/placement"

	"github.com/gofiber/fiber/v2"
)

// SetupPlacementRoutes sets up broker placement and commission routes
func SetupPlacementRoutes(app *fiber.App) {
	placementGroup := app.Group("/placement")

	placementGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleBroker), validators.CreatePlacement(), controllers.CreatePlacement)
	placementGroup.Post("/:id/confirm", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.PlacementID(), controllers.ConfirmPlacement)
	placementGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleBroker), controllers.ListPlacements)

	commissionGroup := app.Group("/commission")
	commissionGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleBroker), controllers.ListCommissions)
	commissionGroup.Post("/:id/approve", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CommissionID(), controllers.ApproveCommission)
	commissionGroup.Post("/:id/pay", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CommissionID(), controllers.PayCommission)
}
