package dashboardRoutes

import (
	controllers "lmms/controllers/dashboard"
	"lmms/middleware"
	"lmms/models"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashGroup := app.Group("/admin/dashboard")

	dashGroup.Get("/stats", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.AdminDashboardStats)
}
