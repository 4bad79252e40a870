package cohortRoutes

import (
	controllers "lmms/controllers/cohort"
	"lmms/middleware"
	"lmms/models"
	"lmms/services/cohortautomation"
	validators "lmms/validators/cohort"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCohortRoutes sets up all admin cohort management routes
func SetupAdminCohortRoutes(app *fiber.App, svc *cohortautomation.Service) {
	adminGroup := app.Group("/admin/cohort")

	adminGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateCohort(), controllers.AdminCreateCohort)
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CohortList(), controllers.AdminListCohorts)
	adminGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CohortID(), controllers.AdminGetCohortDetails)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateCohort(), controllers.AdminUpdateCohort)
	adminGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CohortID(), controllers.AdminPublishCohort)
	adminGroup.Post("/:id/session", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleTrainer), validators.CreateSession(), controllers.AdminAddSession)
	adminGroup.Get("/:id/enrollments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleTrainer), validators.CohortID(), controllers.AdminListCohortEnrollments)

	applicationGroup := app.Group("/admin/application")
	applicationGroup.Post("/:id/approve", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CohortEnrollmentID(), controllers.AdminApproveApplication(svc))
	applicationGroup.Post("/:id/reject", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CohortEnrollmentID(), controllers.AdminRejectApplication(svc))
}
