package cohortRoutes

import (
	controllers "lmms/controllers/cohort"
	"lmms/middleware"
	"lmms/models"
	"lmms/services/cohortautomation"
	validators "lmms/validators/cohort"

	"github.com/gofiber/fiber/v2"
)

// SetupCohortRoutes sets up candidate-facing cohort routes and trainer
// progress-tracking routes
func SetupCohortRoutes(app *fiber.App, svc *cohortautomation.Service) {
	cohortGroup := app.Group("/cohort")

	cohortGroup.Get("/open", middleware.JWTMiddleware, controllers.ListOpenCohorts)
	cohortGroup.Post("/:id/apply", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCandidate), validators.CohortID(), controllers.ApplyToCohort(svc))
	cohortGroup.Post("/:id/withdraw", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCandidate), validators.CohortID(), controllers.WithdrawFromCohort(svc))
	cohortGroup.Get("/my", middleware.JWTMiddleware, middleware.RequireRole(models.RoleCandidate), controllers.GetMyCohorts)

	trainerGroup := app.Group("/trainer/enrollment")
	trainerGroup.Post("/:id/attendance", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleTrainer), validators.RecordAttendance(), controllers.RecordAttendance(svc))
	trainerGroup.Post("/:id/assessment", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleTrainer), validators.RecordAssessment(), controllers.RecordAssessment(svc))
	trainerGroup.Post("/:id/vetting/refresh", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleTrainer), validators.CohortEnrollmentID(), controllers.RefreshVetting(svc))
}
