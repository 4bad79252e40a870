package courseRoutes

import (
	controllers "lmms/controllers/course"
	"lmms/middleware"
	"lmms/models"
	validators "lmms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up admin course management and user-facing
// course listing routes
func SetupCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course")

	adminGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseList(), controllers.AdminListCourses)
	adminGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseID(), controllers.AdminGetCourseDetails)

	userGroup := app.Group("/course")
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
}
