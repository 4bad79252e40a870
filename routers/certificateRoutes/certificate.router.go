package certificateRoutes

import (
	controllers "lmms/controllers/certificate"
	"lmms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App) {
	certGroup := app.Group("/certificate")

	certGroup.Get("/my", middleware.JWTMiddleware, controllers.GetMyCertificates)

	// Public verification endpoint, no auth required
	certGroup.Get("/verify/:code", controllers.VerifyCertificate)
}
