package main

import (
	"lmms/config"
	"lmms/database"
	authRoutes "lmms/routers/authRoutes"
	certificateRoutes "lmms/routers/certificateRoutes"
	cohortRoutes "lmms/routers/cohortRoutes"
	courseRoutes "lmms/routers/courseRoutes"
	dashboardRoutes "lmms/routers/dashboardRoutes"
	placementRoutes "lmms/routers/placementRoutes"
	"lmms/services/cohortautomation"
	"lmms/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	svc := cohortautomation.NewService(database.Database.Db)

	// Daily and hourly lifecycle scans
	utils.InitializeCohortSchedulers(svc)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	cohortRoutes.SetupAdminCohortRoutes(app, svc)
	cohortRoutes.SetupCohortRoutes(app, svc)
	certificateRoutes.SetupCertificateRoutes(app)
	placementRoutes.SetupPlacementRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
