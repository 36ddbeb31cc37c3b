package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/configs"
	database "sinafite_backend/internals/databases"
)

var startTime = time.Now()

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Sinafite-DF API")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "n/a (memory driver)"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if database.DB != nil {
			dbStatus = "Connected"
			if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"storage":        configs.StorageDriver,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
