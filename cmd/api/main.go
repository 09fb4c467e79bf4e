package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/islomjonovabdulazim/center_dashboard/configs"
	"github.com/islomjonovabdulazim/center_dashboard/database"
	"github.com/islomjonovabdulazim/center_dashboard/handlers"
	"github.com/islomjonovabdulazim/center_dashboard/jobs"
	"github.com/islomjonovabdulazim/center_dashboard/routes"
	"github.com/islomjonovabdulazim/center_dashboard/session"
	"github.com/islomjonovabdulazim/center_dashboard/upstream"
	"github.com/islomjonovabdulazim/center_dashboard/utils"
)

func main() {
	database.ConnectDB()
	database.Migrate()

	store := session.NewGormStore(database.DB)
	client := upstream.New(config.ConfigDefault("UPSTREAM_API_URL", upstream.DefaultBaseURL))
	handlers.Setup(client, store)

	c := cron.New()
	c.AddFunc("@hourly", jobs.PurgeExpiredSessions(store))
	go c.Start()
	log.Println("✅ Cron job for session cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Learning Center Dashboard",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Tashkent",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "success",
			"message":  "Welcome to Learning Center Dashboard",
			"greeting": utils.Greeting(time.Now().Hour()),
		})
	})

	routes.Setup(app, store)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigDefault("PORT", "8080")
	log.Println("✅ Server is running on port " + port)
	err := app.Listen(":" + port)
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
