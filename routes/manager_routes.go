package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/handlers"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/session"
)

func ManagerRoutes(app *fiber.App, store session.Store) {
	manager := app.Group("/manager",
		middleware.Protected(),
		middleware.SessionRequired(store),
		middleware.RoleRequired(models.RoleManager),
	)

	manager.Post("/users", handlers.CreateUser)
	manager.Get("/users", handlers.ListUsers)
	manager.Get("/stats", handlers.GetStats)
}
