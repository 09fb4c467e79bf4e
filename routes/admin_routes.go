package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/handlers"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/session"
)

func AdminRoutes(app *fiber.App, store session.Store) {
	admin := app.Group("/admin",
		middleware.Protected(),
		middleware.SessionRequired(store),
		middleware.RoleRequired(models.RoleAdmin),
	)

	admin.Post("/learning-centers", handlers.CreateCenter)
	admin.Get("/learning-centers", handlers.ListCenters)
}
