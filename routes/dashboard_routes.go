package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/handlers"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/session"
)

func DashboardRoutes(app *fiber.App, store session.Store) {
	dash := app.Group("/dashboard", middleware.Protected(), middleware.SessionRequired(store))
	dash.Get("/state", handlers.GetState)
	dash.Put("/section", handlers.SelectSection)
}
