package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/handlers"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/session"
)

func StudentRoutes(app *fiber.App, store session.Store) {
	student := app.Group("/student",
		middleware.Protected(),
		middleware.SessionRequired(store),
		middleware.RoleRequired(models.RoleStudent),
	)

	student.Get("/assistants", handlers.ListAssistants)
	student.Post("/sessions", handlers.BookSession)
	student.Get("/sessions", handlers.ListStudentSessions)
	student.Get("/sessions/rateable", handlers.RateableSessions)
	student.Post("/ratings", handlers.RateSession)
}
