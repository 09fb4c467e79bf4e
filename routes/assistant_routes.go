package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/handlers"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/session"
)

func AssistantRoutes(app *fiber.App, store session.Store) {
	assistant := app.Group("/assistant",
		middleware.Protected(),
		middleware.SessionRequired(store),
		middleware.RoleRequired(models.RoleAssistant),
	)

	assistant.Post("/availability", handlers.SetAvailability)
	assistant.Get("/availability", handlers.GetAvailability)
	assistant.Get("/sessions", handlers.ListAssistantSessions)
	assistant.Get("/attendance/worklist", handlers.AttendanceWorklist)
	assistant.Get("/sessions/:date/:time", handlers.SearchAttendance)
	assistant.Put("/sessions/:id/attendance", handlers.MarkAttendance)
}
