package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/session"
)

// Setup registers every route group. The store is threaded through so
// the session middleware and the per-role guards share one source of
// truth for who is logged in.
func Setup(app *fiber.App, store session.Store) {
	AuthRoutes(app, store)
	DashboardRoutes(app, store)
	AdminRoutes(app, store)
	ManagerRoutes(app, store)
	AssistantRoutes(app, store)
	StudentRoutes(app, store)
}
