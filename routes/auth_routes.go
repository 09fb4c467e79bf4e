package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/handlers"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/session"
)

func AuthRoutes(app *fiber.App, store session.Store) {
	app.Post("/auth/login", handlers.Login)

	auth := app.Group("/auth", middleware.Protected(), middleware.SessionRequired(store))
	auth.Post("/logout", handlers.Logout)
	auth.Get("/me", handlers.Me)
	auth.Put("/change-password", handlers.ChangePassword)
	auth.Put("/update-profile", handlers.UpdateProfile)
	auth.Post("/upload-photo", handlers.UploadPhoto)
}
