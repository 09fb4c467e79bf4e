package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/session"
	"github.com/islomjonovabdulazim/center_dashboard/upstream"
)

var validate = validator.New()

var (
	api   *upstream.Client
	store session.Store
)

// Setup injects the gateway client and the session store. Must be called
// before any route is served.
func Setup(client *upstream.Client, s session.Store) {
	api = client
	store = s
}

// upstreamError turns a gateway failure into the response the front end
// expects. An upstream 401 wipes the dashboard session before answering,
// so the next request lands on the login view; every other APIError is
// relayed with the upstream's own detail message.
func upstreamError(c *fiber.Ctx, err error) error {
	if errors.Is(err, upstream.ErrSessionExpired) {
		if rec, ok := c.Locals(middleware.SessionLocal).(*models.DashboardSession); ok {
			if dErr := store.Delete(rec.ID); dErr != nil {
				log.Printf("Failed to delete session %s: %v", rec.ID, dErr)
			}
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session expired, please log in again"})
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{"error": apiErr.Detail})
	}

	log.Printf("🔥 Upstream request failed: %v", err)
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Ma'lumotlarni yuklashda xatolik"})
}
