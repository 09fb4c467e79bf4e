package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/utils"
)

func GetState(c *fiber.Ctx) error {
	rec := middleware.CurrentSession(c)
	return c.JSON(fiber.Map{
		"state":    dashboard.StateOf(rec),
		"greeting": utils.Greeting(time.Now().Hour()),
	})
}

type SelectSectionRequest struct {
	Section string `json:"section" validate:"required"`
}

// SelectSection switches the active sidebar section. Sections outside
// the caller's role are rejected; switching has no data side effects.
func SelectSection(c *fiber.Ctx) error {
	var req SelectSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec := middleware.CurrentSession(c)
	if err := dashboard.ValidateSection(rec.Role, req.Section); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec.Section = req.Section
	if err := store.Save(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}
	return c.JSON(fiber.Map{"state": dashboard.StateOf(rec)})
}
