package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
)

type CreateCenterRequest struct {
	Name string `json:"name" validate:"required"`
}

func CreateCenter(c *fiber.Ctx) error {
	var req CreateCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec := middleware.CurrentSession(c)
	msg, err := api.CreateCenter(c.Context(), rec.UpstreamToken, req.Name)
	if err != nil {
		return upstreamError(c, err)
	}

	dashboard.Invalidate(rec, "")
	if err := store.Save(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msg.Message,
		"state":   dashboard.StateOf(rec),
	})
}

func ListCenters(c *fiber.Ctx) error {
	rec := middleware.CurrentSession(c)
	centers, err := api.ListCenters(c.Context(), rec.UpstreamToken)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(centers)
}
