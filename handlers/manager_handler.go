package handlers

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/upstream"
)

var phoneRegex = regexp.MustCompile(`^\+998\d{9}$`)

type CreateUserRequest struct {
	FullName     string `json:"fullname" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Password     string `json:"password" validate:"required,min=4"`
	Role         string `json:"role" validate:"required,oneof=assistant student"`
	SubjectField string `json:"subject_field" validate:"required"`
}

func CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !phoneRegex.MatchString(req.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Phone must match +998XXXXXXXXX"})
	}

	rec := middleware.CurrentSession(c)
	msg, err := api.CreateUser(c.Context(), rec.UpstreamToken, upstream.CreateUserRequest{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Password:     req.Password,
		Role:         req.Role,
		SubjectField: req.SubjectField,
	})
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

func ListUsers(c *fiber.Ctx) error {
	role := c.Query("role")
	if role != models.RoleAssistant && role != models.RoleStudent {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "role must be assistant or student"})
	}

	rec := middleware.CurrentSession(c)
	users, err := api.ListUsers(c.Context(), rec.UpstreamToken, role)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(users)
}

func GetStats(c *fiber.Ctx) error {
	rec := middleware.CurrentSession(c)
	stats, err := api.GetStats(c.Context(), rec.UpstreamToken)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(stats)
}
