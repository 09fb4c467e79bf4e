package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/islomjonovabdulazim/center_dashboard/configs"
	"github.com/islomjonovabdulazim/center_dashboard/dashboard"
	"github.com/islomjonovabdulazim/center_dashboard/middleware"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/upstream"
)

const sessionLifetime = 72 * time.Hour

type LoginRequest struct {
	Phone            string `json:"phone" validate:"required"`
	Password         string `json:"password" validate:"required"`
	LearningCenterID *int   `json:"learning_center_id,omitempty"`
}

// Login proxies the credentials upstream and, on success, creates the
// dashboard session holding exactly the returned token and identity.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := api.Login(c.Context(), upstream.LoginRequest{
		Phone:            req.Phone,
		Password:         req.Password,
		LearningCenterID: req.LearningCenterID,
	})
	if err != nil {
		// a 401 here is a credentials failure, not an expired session
		if errors.Is(err, upstream.ErrSessionExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid phone or password"})
		}
		return upstreamError(c, err)
	}

	entry := dashboard.EntrySection(res.UserInfo.Role)
	if entry == "" {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Unknown role: " + res.UserInfo.Role})
	}

	rec := &models.DashboardSession{
		ID:               uuid.New(),
		UpstreamToken:    res.Token,
		UserID:           res.UserInfo.ID,
		FullName:         res.UserInfo.FullName,
		Phone:            res.UserInfo.Phone,
		Role:             res.UserInfo.Role,
		PhotoURL:         res.UserInfo.PhotoURL,
		SubjectField:     res.UserInfo.SubjectField,
		LearningCenterID: res.UserInfo.LearningCenterID,
		Section:          entry,
		ExpiresAt:        time.Now().Add(sessionLifetime),
	}
	if err := store.Create(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	claims := jwt.MapClaims{
		"sid":  rec.ID.String(),
		"role": rec.Role,
		"exp":  rec.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"token":     t,
		"user_info": rec.User(),
		"state":     dashboard.StateOf(rec),
	})
}

func Logout(c *fiber.Ctx) error {
	rec := middleware.CurrentSession(c)
	if err := store.Delete(rec.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to end session"})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func Me(c *fiber.Ctx) error {
	rec := middleware.CurrentSession(c)
	return c.JSON(fiber.Map{
		"user_info": rec.User(),
		"state":     dashboard.StateOf(rec),
	})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

func ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec := middleware.CurrentSession(c)
	msg, err := api.ChangePassword(c.Context(), rec.UpstreamToken, req.OldPassword, req.NewPassword)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(fiber.Map{"message": msg.Message})
}

type UpdateProfileRequest struct {
	FullName string `json:"fullname,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateProfile forwards the change upstream and refreshes the identity
// copy the session carries.
func UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.Phone != "" && !phoneRegex.MatchString(req.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Phone must match +998XXXXXXXXX"})
	}

	rec := middleware.CurrentSession(c)
	info, err := api.UpdateProfile(c.Context(), rec.UpstreamToken, upstream.ProfileUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		return upstreamError(c, err)
	}

	rec.FullName = info.FullName
	rec.Phone = info.Phone
	rec.PhotoURL = info.PhotoURL
	if err := store.Save(rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save session"})
	}
	return c.JSON(fiber.Map{"user_info": rec.User()})
}
