package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/islomjonovabdulazim/center_dashboard/configs"
	"github.com/islomjonovabdulazim/center_dashboard/models"
	"github.com/islomjonovabdulazim/center_dashboard/session"
)

const SessionLocal = "dashboardSession"

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// SessionRequired resolves the JWT's session id against the store and
// parks the record in locals. A valid JWT whose record is gone (logout,
// upstream 401 wipe, expiry sweep) is treated as signed out.
func SessionRequired(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)

		sid, err := uuid.Parse(claims["sid"].(string))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
		}
		rec, err := store.Get(sid)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session expired, please log in again"})
		}

		c.Locals(SessionLocal, rec)
		return c.Next()
	}
}

// CurrentSession returns the record loaded by SessionRequired.
func CurrentSession(c *fiber.Ctx) *models.DashboardSession {
	return c.Locals(SessionLocal).(*models.DashboardSession)
}

func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentSession(c).Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: " + role + " access required",
			})
		}
		return c.Next()
	}
}
