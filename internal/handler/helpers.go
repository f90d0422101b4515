package handler

import (
	"github.com/chigozie9/WareHouse/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// getUserID pulls the user id set by the auth middleware.
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// fail maps a service error to an HTTP response: not-found to 404,
// validation to 400, capacity/stock conflicts and failed preconditions to
// 409, anything else to an opaque 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsNotFound(err):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case apperr.IsValidation(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case apperr.IsConflict(err):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Unexpected server error. Please try again."})
	}
}
