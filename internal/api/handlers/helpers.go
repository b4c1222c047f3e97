package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoUser = errors.New("no authenticated user in context")

// getUserID reads the authenticated user id set by the auth middleware.
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userID").(string)
	if raw == "" {
		return uuid.Nil, errNoUser
	}
	return uuid.Parse(raw)
}

func getRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
