package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"uniportal_backend/internals/constants"
)

// GetUserUUID resolves the authenticated user id from locals, falling back
// to the guest identity.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	if userIDRaw := c.Locals("user_id"); userIDRaw != nil {
		if userIDStr, ok := userIDRaw.(string); ok {
			if parsed, err := uuid.Parse(userIDStr); err == nil {
				return parsed
			}
		}
	}
	return constants.DummyUserID
}

// GetStudentUUID resolves the student record id bound to the JWT. uuid.Nil
// means the caller is not a student account.
func GetStudentUUID(c *fiber.Ctx) uuid.UUID {
	if raw := c.Locals("student_id"); raw != nil {
		if s, ok := raw.(string); ok {
			if parsed, err := uuid.Parse(s); err == nil {
				return parsed
			}
		}
	}
	return uuid.Nil
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
