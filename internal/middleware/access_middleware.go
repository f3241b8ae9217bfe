package middleware

import (
	"time"

	"flashcards/internal/access"

	"github.com/gofiber/fiber/v2"
)

// AccessRequired enforces the trial/subscription gate. It must run
// behind AuthRequired. The clock is read once so the gate decision is
// internally consistent within the request, and it is evaluated fresh
// on every request rather than cached.
func AccessRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		now := time.Now().UTC()
		if !access.HasAccess(user, now) {
			return c.Redirect("/payment", fiber.StatusFound)
		}
		return c.Next()
	}
}
