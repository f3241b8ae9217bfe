package middleware

import (
	"log"

	"flashcards/internal/models"
	"flashcards/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionUserKey is the session slot holding the authenticated user ID.
const SessionUserKey = "user_id"

// CurrentUserKey is the request-local slot the resolved user is stored
// under for downstream handlers.
const CurrentUserKey = "currentUser"

// AuthRequired resolves the current identity from the session cookie
// and loads the full user record once per request. Anonymous callers
// are redirected to the login page.
func AuthRequired(store *session.Store, authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("Failed to open session: %v", err)
			return c.Redirect("/login", fiber.StatusFound)
		}

		userID, ok := sess.Get(SessionUserKey).(string)
		if !ok || userID == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		user, err := authService.GetUserByID(userID)
		if err != nil {
			// Stale session pointing at a user that no longer resolves.
			log.Printf("Failed to rehydrate session user %s: %v", userID, err)
			if destroyErr := sess.Destroy(); destroyErr != nil {
				log.Printf("Failed to destroy stale session: %v", destroyErr)
			}
			return c.Redirect("/login", fiber.StatusFound)
		}

		c.Locals(CurrentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired. It must only
// be called behind that middleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	return c.Locals(CurrentUserKey).(*models.User)
}
