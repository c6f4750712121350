package middleware

import (
	"coursereview/backend/apperrors"
	"coursereview/backend/config"
	"coursereview/backend/models"
	"coursereview/backend/stores"
	"coursereview/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const userKey = "user"

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(userKey).(*models.User)
	return u
}

// LoadUser resolves the session token, if any, into the current user. It
// never rejects a request.
func LoadUser(cfg *config.Config, users stores.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Next()
		}
		user, err := users.GetByID(c.UserContext(), userID)
		if err == nil {
			c.Locals(userKey, user)
		}
		return c.Next()
	}
}

// AuthMiddleware rejects anonymous requests. It must follow LoadUser.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return utils.Unauthorized(c, "Please log in to access this page.")
		}
		return c.Next()
	}
}

// AdminMiddleware rejects users without the admin flag. It must follow
// AuthMiddleware.
func AdminMiddleware(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.Unauthorized(c, "Please log in to access this page.")
		}
		if !user.IsAdmin {
			return utils.HandleError(c, apperrors.NewForbiddenError(message))
		}
		return c.Next()
	}
}

// RedirectIfAuthenticated sends signed-in users to the landing page.
func RedirectIfAuthenticated(to string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) != nil {
			return c.Redirect(to, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
