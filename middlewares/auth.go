package middlewares

import "github.com/gofiber/fiber/v2"

// AuthMiddleware lets the request through only when the session middleware
// established an identity; everyone else is sent to the login page with a
// return hint, like the original flow.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/login?from="+c.OriginalURL(), fiber.StatusSeeOther)
	}
	return c.Next()
}
