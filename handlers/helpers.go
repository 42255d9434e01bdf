package handlers

import "github.com/gofiber/fiber/v2"

// currentUser pulls the authenticated identity the session middleware put
// into Locals. ok is false for anonymous requests.
func currentUser(c *fiber.Ctx) (userID uint, username string, ok bool) {
	userID, idOk := c.Locals("userID").(uint)
	username, _ = c.Locals("userName").(string)
	if !idOk || userID == 0 {
		return 0, "", false
	}
	return userID, username, true
}
