package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

// CSRFProtection guards the HTML form routes. The token lands in
// Locals("csrf") and the views echo it back as a hidden _csrf field. The
// JSON submission endpoints stay outside this middleware and rely on the
// session check instead.
func CSRFProtection() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "yotei_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		ContextKey:     "csrf",
	})
}
