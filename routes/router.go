package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"yotei.link/configs"
)

// SetupRoutes wires the global middleware and every route group.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())

	registerAuthRoutes(app)
	registerScheduleRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals exposes the session store and the signed-in
// identity via Locals for everything downstream. Session values are
// normalized to uint here, once; handlers and services only ever see uint
// user ids.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)

		sess, err := sessionStore.Get(c)
		if err != nil {
			return c.Next()
		}
		switch id := sess.Get("user_id").(type) {
		case uint:
			c.Locals("userID", id)
		case int:
			if id > 0 {
				c.Locals("userID", uint(id))
			}
		case int64:
			if id > 0 {
				c.Locals("userID", uint(id))
			}
		case float64:
			if id > 0 {
				c.Locals("userID", uint(id))
			}
		}
		if name, ok := sess.Get("user_name").(string); ok {
			c.Locals("userName", name)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	if c.Accepts("text/html", "application/json") == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Not found"}, "layouts/error")
}
