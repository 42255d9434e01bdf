package routes

import (
	"github.com/gofiber/fiber/v2"

	"yotei.link/handlers"
	"yotei.link/middlewares"
)

// registerAuthRoutes defines the public auth pages and the home page.
func registerAuthRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler()
	homeHandler := handlers.NewHomeHandler()
	csrfProtect := middlewares.CSRFProtection()

	app.Get("/", homeHandler.Home)

	app.Get("/login", csrfProtect, authHandler.ShowLogin)
	app.Post("/login", csrfProtect, authHandler.Login)
	app.Get("/register", csrfProtect, authHandler.ShowRegister)
	app.Post("/register", csrfProtect, authHandler.Register)
	app.Get("/logout", authHandler.Logout)
}
