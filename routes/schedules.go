package routes

import (
	"github.com/gofiber/fiber/v2"

	"yotei.link/handlers"
	"yotei.link/middlewares"
)

// registerScheduleRoutes defines everything under /schedules. All of it
// requires a signed-in user.
func registerScheduleRoutes(app *fiber.App) {
	scheduleHandler := handlers.NewScheduleHandler()
	availabilityHandler := handlers.NewAvailabilityHandler()
	commentHandler := handlers.NewCommentHandler()
	csrfProtect := middlewares.CSRFProtection()

	schedules := app.Group("/schedules", middlewares.AuthMiddleware)

	schedules.Get("/new", csrfProtect, scheduleHandler.ShowNew)
	schedules.Post("/", csrfProtect, scheduleHandler.Create)
	schedules.Get("/:scheduleId", scheduleHandler.Show)
	schedules.Get("/:scheduleId/edit", csrfProtect, scheduleHandler.ShowEdit)
	// Owner-only mutation; ?edit=1 or ?delete=1 picks the variant.
	schedules.Post("/:scheduleId", csrfProtect, scheduleHandler.Mutate)

	// Invitee submission endpoints (JSON, called from the schedule page).
	schedules.Post("/:scheduleId/users/:userId/candidates/:candidateId", availabilityHandler.Upsert)
	schedules.Post("/:scheduleId/users/:userId/comments", commentHandler.Upsert)
}
