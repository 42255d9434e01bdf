package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"yotei.link/configs/configslog"
	"yotei.link/pkg/flashmessages"
	"yotei.link/pkg/renderer"
	"yotei.link/services"
)

// ScheduleHandler serves the organizer-facing schedule pages.
type ScheduleHandler struct {
	scheduleService services.IScheduleService
}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{scheduleService: services.NewScheduleService()}
}

// ShowNew renders the creation form.
func (h *ScheduleHandler) ShowNew(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{"Title": "New schedule"}
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "schedules/new", "layouts/main", data)
}

// Create stores a new schedule with its candidate slots and redirects to
// its page.
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	schedule, err := h.scheduleService.CreateSchedule(
		c.UserContext(),
		userID,
		c.FormValue("scheduleName"),
		c.FormValue("memo"),
		c.FormValue("candidates"),
	)
	if err != nil {
		configslog.Log.Error("Create schedule failed", zap.Uint("userID", userID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The schedule could not be created.")
		return c.Redirect("/schedules/new", fiber.StatusSeeOther)
	}

	return c.Redirect("/schedules/"+schedule.ScheduleID, fiber.StatusSeeOther)
}

// Show renders the aggregated attendance table for one schedule.
func (h *ScheduleHandler) Show(c *fiber.Ctx) error {
	userID, username, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	view, err := h.scheduleService.GetScheduleForView(
		c.UserContext(),
		c.Params("scheduleId"),
		services.Viewer{UserID: userID, Username: username},
	)
	if err != nil {
		return h.renderScheduleError(c, err)
	}

	return renderer.Render(c, "schedules/show", "layouts/main", fiber.Map{
		"Title":          view.Schedule.ScheduleName,
		"Schedule":       view.Schedule,
		"Candidates":     view.Candidates,
		"Users":          view.Users,
		"Availabilities": view.Availabilities,
		"Comments":       view.Comments,
		"IsOwner":        services.IsOwner(userID, view.Schedule),
	})
}

// ShowEdit renders the edit form, owner only.
func (h *ScheduleHandler) ShowEdit(c *fiber.Ctx) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	schedule, candidates, err := h.scheduleService.GetScheduleForEdit(c.UserContext(), c.Params("scheduleId"), userID)
	if err != nil {
		return h.renderScheduleError(c, err)
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":      "Edit " + schedule.ScheduleName,
		"Schedule":   schedule,
		"Candidates": candidates,
	}
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "schedules/edit", "layouts/main", data)
}

// Mutate handles the owner-only POST on a schedule. The edit/delete query
// flags are decoded exactly once, here, into a tagged mutation; a request
// carrying neither flag is rejected as malformed before any service call.
func (h *ScheduleHandler) Mutate(c *fiber.Ctx) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	scheduleID := c.Params("scheduleId")

	var mutation services.ScheduleMutation
	switch {
	case c.QueryInt("edit") == 1:
		mutation = services.EditRequest{
			ScheduleName:  c.FormValue("scheduleName"),
			Memo:          c.FormValue("memo"),
			CandidateText: c.FormValue("candidates"),
		}
	case c.QueryInt("delete") == 1:
		mutation = services.DeleteRequest{}
	default:
		return renderer.Render(c, "errors/400", "layouts/error", fiber.Map{
			"Title": "Bad request",
		}, http.StatusBadRequest)
	}

	if err := h.scheduleService.MutateSchedule(c.UserContext(), scheduleID, userID, mutation); err != nil {
		return h.renderScheduleError(c, err)
	}

	if _, isDelete := mutation.(services.DeleteRequest); isDelete {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "The schedule was deleted.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Redirect("/schedules/"+scheduleID, fiber.StatusSeeOther)
}

// renderScheduleError maps the combined not-found/forbidden outcome to a
// 404 page and everything else to a 500.
func (h *ScheduleHandler) renderScheduleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrScheduleNotFound) {
		return renderer.Render(c, "errors/404", "layouts/error", fiber.Map{
			"Title": "Not found",
		}, http.StatusNotFound)
	}
	configslog.Log.Error("Schedule handler error",
		zap.String("scheduleID", c.Params("scheduleId")), zap.Error(err))
	return renderer.Render(c, "errors/500", "layouts/error", fiber.Map{
		"Title": "Something went wrong",
	}, http.StatusInternalServerError)
}
