package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"yotei.link/configs/configslog"
	"yotei.link/pkg/flashmessages"
	"yotei.link/pkg/queryparams"
	"yotei.link/pkg/renderer"
	"yotei.link/services"
)

// HomeHandler renders the landing page with the user's own schedules.
type HomeHandler struct {
	scheduleService services.IScheduleService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{scheduleService: services.NewScheduleService()}
}

// Home shows the signed-in user's schedules, newest update first, or the
// plain landing page for anonymous visitors.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	userID, _, ok := currentUser(c)
	if !ok {
		data := fiber.Map{"Title": "yotei.link"}
		renderer.SetFlashMessages(data, flashData)
		return renderer.Render(c, "index", "layouts/main", data)
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("updated_at")
	}

	result, err := h.scheduleService.GetSchedulesForUser(c.UserContext(), userID, params)
	if err != nil {
		configslog.Log.Error("Home listing failed", zap.Uint("userID", userID), zap.Error(err))
		result = &queryparams.PaginatedResult{}
	}

	data := fiber.Map{
		"Title":  "Your schedules",
		"Result": result,
	}
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "index", "layouts/main", data)
}
