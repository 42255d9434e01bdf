package renderer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"yotei.link/pkg/flashmessages"
)

// Keys the views read flash messages from.
const (
	FlashSuccessKeyView = "FlashSuccess"
	FlashErrorKeyView   = "FlashError"
)

// SetFlashMessages copies popped flash data into the render map.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render renders view inside layout with the shared locals (user identity,
// csrf token) merged in. status defaults to 200.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["UserID"]; !ok {
		if id, idOk := c.Locals("userID").(uint); idOk {
			data["UserID"] = id
		}
	}
	if _, ok := data["UserName"]; !ok {
		if name, nameOk := c.Locals("userName").(string); nameOk {
			data["UserName"] = name
		}
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals("csrf")
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
