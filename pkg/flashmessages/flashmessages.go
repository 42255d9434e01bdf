package flashmessages

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Flash message keys stored in the session between a redirect and the next
// render.
const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// FlashData is what a handler pulls out before rendering.
type FlashData struct {
	Success string
	Error   string
}

func store(c *fiber.Ctx) (*session.Session, error) {
	s, ok := c.Locals("session_store").(*session.Store)
	if !ok || s == nil {
		return nil, fiber.ErrInternalServerError
	}
	return s.Get(c)
}

// SetFlashMessage stores a one-shot message under key.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := store(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages pops both flash slots, clearing them from the session.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	sess, err := store(c)
	if err != nil {
		return FlashData{}, err
	}
	data := FlashData{}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(FlashErrorKey)
	}
	return data, sess.Save()
}
