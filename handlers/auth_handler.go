package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"yotei.link/configs/configslog"
	"yotei.link/pkg/flashmessages"
	"yotei.link/pkg/renderer"
	"yotei.link/services"
)

// AuthHandler serves the register/login/logout pages and session writes.
type AuthHandler struct {
	authService services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title": "Sign in",
		"From":  safeReturnPath(c.Query("from")),
	}
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "auth/login", "layouts/main", data)
}

// safeReturnPath only accepts local paths as a post-login destination.
func safeReturnPath(from string) string {
	if len(from) > 1 && from[0] == '/' && from[1] != '/' {
		return from
	}
	return ""
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(c.UserContext(), username, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login failed", zap.String("username", username), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ErrInvalidCredentials.Error())
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if err := h.writeSession(c, user.ID, user.Username); err != nil {
		return err
	}
	if dest := safeReturnPath(c.FormValue("from")); dest != "" {
		return c.Redirect(dest, fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{"Title": "Create account"}
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "auth/register", "layouts/main", data)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.authService.Register(c.UserContext(), username, password)
	if err != nil {
		var authErr services.AuthServiceError
		msg := "Registration failed."
		if errors.As(err, &authErr) {
			msg = authErr.Error()
		} else {
			configslog.Log.Error("Register failed", zap.String("username", username), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	if err := h.writeSession(c, user.ID, user.Username); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if store, ok := c.Locals("session_store").(*session.Store); ok && store != nil {
		if sess, err := store.Get(c); err == nil {
			_ = sess.Destroy()
		}
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *AuthHandler) writeSession(c *fiber.Ctx, userID uint, username string) error {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return fiber.ErrInternalServerError
	}
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set("user_id", userID)
	sess.Set("user_name", username)
	return sess.Save()
}
