package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"yotei.link/configs/configslog"
	"yotei.link/services"
)

// CommentHandler serves the JSON endpoint for per-user schedule comments.
type CommentHandler struct {
	commentService services.ICommentService
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{commentService: services.NewCommentService()}
}

type commentRequest struct {
	Comment string `json:"comment" form:"comment"`
}

// Upsert stores the caller's comment on the schedule, last write wins.
func (h *CommentHandler) Upsert(c *fiber.Ctx) error {
	sessionUserID, _, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "NG", "error": "sign in required"})
	}

	pathUserID, err := c.ParamsInt("userId")
	if err != nil || pathUserID <= 0 || uint(pathUserID) != sessionUserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "NG", "error": "you can only submit your own comment"})
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "NG", "error": "invalid request body"})
	}

	err = h.commentService.UpsertComment(c.UserContext(), c.Params("scheduleId"), sessionUserID, req.Comment)
	if err != nil {
		configslog.Log.Error("Upsert comment failed",
			zap.String("scheduleID", c.Params("scheduleId")),
			zap.Uint("userID", sessionUserID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "NG"})
	}

	return c.JSON(fiber.Map{"status": "OK", "comment": req.Comment})
}
