package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"yotei.link/configs/configslog"
	"yotei.link/services"
)

// AvailabilityHandler serves the JSON endpoint invitees call when toggling
// a cell in the attendance table.
type AvailabilityHandler struct {
	availabilityService services.IAvailabilityService
}

func NewAvailabilityHandler() *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: services.NewAvailabilityService()}
}

type availabilityRequest struct {
	Availability int `json:"availability" form:"availability"`
}

// Upsert stores the caller's answer for one candidate slot. Users can only
// write their own row; the path userId must match the session.
func (h *AvailabilityHandler) Upsert(c *fiber.Ctx) error {
	sessionUserID, _, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "NG", "error": "sign in required"})
	}

	pathUserID, err := c.ParamsInt("userId")
	if err != nil || pathUserID <= 0 || uint(pathUserID) != sessionUserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "NG", "error": "you can only submit your own availability"})
	}
	candidateID, err := c.ParamsInt("candidateId")
	if err != nil || candidateID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "NG", "error": "invalid candidate id"})
	}

	var req availabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "NG", "error": "invalid request body"})
	}

	err = h.availabilityService.UpsertAvailability(
		c.UserContext(),
		c.Params("scheduleId"),
		uint(candidateID),
		sessionUserID,
		req.Availability,
	)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAvailability) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "NG", "error": services.ErrInvalidAvailability.Error()})
		}
		configslog.Log.Error("Upsert availability failed",
			zap.String("scheduleID", c.Params("scheduleId")),
			zap.Uint("userID", sessionUserID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "NG"})
	}

	return c.JSON(fiber.Map{"status": "OK", "availability": req.Availability})
}
