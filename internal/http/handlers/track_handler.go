package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"techmart/internal/log"
	"techmart/internal/services"
	"techmart/internal/validate"
)

type TrackHandler struct {
	Activity *services.ActivityService
}

type trackViewBody struct {
	ProductID int64  `json:"productId"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// View handles POST /api/v1/track/view, recording a product page view
// that later feeds trending and personalization.
func (h *TrackHandler) View(c *fiber.Ctx) error {
	var body trackViewBody
	if err := c.BodyParser(&body); err != nil || body.ProductID <= 0 {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "invalid view event")
	}
	if body.UserID != "" {
		if _, ok := validate.UserID(body.UserID); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "userId"})
			return jsonError(c, fiber.StatusBadRequest, "invalid view event")
		}
	}

	err := h.Activity.RecordView(body.ProductID, body.UserID, body.SessionID)
	if errors.Is(err, services.ErrProductNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		log.Error(c, "track.view.error", err, map[string]any{"product": body.ProductID})
		return jsonError(c, fiber.StatusInternalServerError, "could not record view")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
