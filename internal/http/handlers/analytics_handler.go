package handlers

import (
	"github.com/gofiber/fiber/v2"

	"techmart/internal/log"
	"techmart/internal/services"
)

type AnalyticsHandler struct {
	Log *services.QueryLogService
}

// Stats handles GET /api/v1/analytics
func (h *AnalyticsHandler) Stats(c *fiber.Ctx) error {
	a, err := h.Log.Analytics()
	if err != nil {
		log.Error(c, "analytics.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load analytics")
	}
	return c.JSON(a)
}

// Dashboard handles GET /dashboard, a small operator page over the
// same numbers Stats serves.
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	a, err := h.Log.Analytics()
	if err != nil {
		log.Error(c, "analytics.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
			"Message": "Could not load the dashboard. Please retry.",
		})
	}
	return c.Render("dashboard", fiber.Map{
		"Accuracy":      a.Accuracy,
		"AvgResponseMs": a.AvgResponseMs,
		"DailyCount":    a.DailyCount,
		"PopularTerms":  a.PopularTerms,
	})
}
