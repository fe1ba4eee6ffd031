package handlers

import (
	"github.com/gofiber/fiber/v2"

	"techmart/internal/domain"
	"techmart/internal/log"
	"techmart/internal/services"
	"techmart/internal/validate"
)

type SuggestHandler struct {
	Suggest *services.SuggestService
}

// Suggestions handles GET /api/v1/suggest?q=...
// An empty partial query yields empty suggestion lists.
func (h *SuggestHandler) Suggestions(c *fiber.Ctx) error {
	q, ok := validate.Query(c.Query("q"))
	if !ok {
		return c.JSON(domain.Suggestions{
			PopularTerms:     []string{},
			Categories:       []string{},
			SmartCompletions: []string{},
		})
	}

	sug, err := h.Suggest.Suggest(q)
	if err != nil {
		log.Error(c, "suggest.error", err, map[string]any{"q": q})
		return jsonError(c, fiber.StatusInternalServerError, "could not load suggestions")
	}
	return c.JSON(sug)
}
