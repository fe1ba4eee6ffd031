package handlers

import (
	"github.com/gofiber/fiber/v2"

	"techmart/internal/domain"
	"techmart/internal/log"
	"techmart/internal/services"
	"techmart/internal/validate"
)

type SearchHandler struct {
	Search *services.SearchService
}

// Smart handles GET /api/v1/search?q=...&limit=...
// An empty query is answered with an empty result and is not logged.
func (h *SearchHandler) Smart(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	q, ok := validate.Query(rawQ)
	if !ok {
		if rawQ != "" {
			log.Security(c, "validation.fail", map[string]any{"field": "q"})
		}
		return c.JSON(fiber.Map{"query": "", "count": 0, "products": []domain.ProductSummary{}})
	}
	limit := validate.Count(c.Query("limit"))

	uid := userID(c)
	if uid != "" {
		if _, ok := validate.UserID(uid); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "userId"})
			uid = ""
		}
	}

	products, err := h.Search.SmartSearch(q, uid, limit)
	if err != nil {
		log.Error(c, "search.error", err, map[string]any{"q": q})
		return jsonError(c, fiber.StatusInternalServerError, "could not load results")
	}

	return c.JSON(fiber.Map{
		"query":    q,
		"count":    len(products),
		"products": domain.Summaries(products),
	})
}
