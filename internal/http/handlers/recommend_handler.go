package handlers

import (
	"github.com/gofiber/fiber/v2"

	"techmart/internal/domain"
	"techmart/internal/log"
	"techmart/internal/services"
	"techmart/internal/validate"
)

type RecommendHandler struct {
	Recommend *services.RecommendService
}

// Similar handles GET /api/v1/products/:id/similar?limit=...
// An unknown product id is an empty list, not an error.
func (h *RecommendHandler) Similar(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	limit := validate.Count(c.Query("limit"))

	products, err := h.Recommend.SimilarProducts(id, limit)
	if err != nil {
		log.Error(c, "similar.error", err, map[string]any{"id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not load recommendations")
	}
	return c.JSON(fiber.Map{"count": len(products), "products": domain.Summaries(products)})
}

// Trending handles GET /api/v1/trending?limit=...
func (h *RecommendHandler) Trending(c *fiber.Ctx) error {
	limit := validate.Count(c.Query("limit"))

	products, err := h.Recommend.TrendingProducts(limit)
	if err != nil {
		log.Error(c, "trending.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load recommendations")
	}
	return c.JSON(fiber.Map{"count": len(products), "products": domain.Summaries(products)})
}

// Personalized handles GET /api/v1/recommendations?userId=...&limit=...
// Anonymous callers get trending products.
func (h *RecommendHandler) Personalized(c *fiber.Ctx) error {
	limit := validate.Count(c.Query("limit"))

	uid := userID(c)
	if uid != "" {
		if _, ok := validate.UserID(uid); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "userId"})
			return jsonError(c, fiber.StatusBadRequest, "invalid user id")
		}
	}

	var (
		products []domain.Product
		err      error
	)
	if uid == "" {
		products, err = h.Recommend.TrendingProducts(limit)
	} else {
		products, err = h.Recommend.PersonalizedRecommendations(uid, limit)
	}
	if err != nil {
		log.Error(c, "recommend.error", err, map[string]any{"user": uid})
		return jsonError(c, fiber.StatusInternalServerError, "could not load recommendations")
	}
	return c.JSON(fiber.Map{"count": len(products), "products": domain.Summaries(products)})
}
