package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"techmart/internal/log"
	"techmart/internal/repos"
	"techmart/internal/validate"
)

type CatalogHandler struct {
	Catalog *repos.CatalogRepo
	Cats    *repos.CategoryRepo
}

// Categories handles GET /api/v1/categories
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Cats.List()
	if err != nil {
		log.Error(c, "categories.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load categories")
	}
	return c.JSON(fiber.Map{"categories": cats})
}

// Detail handles GET /api/v1/products/:id
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	p, err := h.Catalog.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		log.Error(c, "product.error", err, map[string]any{"id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not load product")
	}
	return c.JSON(p.Summary())
}
