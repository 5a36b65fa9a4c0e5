package handler

import (
	"go-restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	catalog service.CatalogService
}

func NewMenuHandler(catalog service.CatalogService) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// ListProducts returns the menu, optionally filtered
// GET /api/v1/menu?category=...&search=...
func (h *MenuHandler) ListProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	search := c.Query("search")

	products, err := h.catalog.ListProducts(category, search)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(products)
}

// Categories returns the distinct category labels on the menu
// GET /api/v1/menu/categories
func (h *MenuHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"categories": categories})
}
