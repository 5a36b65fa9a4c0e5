package handler

import (
	"errors"
	"strconv"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	catalog service.CatalogService
	sales   service.SalesService
}

func NewAdminHandler(catalog service.CatalogService, sales service.SalesService) *AdminHandler {
	return &AdminHandler{catalog: catalog, sales: sales}
}

// Summary returns admin overview statistics
// GET /api/v1/admin/summary
func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	overview, err := h.sales.Overview()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales overview"})
	}

	return c.JSON(overview)
}

// RecentOrders lists the newest orders for the admin panel
// GET /api/v1/admin/orders?limit=20
func (h *AdminHandler) RecentOrders(c *fiber.Ctx) error {
	limitStr := c.Query("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20
	}

	orders, err := h.sales.RecentOrders(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}

	return c.JSON(orders)
}

// CreateProduct adds a new menu item
// POST /api/v1/admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.catalog.CreateProduct(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// UpdateProduct edits a menu item
// PUT /api/v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.catalog.UpdateProduct(productID, &product)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

// DeleteProduct removes a menu item
// DELETE /api/v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.catalog.DeleteProduct(productID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete product"})
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}
