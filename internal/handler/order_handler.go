package handler

import (
	"errors"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: s}
}

// Helper untuk ambil User ID dari JWT Context (set by auth middleware)
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, errors.New("missing user context")
	}
	return uuid.Parse(userID)
}

// PlaceOrderRequest is the checkout request body
type PlaceOrderRequest struct {
	Items []model.CartLine `json:"items"`
}

// PlaceOrder handles checkout
// POST /api/v1/orders
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	summary, err := h.orderService.PlaceOrder(userID, req.Items)
	if err != nil {
		var notFound *service.ProductNotFoundError
		var lowStock *service.InsufficientStockError

		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return c.Status(400).JSON(fiber.Map{"error": "Empty cart"})
		case errors.As(err, &notFound):
			return c.Status(404).JSON(fiber.Map{
				"error":      err.Error(),
				"product_id": notFound.ProductID,
			})
		case errors.As(err, &lowStock):
			return c.Status(409).JSON(fiber.Map{
				"error":      err.Error(),
				"product_id": lowStock.ProductID,
				"available":  lowStock.Available,
				"requested":  lowStock.Requested,
			})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to place order"})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"success":      true,
		"order_id":     summary.OrderID,
		"total_amount": summary.TotalAmount,
	})
}

// ListMyOrders returns the caller's order history, newest first
// GET /api/v1/orders
func (h *OrderHandler) ListMyOrders(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	orders, err := h.orderService.OrdersForUser(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(orders)
}
