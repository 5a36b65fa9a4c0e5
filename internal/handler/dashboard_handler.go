package handler

import (
	"go-restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	orderService service.OrderService
	recommender  service.RecommendationService
}

func NewDashboardHandler(orderService service.OrderService, recommender service.RecommendationService) *DashboardHandler {
	return &DashboardHandler{
		orderService: orderService,
		recommender:  recommender,
	}
}

// Overview returns the user dashboard: order history plus recommendations
// GET /api/v1/dashboard
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	orders, err := h.orderService.OrdersForUser(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}

	favorites, err := h.recommender.FavoriteProducts(userID, 3)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch favorites"})
	}

	suggestions, err := h.recommender.TimeSuggestions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch suggestions"})
	}

	return c.JSON(fiber.Map{
		"orders":           orders,
		"favorite_items":   favorites,
		"time_message":     suggestions.Message,
		"time_suggestions": suggestions.Products,
	})
}
