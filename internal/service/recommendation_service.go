package service

import (
	"time"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/repository"

	"github.com/google/uuid"
)

type TimeSuggestion struct {
	Message  string          `json:"message"`
	Products []model.Product `json:"products"`
}

type RecommendationService interface {
	FavoriteProducts(userID uuid.UUID, limit int) ([]repository.FavoriteProduct, error)
	TimeSuggestions() (*TimeSuggestion, error)
}

type recommendationService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	now         func() time.Time // injectable clock for tests
}

func NewRecommendationService(oRepo repository.OrderRepository, pRepo repository.ProductRepository) RecommendationService {
	return &recommendationService{
		orderRepo:   oRepo,
		productRepo: pRepo,
		now:         time.Now,
	}
}

func (s *recommendationService) FavoriteProducts(userID uuid.UUID, limit int) ([]repository.FavoriteProduct, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.orderRepo.FavoriteProducts(userID, limit)
}

// TimeSuggestions picks menu categories by hour of day: breakfast items in
// the morning, mains around lunch, desserts and dinner otherwise
func (s *recommendationService) TimeSuggestions() (*TimeSuggestion, error) {
	message, categories := suggestionForHour(s.now().Hour())

	products, err := s.productRepo.FindByCategories(categories, 3)
	if err != nil {
		return nil, err
	}

	return &TimeSuggestion{Message: message, Products: products}, nil
}

func suggestionForHour(hour int) (string, []string) {
	switch {
	case hour >= 6 && hour < 11:
		return "Start your day with these!", []string{"Breakfast", "Drink"}
	case hour >= 11 && hour < 17:
		return "Perfect for Lunch!", []string{"Burger", "Pizza"}
	default:
		return "Relax with these Dinner options!", []string{"Dessert", "Dinner"}
	}
}
