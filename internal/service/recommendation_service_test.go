package service

import (
	"testing"
	"time"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionForHour(t *testing.T) {
	tests := []struct {
		hour       int
		message    string
		categories []string
	}{
		{6, "Start your day with these!", []string{"Breakfast", "Drink"}},
		{10, "Start your day with these!", []string{"Breakfast", "Drink"}},
		{11, "Perfect for Lunch!", []string{"Burger", "Pizza"}},
		{16, "Perfect for Lunch!", []string{"Burger", "Pizza"}},
		{17, "Relax with these Dinner options!", []string{"Dessert", "Dinner"}},
		{23, "Relax with these Dinner options!", []string{"Dessert", "Dinner"}},
		{0, "Relax with these Dinner options!", []string{"Dessert", "Dinner"}},
		{5, "Relax with these Dinner options!", []string{"Dessert", "Dinner"}},
	}

	for _, tt := range tests {
		message, categories := suggestionForHour(tt.hour)
		assert.Equal(t, tt.message, message, "hour %d", tt.hour)
		assert.Equal(t, tt.categories, categories, "hour %d", tt.hour)
	}
}

func TestTimeSuggestions(t *testing.T) {
	db := setupTestDB(t)
	createTestProduct(t, db, "Iced Coffee", "Drink", 4.5, 1.2, 100)
	createTestProduct(t, db, "Pancakes", "Breakfast", 6.0, 2.0, 20)
	createTestProduct(t, db, "Gourmet Burger", "Burger", 12.99, 5.0, 50)

	svc := NewRecommendationService(repository.NewOrderRepo(db), repository.NewProductRepo(db))
	svc.(*recommendationService).now = func() time.Time {
		return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) // morning
	}

	suggestion, err := svc.TimeSuggestions()
	require.NoError(t, err)
	assert.Equal(t, "Start your day with these!", suggestion.Message)
	require.Len(t, suggestion.Products, 2)
	for _, p := range suggestion.Products {
		assert.Contains(t, []string{"Breakfast", "Drink"}, p.Category)
	}
}

func TestFavoriteProducts(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	burger := createTestProduct(t, db, "Gourmet Burger", "Burger", 12.99, 5.0, 50)
	coffee := createTestProduct(t, db, "Iced Coffee", "Drink", 4.5, 1.2, 100)

	orderSvc := newOrderService(db, nil)
	// Alice orders coffee three times, burger once
	for i := 0; i < 3; i++ {
		_, err := orderSvc.PlaceOrder(alice.ID, []model.CartLine{{ProductID: coffee.ID, Quantity: 1}})
		require.NoError(t, err)
	}
	_, err := orderSvc.PlaceOrder(alice.ID, []model.CartLine{{ProductID: burger.ID, Quantity: 1}})
	require.NoError(t, err)
	// Bob's orders must not leak into Alice's favorites
	_, err = orderSvc.PlaceOrder(bob.ID, []model.CartLine{{ProductID: burger.ID, Quantity: 2}})
	require.NoError(t, err)

	svc := NewRecommendationService(repository.NewOrderRepo(db), repository.NewProductRepo(db))
	favorites, err := svc.FavoriteProducts(alice.ID, 3)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "Iced Coffee", favorites[0].Name)
	assert.Equal(t, 3, favorites[0].TimesOrder)
	assert.Equal(t, "Gourmet Burger", favorites[1].Name)
	assert.Equal(t, 1, favorites[1].TimesOrder)
}

func TestFavoriteProducts_NoOrders(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice")

	svc := NewRecommendationService(repository.NewOrderRepo(db), repository.NewProductRepo(db))
	favorites, err := svc.FavoriteProducts(alice.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
