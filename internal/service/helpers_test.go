package service

import (
	"testing"

	"go-restaurant-orders/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Single connection so every session sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}, &model.OrderItem{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     model.RoleUser,
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name, category string, selling, cost float64, stock int) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:         name,
		Category:     category,
		SellingPrice: selling,
		CostPrice:    cost,
		Stock:        stock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func reloadProduct(t *testing.T, db *gorm.DB, product *model.Product) *model.Product {
	t.Helper()

	var fresh model.Product
	require.NoError(t, db.First(&fresh, "id = ?", product.ID).Error)
	return &fresh
}
