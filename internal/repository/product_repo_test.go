package repository

import (
	"testing"

	"go-restaurant-orders/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}, &model.OrderItem{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, stock int) *model.Product {
	t.Helper()

	product := &model.Product{Name: name, Category: "Test", SellingPrice: 1, CostPrice: 1, Stock: stock}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestDecrementStock(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)
	product := seedProduct(t, db, "Burger", 5)

	ok, err := repo.DecrementStock(db, product.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	fresh, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Stock)
}

func TestDecrementStock_GuardRejectsOverdraw(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)
	product := seedProduct(t, db, "Burger", 5)

	ok, err := repo.DecrementStock(db, product.ID, 6)
	require.NoError(t, err)
	assert.False(t, ok)

	// Stock must be untouched when the guard rejects
	fresh, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fresh.Stock)
}

func TestDecrementStock_ExactStockToZero(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)
	product := seedProduct(t, db, "Burger", 5)

	ok, err := repo.DecrementStock(db, product.ID, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	fresh, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Stock)

	// Nothing left: the next decrement must be rejected
	ok, err = repo.DecrementStock(db, product.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecrementStock_UnknownProduct(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	ok, err := repo.DecrementStock(db, uuid.New(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}
