package repository

import (
	"go-restaurant-orders/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(tx *gorm.DB, order *model.Order) error
	FindByID(id uuid.UUID) (*model.Order, error)
	FindByUser(userID uuid.UUID) ([]model.Order, error)
	FindRecent(limit int) ([]model.Order, error)
	FavoriteProducts(userID uuid.UUID, limit int) ([]FavoriteProduct, error)
	GetSalesSummary() (*SalesSummary, error)
}

// FavoriteProduct untuk recommendation query (most ordered items per user)
type FavoriteProduct struct {
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	TimesOrder int       `json:"times_ordered"`
}

// SalesSummary untuk admin overview stats
type SalesSummary struct {
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalProfit  float64 `json:"total_profit"`
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

// Create menerima *gorm.DB (tx) agar order dan items tersimpan dalam satu
// transaksi bersama stock decrement
func (r *orderRepo) Create(tx *gorm.DB, order *model.Order) error {
	return tx.Create(order).Error
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").Preload("Items.Product").First(&order, "id = ?", id).Error
	return &order, err
}

func (r *orderRepo) FindByUser(userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindRecent(limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Preload("Items.Product").Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// FavoriteProducts returns the products a user has ordered most often
func (r *orderRepo) FavoriteProducts(userID uuid.UUID, limit int) ([]FavoriteProduct, error) {
	var results []FavoriteProduct

	rows, err := r.db.Model(&model.OrderItem{}).
		Select("products.id as product_id, products.name as name, COUNT(order_items.id) as times_order").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", userID).
		Group("products.id, products.name").
		Order("times_order DESC").
		Limit(limit).
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var fav FavoriteProduct
		if err := rows.Scan(&fav.ProductID, &fav.Name, &fav.TimesOrder); err != nil {
			return nil, err
		}
		results = append(results, fav)
	}

	return results, nil
}

func (r *orderRepo) GetSalesSummary() (*SalesSummary, error) {
	var summary SalesSummary

	if err := r.db.Model(&model.Order{}).Count(&summary.TotalOrders).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0) as total_revenue, COALESCE(SUM(total_profit), 0) as total_profit").
		Row().
		Scan(&summary.TotalRevenue, &summary.TotalProfit)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
