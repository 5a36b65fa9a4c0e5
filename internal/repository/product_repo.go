package repository

import (
	"go-restaurant-orders/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(category, search string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByCategories(categories []string, limit int) ([]model.Product, error)
	Categories() ([]string, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error)
	Count() (int64, error)
	CountLowStock(threshold int) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll lists the menu; category and search are optional filters
func (r *productRepo) FindAll(category, search string) ([]model.Product, error) {
	var products []model.Product
	query := r.db.Model(&model.Product{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	err := query.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByCategories(categories []string, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category IN ?", categories).Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.Product{}).Distinct("category").Order("category ASC").Pluck("category", &categories).Error
	return categories, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// DecrementStock menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi.
// Decrement bersifat kondisional: hanya apply jika stock masih cukup, supaya
// stock tidak pernah negatif walau ada request bersamaan. Returns false when
// the guard rejects the update (row missing or stock < quantity).
func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) CountLowStock(threshold int) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("stock < ?", threshold).Count(&count).Error
	return count, err
}
