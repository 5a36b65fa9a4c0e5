package service

import (
	"errors"
	"fmt"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/repository"
	"go-restaurant-orders/internal/ws"
	"go-restaurant-orders/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService interface {
	ListProducts(category, search string) ([]model.Product, error)
	Categories() ([]string, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	CreateProduct(req *model.Product) error
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
}

type catalogService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *catalogService) ListProducts(category, search string) ([]model.Product, error) {
	return s.productRepo.FindAll(category, search)
}

func (s *catalogService) Categories() ([]string, error) {
	return s.productRepo.Categories()
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Simpan ke Database
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	// 3. Broadcast ke WebSocket
	go s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":       req.ID,
			"name":     req.Name,
			"category": req.Category,
			"stock":    req.Stock,
			"price":    req.SellingPrice,
		},
	})

	return nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	var updatedProduct *model.Product

	// Gunakan Transaction Block agar stock edit admin tidak balapan dengan checkout
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		oldStock := existing.Stock

		existing.Name = req.Name
		existing.Category = req.Category
		existing.SellingPrice = req.SellingPrice
		existing.CostPrice = req.CostPrice
		existing.Stock = req.Stock
		existing.Rating = req.Rating
		if req.ImageURL != "" {
			existing.ImageURL = req.ImageURL
		}

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updatedProduct = &existing

		go s.wsHub.Publish(map[string]interface{}{
			"type":   "stock_update",
			"action": "product_updated",
			"product": map[string]interface{}{
				"id":        existing.ID,
				"name":      existing.Name,
				"old_stock": oldStock,
				"new_stock": existing.Stock,
				"price":     existing.SellingPrice,
			},
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updatedProduct, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}
