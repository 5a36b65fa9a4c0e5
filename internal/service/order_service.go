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

// DefaultTaxRate is the GST surcharge applied to the pre-tax order total
const DefaultTaxRate = 0.05

var ErrEmptyCart = errors.New("cart is empty")

// ProductNotFoundError means a cart line referenced an unknown product
type ProductNotFoundError struct {
	ProductID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InsufficientStockError carries available vs requested for diagnostics
type InsufficientStockError struct {
	ProductID uuid.UUID
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock low for %s: available %d, requested %d", e.Name, e.Available, e.Requested)
}

// OrderSummary is returned to the caller on a successful checkout
type OrderSummary struct {
	OrderID     uuid.UUID `json:"order_id"`
	TotalAmount float64   `json:"total_amount"`
}

type OrderService interface {
	PlaceOrder(userID uuid.UUID, lines []model.CartLine) (*OrderSummary, error)
	OrdersForUser(userID uuid.UUID) ([]model.Order, error)
	GetOrder(id uuid.UUID) (*model.Order, error)
}

type orderService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	db          *gorm.DB
	wsHub       *ws.Hub
	taxRate     float64
}

func NewOrderService(pRepo repository.ProductRepository, oRepo repository.OrderRepository, uRepo repository.UserRepository, db *gorm.DB, hub *ws.Hub, taxRate float64) OrderService {
	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}
	return &orderService{
		productRepo: pRepo,
		orderRepo:   oRepo,
		userRepo:    uRepo,
		db:          db,
		wsHub:       hub,
		taxRate:     taxRate,
	}
}

// PlaceOrder validates every cart line, then commits order + items + stock
// decrements + streak bump in one transaction. All-or-nothing: any failing
// line rolls the whole checkout back with no visible side effect.
func (s *orderService) PlaceOrder(userID uuid.UUID, lines []model.CartLine) (*OrderSummary, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// 1. Validasi Input per line
	for _, line := range lines {
		if errs := validator.ValidateStruct(&line); len(errs) > 0 {
			firstErr := errs[0]
			return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
		}
	}

	order := &model.Order{UserID: userID}

	// Gunakan Transaction Block (Atomic Operation)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var totalAmount, totalProfit float64

		// A. Validasi stok dan hitung totals (read-only pass)
		for _, line := range lines {
			var product model.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: line.ProductID}
				}
				return err
			}

			if product.Stock < line.Quantity {
				return &InsufficientStockError{
					ProductID: product.ID,
					Name:      product.Name,
					Available: product.Stock,
					Requested: line.Quantity,
				}
			}

			totalAmount += product.SellingPrice * float64(line.Quantity)
			totalProfit += product.ProfitPerItem() * float64(line.Quantity)

			// Snapshot harga saat order, bukan live reference
			order.Items = append(order.Items, model.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.SellingPrice,
			})
		}

		// B. Apply tax surcharge ke total
		order.TotalAmount = totalAmount * (1 + s.taxRate)
		order.TotalProfit = totalProfit

		// C. Simpan order + items
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}

		// D. Decrement stok secara kondisional. The guard re-checks stock at
		// commit time, so two concurrent checkouts can never drive it negative
		// even though both passed the read-only validation above.
		for _, line := range lines {
			ok, err := s.productRepo.DecrementStock(tx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				var product model.Product
				tx.First(&product, "id = ?", line.ProductID)
				return &InsufficientStockError{
					ProductID: line.ProductID,
					Name:      product.Name,
					Available: product.Stock,
					Requested: line.Quantity,
				}
			}
		}

		// E. Update user streak
		return s.userRepo.IncrementStreak(tx, userID)
	})

	if err != nil {
		return nil, err
	}

	// Broadcast ke admin dashboard, hanya setelah commit sukses
	go s.wsHub.Publish(map[string]interface{}{
		"type":      "new_order",
		"order_id":  order.ID,
		"amount":    order.TotalAmount,
		"timestamp": order.CreatedAt.Format("15:04:05"),
	})

	return &OrderSummary{OrderID: order.ID, TotalAmount: order.TotalAmount}, nil
}

func (s *orderService) OrdersForUser(userID uuid.UUID) ([]model.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

func (s *orderService) GetOrder(id uuid.UUID) (*model.Order, error) {
	return s.orderRepo.FindByID(id)
}
