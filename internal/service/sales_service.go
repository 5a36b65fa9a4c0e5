package service

import (
	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/repository"
)

const lowStockThreshold = 10

// SalesOverview untuk admin panel stats
type SalesOverview struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalProfit   float64 `json:"total_profit"`
	TotalProducts int64   `json:"total_products"`
	LowStockCount int64   `json:"low_stock_count"`
}

type SalesService interface {
	Overview() (*SalesOverview, error)
	RecentOrders(limit int) ([]model.Order, error)
}

type salesService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewSalesService(oRepo repository.OrderRepository, pRepo repository.ProductRepository) SalesService {
	return &salesService{orderRepo: oRepo, productRepo: pRepo}
}

func (s *salesService) Overview() (*SalesOverview, error) {
	summary, err := s.orderRepo.GetSalesSummary()
	if err != nil {
		return nil, err
	}

	productCount, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.CountLowStock(lowStockThreshold)
	if err != nil {
		return nil, err
	}

	return &SalesOverview{
		TotalOrders:   summary.TotalOrders,
		TotalRevenue:  summary.TotalRevenue,
		TotalProfit:   summary.TotalProfit,
		TotalProducts: productCount,
		LowStockCount: lowStock,
	}, nil
}

func (s *salesService) RecentOrders(limit int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.orderRepo.FindRecent(limit)
}
