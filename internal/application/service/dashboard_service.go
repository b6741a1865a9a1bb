package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/domain/repository"
)

// expiryWindow is how far ahead the dashboard looks for expiring stock.
const expiryWindow = 90 * 24 * time.Hour

// DashboardStats summarizes the day for the dashboard screen
type DashboardStats struct {
	TodaySales    decimal.Decimal `json:"today_sales"`
	TodayInvoices int64           `json:"today_invoices"`
	ProductCount  int64           `json:"product_count"`
	ExpiringSoon  int64           `json:"expiring_soon"`
}

// DashboardService aggregates stats for the dashboard screen
type DashboardService struct {
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(invoiceRepo repository.InvoiceRepository, productRepo repository.ProductRepository) *DashboardService {
	return &DashboardService{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
	}
}

// GetStats returns today's sales figures plus catalogue health counters.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sales, count, err := s.invoiceRepo.SalesSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	expiring, err := s.productRepo.CountExpiringBefore(ctx, now.Add(expiryWindow))
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodaySales:    sales,
		TodayInvoices: count,
		ProductCount:  productCount,
		ExpiringSoon:  expiring,
	}, nil
}
