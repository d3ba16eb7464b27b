// Package report consumes already-fetched, validated collections and
// precomputed server aggregates, projecting them into chart series and
// printable documents. Nothing here mutates a canonical collection.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/models"
	"github.com/shopspring/decimal"
)

// DashboardStats is the precomputed counter block for the dashboard
// screen.
type DashboardStats struct {
	TotalCategories       int `json:"totalCategories"`
	TotalBrands           int `json:"totalBrands"`
	TotalActiveProducts   int `json:"totalActiveProducts"`
	TotalInactiveProducts int `json:"totalInactiveProducts"`
	TotalProducts         int `json:"totalProducts"`
	TotalUsers            int `json:"totalUsers"`
	TotalPendingOrders    int `json:"totalPendingOrders"`
	TotalConfirmedOrders  int `json:"totalConfirmedOrders"`
	TotalShippedOrders    int `json:"totalShippedOrders"`
	TotalDeliveredOrders  int `json:"totalDeliveredOrders"`
	TotalCancelledOrders  int `json:"totalCancelledOrders"`
}

type TopProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type RecentOrder struct {
	ID           int64           `json:"id"`
	Date         time.Time       `json:"date"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customerName"`
}

type YearTotals struct {
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// OrdersReport is the precomputed order aggregate. Monthly series are
// keyed by year, twelve entries per year.
type OrdersReport struct {
	MonthlyOrders                  map[int][]int             `json:"monthlyOrders"`
	MonthlyRevenue                 map[int][]decimal.Decimal `json:"monthlyRevenue"`
	TotalOrders                    int                       `json:"totalOrders"`
	TotalRevenue                   decimal.Decimal           `json:"totalRevenue"`
	AverageOrderValue              decimal.Decimal           `json:"averageOrderValue"`
	TopProducts                    []TopProduct              `json:"topProducts"`
	OrderStatusDistribution        map[string]int            `json:"orderStatusDistribution"`
	ConfirmedCancelledDistribution map[string]int            `json:"confirmedCancelledDistribution"`
	RecentOrders                   []RecentOrder             `json:"recentOrders"`
	YearlyComparison               map[int]YearTotals        `json:"yearlyComparison"`
}

type YearlyReport map[int]YearTotals

// Service fetches precomputed aggregates. These are the only network
// calls report consumers make.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Stats(ctx context.Context) (*DashboardStats, error) {
	raw, err := s.client.Call(ctx, "get", "dashboard/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("get dashboard stats: %w", err)
	}

	stats, err := models.Decode[DashboardStats](raw)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Service) OrdersReport(ctx context.Context) (*OrdersReport, error) {
	raw, err := s.client.Call(ctx, "get", "dashboard/orders-report", nil)
	if err != nil {
		return nil, fmt.Errorf("get orders report: %w", err)
	}

	rep, err := models.Decode[OrdersReport](raw)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (s *Service) YearlyReport(ctx context.Context) (YearlyReport, error) {
	raw, err := s.client.Call(ctx, "get", "dashboard/yearly-report", nil)
	if err != nil {
		return nil, fmt.Errorf("get yearly report: %w", err)
	}

	rep, err := models.Decode[YearlyReport](raw)
	if err != nil {
		return nil, err
	}
	return rep, nil
}
