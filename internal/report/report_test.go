package report

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/config"
	"github.com/safar/go-shop-admin/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id int64, date string, status models.OrderStatus, total string) models.Order {
	return models.Order{
		ID:     id,
		Date:   date,
		Status: status,
		Total:  decimal.RequireFromString(total),
		User:   models.User{Name: "Aye Chan", Email: "aye@example.com"},
	}
}

func TestOrderDateResolution(t *testing.T) {
	rfc := order(1, "2025-03-01T09:30:00Z", models.OrderStatusConfirmed, "10")
	assert.Equal(t, time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC), OrderDate(rfc))

	plain := order(2, "2025-03-01", models.OrderStatusConfirmed, "10")
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), OrderDate(plain))

	fallback := order(3, "not a date", models.OrderStatusConfirmed, "10")
	fallback.CreatedAt = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fallback.CreatedAt, OrderDate(fallback))
}

func TestMonthlyProjections(t *testing.T) {
	orders := []models.Order{
		order(1, "2025-01-10", models.OrderStatusConfirmed, "100"),
		order(2, "2025-01-20", models.OrderStatusPending, "50"),
		order(3, "2025-03-05", models.OrderStatusConfirmed, "75.50"),
		order(4, "2024-01-10", models.OrderStatusConfirmed, "999"),
	}

	counts := MonthlyCounts(orders, 2025)
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 0, counts[1])
	assert.Equal(t, 1, counts[2])

	revenue := MonthlyRevenue(orders, 2025)
	assert.True(t, revenue[0].Equal(decimal.RequireFromString("150")))
	assert.True(t, revenue[2].Equal(decimal.RequireFromString("75.50")))
	assert.True(t, revenue[5].IsZero())
}

func TestStatusDistributionAndYears(t *testing.T) {
	orders := []models.Order{
		order(1, "2025-01-10", models.OrderStatusConfirmed, "1"),
		order(2, "2025-02-10", models.OrderStatusConfirmed, "1"),
		order(3, "2023-02-10", models.OrderStatusCancelled, "1"),
	}

	dist := StatusDistribution(orders)
	assert.Equal(t, 2, dist[models.OrderStatusConfirmed])
	assert.Equal(t, 1, dist[models.OrderStatusCancelled])

	assert.Equal(t, []int{2023, 2025}, Years(orders))
}

func TestTopProductsRanking(t *testing.T) {
	item := func(name string, qty int, subtotal string) models.OrderItem {
		return models.OrderItem{
			Quantity: qty,
			Subtotal: decimal.RequireFromString(subtotal),
			Product:  models.Product{Name: name},
		}
	}

	o1 := order(1, "2025-01-10", models.OrderStatusConfirmed, "0")
	o1.Items = []models.OrderItem{item("Air Max", 2, "240"), item("Gazelle", 5, "400")}
	o2 := order(2, "2025-01-11", models.OrderStatusConfirmed, "0")
	o2.Items = []models.OrderItem{item("Air Max", 3, "360"), item("Samba", 5, "350")}

	top := TopProducts([]models.Order{o1, o2}, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Air Max", top[0].Name)
	assert.Equal(t, 5, top[0].Quantity)
	assert.True(t, top[0].Revenue.Equal(decimal.RequireFromString("600")))
	// Ties break by name.
	assert.Equal(t, "Gazelle", top[1].Name)
}

func TestBuildSalesReportTotals(t *testing.T) {
	sales := []models.Order{
		order(1, "2025-01-10", models.OrderStatusConfirmed, "100.50"),
		order(2, "2025-01-11", models.OrderStatusConfirmed, "49.50"),
	}

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	doc := BuildSalesReport(sales, now)

	assert.Equal(t, now, doc.GeneratedAt)
	assert.Equal(t, 2, doc.TotalSales)
	assert.True(t, doc.TotalAmount.Equal(decimal.RequireFromString("150")))
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Aye Chan", doc.Rows[0].Customer)
}

func TestWriteSalesCSV(t *testing.T) {
	sales := []models.Order{order(1, "2025-01-10", models.OrderStatusConfirmed, "100.50")}

	var buf bytes.Buffer
	require.NoError(t, WriteSalesCSV(&buf, sales))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Customer Name,Email,Date,Total,Items Count", lines[0])
	assert.Equal(t, "1,Aye Chan,aye@example.com,2025-01-10,100.5,0", lines[1])
}

func TestRenderInvoice(t *testing.T) {
	sale := order(42, "2025-01-10", models.OrderStatusConfirmed, "590")
	sale.Phone = "0912345678"
	sale.Address = "Yangon"
	sale.Items = []models.OrderItem{
		{
			Quantity: 2,
			Subtotal: decimal.RequireFromString("590"),
			Product:  models.Product{Name: "Air Max", Price: decimal.RequireFromString("295")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderInvoice(&buf, sale))

	out := buf.String()
	assert.Contains(t, out, "INVOICE #42")
	assert.Contains(t, out, "Aye Chan <aye@example.com>")
	assert.Contains(t, out, "Air Max  x2 @ 295 MMK  =  590 MMK")
	assert.Contains(t, out, "Total: 590 MMK")
}

func testService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(api.NewClient(&config.API{BaseURL: server.URL, Timeout: 5 * time.Second}))
}

func TestServiceStats(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/stats", r.URL.Path)
		fmt.Fprint(w, `{"totalProducts":12,"totalUsers":4,"totalPendingOrders":2}`)
	})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalProducts)
	assert.Equal(t, 4, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalPendingOrders)
}

func TestServiceYearlyReport(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/yearly-report", r.URL.Path)
		fmt.Fprint(w, `{"2024":{"orders":10,"revenue":"1000"},"2025":{"orders":3,"revenue":"250.50"}}`)
	})

	rep, err := svc.YearlyReport(context.Background())
	require.NoError(t, err)
	require.Len(t, rep, 2)
	assert.Equal(t, 10, rep[2024].Orders)
	assert.True(t, rep[2025].Revenue.Equal(decimal.RequireFromString("250.50")))
}

func TestServiceOrdersReport(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/orders-report", r.URL.Path)
		fmt.Fprint(w, `{
			"monthlyOrders": {"2025": [1,0,2,0,0,0,0,0,0,0,0,0]},
			"totalOrders": 3,
			"totalRevenue": "300",
			"averageOrderValue": "100",
			"topProducts": [{"name":"Air Max","quantity":5,"revenue":"600"}],
			"orderStatusDistribution": {"confirmed": 3}
		}`)
	})

	rep, err := svc.OrdersReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, rep.TotalOrders)
	assert.Equal(t, []int{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0}, rep.MonthlyOrders[2025])
	require.Len(t, rep.TopProducts, 1)
	assert.Equal(t, "Air Max", rep.TopProducts[0].Name)
	assert.Equal(t, 3, rep.OrderStatusDistribution["confirmed"])
}
