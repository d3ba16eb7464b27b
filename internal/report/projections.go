package report

import (
	"sort"
	"time"

	"github.com/safar/go-shop-admin/internal/models"
	"github.com/shopspring/decimal"
)

// OrderDate resolves an order's wire date string, which arrives either
// as RFC3339 or as a plain calendar date. CreatedAt is the fallback.
func OrderDate(o models.Order) time.Time {
	if t, err := time.Parse(time.RFC3339, o.Date); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", o.Date); err == nil {
		return t
	}
	return o.CreatedAt
}

// MonthlyCounts projects orders of one year into a twelve-entry count
// series, January first.
func MonthlyCounts(orders []models.Order, year int) [12]int {
	var counts [12]int
	for _, o := range orders {
		date := OrderDate(o)
		if date.Year() == year {
			counts[date.Month()-1]++
		}
	}
	return counts
}

// MonthlyRevenue projects order totals of one year into a twelve-entry
// revenue series.
func MonthlyRevenue(orders []models.Order, year int) [12]decimal.Decimal {
	var revenue [12]decimal.Decimal
	for _, o := range orders {
		date := OrderDate(o)
		if date.Year() == year {
			m := date.Month() - 1
			revenue[m] = revenue[m].Add(o.Total)
		}
	}
	return revenue
}

// StatusDistribution counts orders per status.
func StatusDistribution(orders []models.Order) map[models.OrderStatus]int {
	dist := make(map[models.OrderStatus]int)
	for _, o := range orders {
		dist[o.Status]++
	}
	return dist
}

// Years lists the distinct order years in ascending order, for chart
// axes and per-year series.
func Years(orders []models.Order) []int {
	seen := make(map[int]bool)
	for _, o := range orders {
		seen[OrderDate(o).Year()] = true
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// TopProducts aggregates item quantity and revenue per product across
// the given orders and returns the n best sellers by quantity.
func TopProducts(orders []models.Order, n int) []TopProduct {
	type agg struct {
		quantity int
		revenue  decimal.Decimal
	}
	byName := make(map[string]*agg)

	for _, o := range orders {
		for _, item := range o.Items {
			a, ok := byName[item.Product.Name]
			if !ok {
				a = &agg{}
				byName[item.Product.Name] = a
			}
			a.quantity += item.Quantity
			a.revenue = a.revenue.Add(item.Subtotal)
		}
	}

	top := make([]TopProduct, 0, len(byName))
	for name, a := range byName {
		top = append(top, TopProduct{Name: name, Quantity: a.quantity, Revenue: a.revenue})
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].Name < top[j].Name
	})

	if n > 0 && len(top) > n {
		top = top[:n]
	}
	return top
}
