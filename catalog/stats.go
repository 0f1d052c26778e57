package catalog

import (
	"slices"
	"strings"
	"time"

	"github.com/barinistanbul/storefront/models"
)

const (
	LowStockThreshold = 10
	topProductsLimit  = 6
	chartDays         = 7
)

// Stats computes the admin dashboard figures. Day buckets are UTC dates ending at now, oldest
// first; an order falls in the bucket matching the date part of its timestamp.
func (s *Store) Stats(now time.Time) models.DashboardStats {
	d := s.Snapshot()

	st := models.DashboardStats{
		TotalProducts: len(d.Products),
		LowStock:      make([]models.Product, 0),
		TotalOrders:   len(d.Orders),
		Last7Days:     make([]models.DailySales, 0, chartDays),
		TopProducts:   make([]models.ProductSales, 0, topProductsLimit),
	}

	used := make(map[string]struct{})
	for _, p := range d.Products {
		st.TotalStock += p.Stock
		st.InventoryValue += p.Price * int64(p.Stock)
		if p.Stock < LowStockThreshold {
			st.LowStock = append(st.LowStock, p)
		}
		used[p.Category] = struct{}{}
	}
	st.CategoriesUsed = len(used)

	byDay := make(map[string]*models.DailySales, chartDays)
	for i := chartDays - 1; i >= 0; i-- {
		date := now.UTC().AddDate(0, 0, -i).Format(time.DateOnly)
		st.Last7Days = append(st.Last7Days, models.DailySales{Date: date})
	}
	for i := range st.Last7Days {
		byDay[st.Last7Days[i].Date] = &st.Last7Days[i]
	}

	sales := make(map[string]*models.ProductSales)
	order := make([]string, 0)
	for _, o := range d.Orders {
		st.Revenue += o.Total
		st.ItemsSold += o.ItemCount

		day, _, _ := strings.Cut(o.Date, "T")
		if b, ok := byDay[day]; ok {
			b.Orders++
			b.Revenue += o.Total
			b.Items += o.ItemCount
		}

		for _, it := range o.Items {
			ps, ok := sales[it.ProductID]
			if !ok {
				ps = &models.ProductSales{ProductID: it.ProductID, ProductName: it.ProductName}
				sales[it.ProductID] = ps
				order = append(order, it.ProductID)
			}
			ps.Quantity += it.Quantity
			ps.Revenue += it.Price * int64(it.Quantity)
		}
	}

	ranked := make([]models.ProductSales, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *sales[id])
	}
	slices.SortStableFunc(ranked, func(a, b models.ProductSales) int { return b.Quantity - a.Quantity })
	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}
	st.TopProducts = append(st.TopProducts, ranked...)

	return st
}
