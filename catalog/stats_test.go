package catalog

import (
	"testing"
	"time"

	"github.com/barinistanbul/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	s := New(Options{})
	_, err := s.AdjustStock("3", -20)
	require.NoError(t, err)

	orders := []models.Order{
		{ID: "a", Date: "2026-03-10T09:00:00Z", Total: 378000, ItemCount: 2,
			Items: []models.OrderItem{{ProductID: "1", ProductName: "Medina", Quantity: 2, Price: 189000}}},
		{ID: "b", Date: "2026-03-08T09:00:00.000Z", Total: 145000, ItemCount: 1,
			Items: []models.OrderItem{{ProductID: "2", ProductName: "Anatolia", Quantity: 1, Price: 145000}}},
		{ID: "c", Date: "2026-02-01T09:00:00Z", Total: 135000, ItemCount: 1,
			Items: []models.OrderItem{{ProductID: "gone", ProductName: "Deleted", Quantity: 1, Price: 135000}}},
	}
	for _, o := range orders {
		_, err := s.AddOrder(o)
		require.NoError(t, err)
	}

	st := s.Stats(now)

	assert.Equal(t, 6, st.TotalProducts)
	assert.Equal(t, 50+35+5+40+60+30, st.TotalStock)
	require.Len(t, st.LowStock, 1)
	assert.Equal(t, "3", st.LowStock[0].ID)
	assert.Equal(t, 5, st.CategoriesUsed)
	assert.Equal(t, 3, st.TotalOrders)
	assert.Equal(t, int64(658000), st.Revenue)
	assert.Equal(t, 4, st.ItemsSold)

	require.Len(t, st.Last7Days, 7)
	assert.Equal(t, "2026-03-04", st.Last7Days[0].Date)
	assert.Equal(t, "2026-03-10", st.Last7Days[6].Date)
	assert.Equal(t, models.DailySales{Date: "2026-03-10", Orders: 1, Revenue: 378000, Items: 2}, st.Last7Days[6])
	assert.Equal(t, 1, st.Last7Days[4].Orders)
	assert.Equal(t, 0, st.Last7Days[5].Orders)

	require.Len(t, st.TopProducts, 3)
	assert.Equal(t, "1", st.TopProducts[0].ProductID)
	assert.Equal(t, 2, st.TopProducts[0].Quantity)
	assert.Equal(t, "Deleted", st.TopProducts[2].ProductName)
}

func TestStats_InventoryValue(t *testing.T) {
	s := emptyStore(t)
	p := newProduct("x", "Silk", "Cream")
	p.Price, p.Stock = 1000, 3
	_, err := s.AddProduct(p)
	require.NoError(t, err)

	st := s.Stats(time.Now())

	assert.Equal(t, int64(3000), st.InventoryValue)
	assert.Empty(t, st.TopProducts)
	assert.Len(t, st.Last7Days, 7)
}
