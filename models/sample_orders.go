package models

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// SampleOrders builds a demo order history over the 30 days ending at now: one to three orders a
// day, each with one to three lines of one to three units of a seed product, placed between 08:00
// and 21:59 local time. Orders are returned newest day first.
func SampleOrders(now time.Time, rng *rand.Rand) []Order {
	products := DefaultProducts()
	orders := make([]Order, 0, 60)

	for day := 0; day < 30; day++ {
		date := now.AddDate(0, 0, -day)
		orderCount := rng.IntN(3) + 1

		for i := 0; i < orderCount; i++ {
			numItems := rng.IntN(3) + 1
			order := Order{
				ID:    fmt.Sprintf("sample-%d-%d", day, i),
				Items: make([]OrderItem, 0, numItems),
			}
			for j := 0; j < numItems; j++ {
				p := products[rng.IntN(len(products))]
				qty := rng.IntN(3) + 1
				order.Items = append(order.Items, OrderItem{
					ProductID:   p.ID,
					ProductName: p.Name,
					Quantity:    qty,
					Price:       p.Price,
				})
				order.Total += p.Price * int64(qty)
				order.ItemCount += qty
			}

			placed := time.Date(date.Year(), date.Month(), date.Day(), rng.IntN(14)+8, rng.IntN(60), 0, 0, date.Location())
			order.Date = placed.UTC().Format(time.RFC3339Nano)
			orders = append(orders, order)
		}
	}

	return orders
}
