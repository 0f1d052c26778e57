package models

// OrderItem keeps the product name and unit price as they were when the order was placed,
// so deleting or repricing the product later does not change the order.
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

// Order is an append-only record of a checkout. Date is an ISO-8601 timestamp.
type Order struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Items     []OrderItem `json:"items"`
	Total     int64       `json:"total"`
	ItemCount int         `json:"itemCount"`
}
