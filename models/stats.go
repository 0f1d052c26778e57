package models

// DailySales is one day bucket of the dashboard chart. Date is YYYY-MM-DD in UTC.
type DailySales struct {
	Date    string `json:"date"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
	Items   int    `json:"items"`
}

type ProductSales struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Revenue     int64  `json:"revenue"`
}

// DashboardStats is the admin overview computed from a catalog snapshot.
type DashboardStats struct {
	TotalProducts  int            `json:"totalProducts"`
	TotalStock     int            `json:"totalStock"`
	InventoryValue int64          `json:"inventoryValue"`
	LowStock       []Product      `json:"lowStock"`
	CategoriesUsed int            `json:"categoriesUsed"`
	TotalOrders    int            `json:"totalOrders"`
	Revenue        int64          `json:"revenue"`
	ItemsSold      int            `json:"itemsSold"`
	Last7Days      []DailySales   `json:"last7Days"`
	TopProducts    []ProductSales `json:"topProducts"`
}
