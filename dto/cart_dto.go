package dto

type AddCartItemDTO struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}
