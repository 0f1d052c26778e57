package dto

type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}
