package dto

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

type RenameCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

type ColorDTO struct {
	Name string `json:"name" binding:"required"`
	Hex  string `json:"hex" binding:"required,hexcolor"`
}
