package models

// CategoryUsage is a category name together with the number of products filed under it.
type CategoryUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ColorOption is a named swatch products can reference by name.
type ColorOption struct {
	Name string `json:"name" validate:"required"`
	Hex  string `json:"hex" validate:"required,hexcolor"`
}

type ColorUsage struct {
	ColorOption
	Count int `json:"count"`
}
