package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("invalid input")
	ErrProductNotFound    = errors.New("product not found")
	ErrDuplicateProductID = errors.New("product id already exists")
	ErrBlankName          = errors.New("name cannot be empty")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrColorNotFound      = errors.New("color not found")
	ErrDuplicateColor     = errors.New("color already exists")
	ErrInvalidWANumber    = errors.New("whatsapp number must contain digits only")
)

// ReferenceError is returned when a category or color cannot be removed because products
// still point at it.
type ReferenceError struct {
	Kind  string
	Name  string
	Count int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q is used by %d product(s)", e.Kind, e.Name, e.Count)
}

// IsReferenceError reports whether err carries a *ReferenceError and returns it.
func IsReferenceError(err error) (*ReferenceError, bool) {
	var re *ReferenceError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
