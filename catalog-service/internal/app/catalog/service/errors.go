package service

import (
	"errors"
	"fmt"
)

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	// ErrInvalidCategoryReference - товар ссылается на несуществующую категорию
	ErrInvalidCategoryReference = errors.New("invalid category reference")
	// ErrDuplicateName - имя категории или товара уже занято
	ErrDuplicateName = errors.New("name already exists")
)

func invalidCategoryReference(categoryID uint) error {
	return fmt.Errorf("%w: category %d does not exist", ErrInvalidCategoryReference, categoryID)
}
