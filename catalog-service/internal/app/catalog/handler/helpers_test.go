package handler

import (
	"testing"

	"productcatalog/catalog-service/internal/app/catalog/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func productRequest(name, price string, stock int) entity.CreateProductRequest {
	p := decimal.RequireFromString(price)
	categoryID := uint(1)
	return entity.CreateProductRequest{
		Name:        name,
		Description: "desc",
		Price:       &p,
		Stock:       &stock,
		CategoryID:  &categoryID,
	}
}

func TestNewValidator_ProductLimits(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name    string
		request entity.CreateProductRequest
		valid   bool
	}{
		{name: "whole price", request: productRequest("Laptop", "800", 1), valid: true},
		{name: "two decimals", request: productRequest("Laptop", "800.05", 1), valid: true},
		{name: "column maximum", request: productRequest("Laptop", "99999999.99", 2147483647), valid: true},
		{name: "zero price and stock", request: productRequest("Laptop", "0", 0), valid: true},
		{name: "three decimals", request: productRequest("Laptop", "800.005", 1)},
		{name: "price overflow", request: productRequest("Laptop", "12345678901.5", 1)},
		{name: "stock overflow", request: productRequest("Laptop", "1", 2147483648)},
		{name: "blank name", request: productRequest(" \t\n", "1", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.request)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewValidator_BlankCategoryName(t *testing.T) {
	v := newValidator()

	assert.Error(t, v.Struct(entity.CategoryRequest{Name: "   "}))
	assert.NoError(t, v.Struct(entity.CategoryRequest{Name: " Garden "}))
}
