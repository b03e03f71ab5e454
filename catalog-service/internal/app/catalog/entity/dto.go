package entity

import "github.com/shopspring/decimal"

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// CreateProductRequest тело POST /api/products
// Указатели отличают "не передано" от нулевого значения: price 0 и stock 0 допустимы
// Пределы price и stock совпадают с колонками NUMERIC(10,2) и INTEGER
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,notblank,max=255"`
	Description string           `json:"description" validate:"required,notblank,max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0,lte=99999999.99,decimals2"`
	Stock       *int             `json:"stock" validate:"required,gte=0,lte=2147483647"`
	CategoryID  *uint            `json:"categoryId" validate:"required,gt=0"`
}

// ProductDetails новые значения полей товара при обновлении
// Обновление полное: каждое поле обязательно
type ProductDetails struct {
	Name        string           `json:"name" validate:"required,notblank,max=255"`
	Description string           `json:"description" validate:"required,notblank,max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0,lte=99999999.99,decimals2"`
	Stock       *int             `json:"stock" validate:"required,gte=0,lte=2147483647"`
}

// UpdateProductRequest тело PUT /api/products/{id}
// categoryId не передан - категория товара не меняется
type UpdateProductRequest struct {
	ProductDetails *ProductDetails `json:"productDetails" validate:"required"`
	CategoryID     *uint           `json:"categoryId" validate:"omitempty,gt=0"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Link - гипермедиа ссылка HAL
type Link struct {
	Href string `json:"href"`
}

// Links - ссылки ресурса по имени отношения (self, products, category...)
type Links map[string]Link

// CategoryResource категория со ссылками
type CategoryResource struct {
	Category
	Links Links `json:"_links"`
}

// ProductResource товар со ссылками
type ProductResource struct {
	Product
	Links Links `json:"_links"`
}

type CategoryCollection struct {
	Embedded struct {
		Categories []CategoryResource `json:"categories"`
	} `json:"_embedded"`
	Links Links `json:"_links"`
}

type ProductCollection struct {
	Embedded struct {
		Products []ProductResource `json:"products"`
	} `json:"_embedded"`
	Links Links `json:"_links"`
}
