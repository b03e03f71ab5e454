package service

import (
	"context"

	"productcatalog/catalog-service/internal/app/catalog/entity"
)

type CategoryServiceInterface interface {
	GetAll(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uint) (entity.Category, error)
	Save(ctx context.Context, category entity.Category) (entity.Category, error)
	Delete(ctx context.Context, id uint) error
}

type ProductServiceInterface interface {
	GetAll(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id uint) (entity.Product, error)
	Create(ctx context.Context, input ProductInput, categoryID uint) (entity.Product, error)
	Update(ctx context.Context, id uint, input ProductInput, categoryID *uint) (entity.Product, error)
	Delete(ctx context.Context, id uint) error
	GetByCategoryID(ctx context.Context, categoryID uint) ([]entity.Product, error)
}
