package repository

import (
	"context"
	"errors"
	"fmt"

	"productcatalog/catalog-service/internal/app/catalog/entity"
	"productcatalog/pkg/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository создает новый репозиторий товаров
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// FindAll получает все товары с категориями
func (r *productRepository) FindAll(ctx context.Context) (products []entity.Product, err error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "products")
	defer func() { timer.Done(err) }()

	products = make([]entity.Product, 0)
	if err = r.db.WithContext(ctx).Preload("Category").Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return products, nil
}

// FindByID получает товар по ID вместе с категорией
func (r *productRepository) FindByID(ctx context.Context, id uint) (product entity.Product, err error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "products")
	defer func() { timer.Done(ignoreNotFound(err)) }()

	err = r.db.WithContext(ctx).Preload("Category").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Product{}, ErrProductNotFound
		}
		return entity.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

// FindByCategoryID получает все товары категории
func (r *productRepository) FindByCategoryID(ctx context.Context, categoryID uint) (products []entity.Product, err error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "products")
	defer func() { timer.Done(err) }()

	products = make([]entity.Product, 0)
	err = r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}

	return products, nil
}

// Save создает товар при ID == 0, иначе перезаписывает все его поля
// Связанная категория не сохраняется: пишется только category_id
// Отсутствующий товар при перезаписи - ErrProductNotFound
func (r *productRepository) Save(ctx context.Context, product *entity.Product) (err error) {
	op := metrics.DbOpInsert
	if product.ID != 0 {
		op = metrics.DbOpUpdate
	}
	timer := metrics.NewDbTimer(serviceName, op, "products")
	defer func() { timer.Done(ignoreNotFound(err)) }()

	if product.Category.ID != 0 {
		product.CategoryID = product.Category.ID
	}

	db := r.db.WithContext(ctx).Omit(clause.Associations)
	if product.ID == 0 {
		if err = db.Create(product).Error; err != nil {
			return fmt.Errorf("failed to save product: %w", translateError(err))
		}
		return nil
	}

	// Select("*") пишет и нулевые значения; удаленный товар не создается заново
	result := db.Model(product).Select("*").Updates(product)
	if result.Error != nil {
		return fmt.Errorf("failed to save product: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DeleteByID удаляет товар; отсутствующий ID не считается ошибкой
func (r *productRepository) DeleteByID(ctx context.Context, id uint) (deleted int64, err error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpDelete, "products")
	defer func() { timer.Done(err) }()

	result := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete product: %w", result.Error)
	}

	return result.RowsAffected, nil
}
