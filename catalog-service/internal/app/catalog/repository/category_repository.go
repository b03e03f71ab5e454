package repository

import (
	"context"
	"errors"
	"fmt"

	"productcatalog/catalog-service/internal/app/catalog/entity"
	"productcatalog/pkg/metrics"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository создает новый репозиторий категорий
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// FindAll получает все категории, упорядоченные по ID
func (r *categoryRepository) FindAll(ctx context.Context) (categories []entity.Category, err error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "categories")
	defer func() { timer.Done(err) }()

	categories = make([]entity.Category, 0)
	if err = r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

// FindByID получает категорию по ID
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (category entity.Category, err error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "categories")
	defer func() { timer.Done(ignoreNotFound(err)) }()

	err = r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Category{}, ErrCategoryNotFound
		}
		return entity.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// Save создает или полностью перезаписывает категорию
// Уникальность имени проверяется UNIQUE constraint
// Отсутствующая категория при перезаписи - ErrCategoryNotFound
func (r *categoryRepository) Save(ctx context.Context, category *entity.Category) (err error) {
	op := metrics.DbOpInsert
	if category.ID != 0 {
		op = metrics.DbOpUpdate
	}
	timer := metrics.NewDbTimer(serviceName, op, "categories")
	defer func() { timer.Done(ignoreNotFound(err)) }()

	db := r.db.WithContext(ctx).Omit("Products")
	if category.ID == 0 {
		if err = db.Create(category).Error; err != nil {
			return fmt.Errorf("failed to save category: %w", translateError(err))
		}
		return nil
	}

	result := db.Model(category).Select("*").Updates(category)
	if result.Error != nil {
		return fmt.Errorf("failed to save category: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// DeleteByID удаляет категорию и все её товары в одной транзакции
// ON DELETE CASCADE на products.category_id дублирует это на уровне БД
// Отсутствующая категория не считается ошибкой
func (r *categoryRepository) DeleteByID(ctx context.Context, id uint) (deleted int64, err error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpDelete, "categories")
	defer func() { timer.Done(err) }()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete category products: %w", err)
		}

		result := tx.Delete(&entity.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrProductNotFound) {
		return nil
	}
	return err
}
