package service

import (
	"context"
	"errors"
	"fmt"

	"productcatalog/catalog-service/internal/app/catalog/entity"
	"productcatalog/catalog-service/internal/app/catalog/repository"
	"productcatalog/catalog-service/internal/app/catalog/util"
	"productcatalog/pkg/metrics"
)

// CategoryService - операции над категориями, без собственных бизнес-правил
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	publisher    util.MessagePublisher
}

func NewCategoryService(categoryRepo repository.CategoryRepository, publisher util.MessagePublisher) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uint) (entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return entity.Category{}, ErrCategoryNotFound
		}
		return entity.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// Save создает категорию (ID == 0) или перезаписывает существующую
func (s *CategoryService) Save(ctx context.Context, category entity.Category) (entity.Category, error) {
	if err := s.categoryRepo.Save(ctx, &category); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return entity.Category{}, fmt.Errorf("%w: category %q", ErrDuplicateName, category.Name)
		}
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return entity.Category{}, ErrCategoryNotFound
		}
		return entity.Category{}, fmt.Errorf("failed to save category: %w", err)
	}
	return category, nil
}

// Delete удаляет категорию вместе с её товарами
// Существование не проверяется: удаление отсутствующей категории - не ошибка
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.categoryRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if deleted > 0 {
		metrics.CatalogCategoriesDeleted.Inc()
		publishEvent(ctx, s.publisher, entity.CatalogEvent{
			EventType: entity.EventCategoryDeleted,
			EntityID:  id,
		})
	}

	return nil
}
