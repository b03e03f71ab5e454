package service

import (
	"context"
	"errors"
	"fmt"

	"productcatalog/catalog-service/internal/app/catalog/entity"
	"productcatalog/catalog-service/internal/app/catalog/repository"
	"productcatalog/catalog-service/internal/app/catalog/util"
	"productcatalog/pkg/metrics"

	"github.com/shopspring/decimal"
)

// ProductInput значения полей товара при создании и обновлении
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// ProductService - бизнес-логика товаров
// Каждый товар обязан ссылаться на существующую категорию
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	publisher    util.MessagePublisher
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	publisher util.MessagePublisher,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

func (s *ProductService) GetAll(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return entity.Product{}, ErrProductNotFound
		}
		return entity.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// Create создает товар в категории categoryID
// Несуществующая категория - ErrInvalidCategoryReference, товар не сохраняется
func (s *ProductService) Create(ctx context.Context, input ProductInput, categoryID uint) (entity.Product, error) {
	category, err := s.resolveCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, ErrInvalidCategoryReference) {
			metrics.CatalogInvalidReferences.WithLabelValues("create").Inc()
		}
		return entity.Product{}, err
	}

	// ID назначает БД
	product := entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  category.ID,
		Category:    category,
	}

	if err := s.save(ctx, &product); err != nil {
		return entity.Product{}, err
	}

	metrics.CatalogProductsCreated.Inc()
	publishEvent(ctx, s.publisher, productEvent(entity.EventProductCreated, product))

	return product, nil
}

// Update полностью перезаписывает поля товара
// Категория перечитывается только если передан categoryID, отличный от текущего
func (s *ProductService) Update(ctx context.Context, id uint, input ProductInput, categoryID *uint) (entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return entity.Product{}, ErrProductNotFound
		}
		return entity.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock

	if categoryID != nil && *categoryID != product.CategoryID {
		category, err := s.resolveCategory(ctx, *categoryID)
		if err != nil {
			if errors.Is(err, ErrInvalidCategoryReference) {
				metrics.CatalogInvalidReferences.WithLabelValues("update").Inc()
			}
			return entity.Product{}, err
		}
		product.CategoryID = category.ID
		product.Category = category
	}

	if err := s.save(ctx, &product); err != nil {
		return entity.Product{}, err
	}

	metrics.CatalogProductsUpdated.Inc()
	publishEvent(ctx, s.publisher, productEvent(entity.EventProductUpdated, product))

	return product, nil
}

// Delete удаляет товар без предварительной проверки существования
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.productRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if deleted > 0 {
		metrics.CatalogProductsDeleted.Inc()
		publishEvent(ctx, s.publisher, entity.CatalogEvent{
			EventType: entity.EventProductDeleted,
			EntityID:  id,
		})
	}

	return nil
}

// GetByCategoryID возвращает товары категории
// Для несуществующей категории - пустой список, а не ошибка
func (s *ProductService) GetByCategoryID(ctx context.Context, categoryID uint) ([]entity.Product, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return []entity.Product{}, nil
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	products, err := s.productRepo.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}
	return products, nil
}

func (s *ProductService) resolveCategory(ctx context.Context, categoryID uint) (entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return entity.Category{}, invalidCategoryReference(categoryID)
		}
		return entity.Category{}, fmt.Errorf("failed to verify category: %w", err)
	}
	return category, nil
}

func (s *ProductService) save(ctx context.Context, product *entity.Product) error {
	if err := s.productRepo.Save(ctx, product); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return fmt.Errorf("%w: product %q", ErrDuplicateName, product.Name)
		case errors.Is(err, repository.ErrProductNotFound):
			// товар удалили между чтением и записью
			return ErrProductNotFound
		case errors.Is(err, repository.ErrForeignKey):
			// категорию удалили между проверкой и записью
			return invalidCategoryReference(product.CategoryID)
		}
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}
