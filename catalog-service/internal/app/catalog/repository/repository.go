package repository

import (
	"context"
	"errors"

	"productcatalog/catalog-service/internal/app/catalog/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

const serviceName = "catalog-service"

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrForeignKey       = errors.New("foreign key violation")
)

// CategoryRepository доступ к таблице categories
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id uint) (entity.Category, error)
	// Save вставляет категорию при ID == 0, иначе перезаписывает строку целиком
	// Перезапись отсутствующей строки - ErrCategoryNotFound
	Save(ctx context.Context, category *entity.Category) error
	// DeleteByID удаляет категорию вместе с её товарами и возвращает число удалённых категорий
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

// ProductRepository доступ к таблице products
// Все методы чтения возвращают товары с загруженной категорией
type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id uint) (entity.Product, error)
	FindByCategoryID(ctx context.Context, categoryID uint) ([]entity.Product, error)
	// Save вставляет товар при ID == 0; перезапись отсутствующего товара - ErrProductNotFound
	Save(ctx context.Context, product *entity.Product) error
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

// translateError переводит ошибки ограничений PostgreSQL в ошибки репозитория
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return errors.Join(ErrDuplicateKey, err)
		case "23503": // foreign_key_violation
			return errors.Join(ErrForeignKey, err)
		}
	}
	return err
}
