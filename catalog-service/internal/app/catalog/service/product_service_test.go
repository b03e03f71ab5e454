package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"productcatalog/catalog-service/internal/app/catalog/entity"
	"productcatalog/catalog-service/internal/app/catalog/repository"
	"productcatalog/catalog-service/internal/app/catalog/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceDeps struct {
	productRepo  *mocks.MockProductRepository
	categoryRepo *mocks.MockCategoryRepository
	publisher    *mocks.MockMessagePublisher
}

func newProductServiceDeps() productServiceDeps {
	return productServiceDeps{
		productRepo:  new(mocks.MockProductRepository),
		categoryRepo: new(mocks.MockCategoryRepository),
		publisher:    new(mocks.MockMessagePublisher),
	}
}

func (d productServiceDeps) service() *ProductService {
	return NewProductService(d.productRepo, d.categoryRepo, d.publisher)
}

func newTestProduct(category entity.Category) entity.Product {
	return entity.Product{
		ID:          10,
		Name:        "Laptop",
		Description: "High-performance laptop for developers",
		Price:       decimal.RequireFromString("1299.99"),
		Stock:       5,
		CategoryID:  category.ID,
		Category:    category,
	}
}

func newPhoneInput() ProductInput {
	return ProductInput{
		Name:        "New Phone",
		Description: "desc",
		Price:       decimal.RequireFromString("800.00"),
		Stock:       10,
	}
}

func TestProductService_Create_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	deps := newProductServiceDeps()
	category := newTestCategory()

	deps.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	deps.productRepo.On("Save", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == 0 && p.CategoryID == category.ID
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = 3
		}).
		Return(nil)
	deps.publisher.On("PublishMessage", ctx, "3", mock.Anything).Return(nil)

	// Act
	product, err := deps.service().Create(ctx, newPhoneInput(), category.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(3), product.ID)
	assert.Equal(t, "New Phone", product.Name)
	assert.True(t, decimal.RequireFromString("800").Equal(product.Price))
	assert.Equal(t, 10, product.Stock)
	assert.Equal(t, category, product.Category)

	require.Len(t, deps.publisher.Messages, 1)
	var event entity.CatalogEvent
	require.NoError(t, json.Unmarshal(deps.publisher.Messages[0], &event))
	assert.Equal(t, entity.EventProductCreated, event.EventType)
	assert.Equal(t, category.ID, event.CategoryID)

	deps.categoryRepo.AssertExpectations(t)
	deps.productRepo.AssertExpectations(t)
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()

	deps.categoryRepo.On("FindByID", ctx, uint(9999)).Return(nil, repository.ErrCategoryNotFound)

	product, err := deps.service().Create(ctx, newPhoneInput(), 9999)

	require.ErrorIs(t, err, ErrInvalidCategoryReference)
	assert.Contains(t, err.Error(), "9999")
	assert.Equal(t, entity.Product{}, product)
	deps.productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	deps.publisher.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	category := newTestCategory()

	deps.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	deps.productRepo.On("Save", ctx, mock.AnythingOfType("*entity.Product")).Return(repository.ErrDuplicateKey)

	_, err := deps.service().Create(ctx, newPhoneInput(), category.ID)

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestProductService_Create_ForeignKeyViolation(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	category := newTestCategory()

	deps.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	deps.productRepo.On("Save", ctx, mock.AnythingOfType("*entity.Product")).Return(repository.ErrForeignKey)

	_, err := deps.service().Create(ctx, newPhoneInput(), category.ID)

	assert.ErrorIs(t, err, ErrInvalidCategoryReference)
}

func TestProductService_Create_PublishErrorIgnored(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	category := newTestCategory()

	deps.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	deps.productRepo.On("Save", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	deps.publisher.On("PublishMessage", ctx, mock.Anything, mock.Anything).Return(errors.New("kafka down"))

	_, err := deps.service().Create(ctx, newPhoneInput(), category.ID)

	assert.NoError(t, err)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	deps.productRepo.On("FindByID", ctx, uint(5)).Return(nil, repository.ErrProductNotFound)

	_, err := deps.service().GetByID(ctx, 5)

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_GetAll_Success(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	products := []entity.Product{newTestProduct(newTestCategory())}
	deps.productRepo.On("FindAll", ctx).Return(products, nil)

	result, err := deps.service().GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, result)
}

func TestProductService_Update_SameCategorySkipsLookup(t *testing.T) {
	// Arrange
	ctx := context.Background()
	deps := newProductServiceDeps()
	category := newTestCategory()
	existing := newTestProduct(category)

	deps.productRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	deps.productRepo.On("Save", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	deps.publisher.On("PublishMessage", ctx, "10", mock.Anything).Return(nil)

	input := ProductInput{
		Name:        "Laptop Pro",
		Description: "Updated",
		Price:       decimal.RequireFromString("1499.00"),
		Stock:       2,
	}
	sameCategory := category.ID

	// Act
	product, err := deps.service().Update(ctx, existing.ID, input, &sameCategory)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, existing.ID, product.ID)
	assert.Equal(t, "Laptop Pro", product.Name)
	assert.Equal(t, "Updated", product.Description)
	assert.True(t, input.Price.Equal(product.Price))
	assert.Equal(t, 2, product.Stock)
	assert.Equal(t, category, product.Category)
	deps.categoryRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProductService_Update_NilCategoryKeepsCurrent(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	category := newTestCategory()
	existing := newTestProduct(category)

	deps.productRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	deps.productRepo.On("Save", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	deps.publisher.On("PublishMessage", ctx, mock.Anything, mock.Anything).Return(nil)

	product, err := deps.service().Update(ctx, existing.ID, newPhoneInput(), nil)

	require.NoError(t, err)
	assert.Equal(t, category.ID, product.CategoryID)
	deps.categoryRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProductService_Update_ChangesCategory(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	existing := newTestProduct(newTestCategory())
	books := entity.Category{ID: 2, Name: "Books"}

	deps.productRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	deps.categoryRepo.On("FindByID", ctx, books.ID).Return(books, nil)
	deps.productRepo.On("Save", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.CategoryID == books.ID && p.Category.ID == books.ID
	})).Return(nil)
	deps.publisher.On("PublishMessage", ctx, mock.Anything, mock.Anything).Return(nil)

	product, err := deps.service().Update(ctx, existing.ID, newPhoneInput(), &books.ID)

	require.NoError(t, err)
	assert.Equal(t, books, product.Category)
	deps.productRepo.AssertExpectations(t)
	deps.categoryRepo.AssertExpectations(t)
}

func TestProductService_Update_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	deps.productRepo.On("FindByID", ctx, uint(77)).Return(nil, repository.ErrProductNotFound)

	_, err := deps.service().Update(ctx, 77, newPhoneInput(), nil)

	assert.ErrorIs(t, err, ErrProductNotFound)
	deps.productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_Update_DeletedBeforeWrite(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	existing := newTestProduct(newTestCategory())

	deps.productRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	deps.productRepo.On("Save", ctx, mock.AnythingOfType("*entity.Product")).Return(repository.ErrProductNotFound)

	_, err := deps.service().Update(ctx, existing.ID, newPhoneInput(), nil)

	assert.ErrorIs(t, err, ErrProductNotFound)
	deps.publisher.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Update_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	existing := newTestProduct(newTestCategory())
	unknown := uint(9999)

	deps.productRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	deps.categoryRepo.On("FindByID", ctx, unknown).Return(nil, repository.ErrCategoryNotFound)

	_, err := deps.service().Update(ctx, existing.ID, newPhoneInput(), &unknown)

	assert.ErrorIs(t, err, ErrInvalidCategoryReference)
	deps.productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_Delete_PublishesEvent(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	deps.productRepo.On("DeleteByID", ctx, uint(10)).Return(int64(1), nil)
	deps.publisher.On("PublishMessage", ctx, "10", mock.Anything).Return(nil)

	err := deps.service().Delete(ctx, 10)

	require.NoError(t, err)
	require.Len(t, deps.publisher.Messages, 1)
	var event entity.CatalogEvent
	require.NoError(t, json.Unmarshal(deps.publisher.Messages[0], &event))
	assert.Equal(t, entity.EventProductDeleted, event.EventType)
}

func TestProductService_Delete_Absent(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	deps.productRepo.On("DeleteByID", ctx, uint(10)).Return(int64(0), nil)

	err := deps.service().Delete(ctx, 10)

	require.NoError(t, err)
	deps.publisher.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_GetByCategoryID_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	deps.categoryRepo.On("FindByID", ctx, uint(9999)).Return(nil, repository.ErrCategoryNotFound)

	products, err := deps.service().GetByCategoryID(ctx, 9999)

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	deps.productRepo.AssertNotCalled(t, "FindByCategoryID", mock.Anything, mock.Anything)
}

func TestProductService_GetByCategoryID_Success(t *testing.T) {
	ctx := context.Background()
	deps := newProductServiceDeps()
	category := newTestCategory()
	products := []entity.Product{newTestProduct(category)}

	deps.categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	deps.productRepo.On("FindByCategoryID", ctx, category.ID).Return(products, nil)

	result, err := deps.service().GetByCategoryID(ctx, category.ID)

	require.NoError(t, err)
	assert.Equal(t, products, result)
}
