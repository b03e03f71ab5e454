package handler

import (
	"errors"
	"net/http"

	"productcatalog/catalog-service/internal/app/catalog/entity"
	"productcatalog/catalog-service/internal/app/catalog/service"
	"productcatalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ProductHandler обрабатывает HTTP запросы к /api/products
type ProductHandler struct {
	productService service.ProductServiceInterface
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      newValidator(),
	}
}

// GetAllProducts godoc
// @Summary      Список товаров
// @Tags         products
// @Produce      json
// @Success      200  {object}  entity.ProductCollection
// @Failure      500  {object}  entity.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.GetAll(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get products")
		respondError(c, http.StatusInternalServerError, "Failed to get products")
		return
	}

	c.JSON(http.StatusOK, productCollection(c, products))
}

// GetProduct godoc
// @Summary      Товар по ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  entity.ProductResource
// @Failure      400  {object}  entity.ErrorResponse
// @Failure      404  {object}  entity.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "Failed to get product")
		return
	}

	c.JSON(http.StatusOK, productResource(baseURL(c), product))
}

// CreateProduct godoc
// @Summary      Создать товар
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      entity.CreateProductRequest  true  "Product"
// @Success      201      {object}  entity.ProductResource
// @Failure      400      {object}  entity.ErrorResponse
// @Failure      409      {object}  entity.ErrorResponse
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req entity.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return
	}

	input := service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	}

	product, err := h.productService.Create(c.Request.Context(), input, *req.CategoryID)
	if err != nil {
		h.handleError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, productResource(baseURL(c), product))
}

// UpdateProduct godoc
// @Summary      Перезаписать товар
// @Description  Поля productDetails перезаписываются целиком, categoryId меняет категорию
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      int                          true  "Product ID"
// @Param        product  body      entity.UpdateProductRequest  true  "Product"
// @Success      200      {object}  entity.ProductResource
// @Failure      400      {object}  entity.ErrorResponse
// @Failure      404      {object}  entity.ErrorResponse
// @Failure      409      {object}  entity.ErrorResponse
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req entity.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return
	}

	details := req.ProductDetails
	input := service.ProductInput{
		Name:        details.Name,
		Description: details.Description,
		Price:       *details.Price,
		Stock:       *details.Stock,
	}

	product, err := h.productService.Update(c.Request.Context(), id, input, req.CategoryID)
	if err != nil {
		h.handleError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, productResource(baseURL(c), product))
}

// DeleteProduct godoc
// @Summary      Удалить товар
// @Tags         products
// @Param        id   path  int  true  "Product ID"
// @Success      204
// @Failure      400  {object}  entity.ErrorResponse
// @Security     BearerAuth
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err, "Failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProductsByCategory godoc
// @Summary      Товары категории
// @Description  Для несуществующей категории возвращается пустой список
// @Tags         products
// @Produce      json
// @Param        categoryId  path      int  true  "Category ID"
// @Success      200         {object}  entity.ProductCollection
// @Failure      400         {object}  entity.ErrorResponse
// @Router       /api/products/category/{categoryId} [get]
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	products, err := h.productService.GetByCategoryID(c.Request.Context(), categoryID)
	if err != nil {
		h.handleError(c, err, "Failed to get products by category")
		return
	}

	c.JSON(http.StatusOK, productCollection(c, products))
}

func (h *ProductHandler) handleError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Product not found")
		respondError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, service.ErrInvalidCategoryReference):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDuplicateName):
		respondError(c, http.StatusConflict, err.Error())
	default:
		logger.Error().Err(err).Msg(message)
		respondError(c, http.StatusInternalServerError, message)
	}
}
