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

// CategoryHandler обрабатывает HTTP запросы к /api/categories
type CategoryHandler struct {
	categoryService service.CategoryServiceInterface
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       newValidator(),
	}
}

// GetAllCategories godoc
// @Summary      Список категорий
// @Tags         categories
// @Produce      json
// @Success      200  {object}  entity.CategoryCollection
// @Failure      500  {object}  entity.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get categories")
		respondError(c, http.StatusInternalServerError, "Failed to get categories")
		return
	}

	c.JSON(http.StatusOK, categoryCollection(c, categories))
}

// GetCategory godoc
// @Summary      Категория по ID
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  entity.CategoryResource
// @Failure      400  {object}  entity.ErrorResponse
// @Failure      404  {object}  entity.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, "Failed to get category")
		return
	}

	c.JSON(http.StatusOK, categoryResource(baseURL(c), category))
}

// CreateCategory godoc
// @Summary      Создать категорию
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category  body      entity.CategoryRequest  true  "Category"
// @Success      201       {object}  entity.CategoryResource
// @Failure      400       {object}  entity.ErrorResponse
// @Failure      409       {object}  entity.ErrorResponse
// @Security     BearerAuth
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	req, ok := h.bindCategory(c)
	if !ok {
		return
	}

	category, err := h.categoryService.Save(c.Request.Context(), entity.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, categoryResource(baseURL(c), category))
}

// UpdateCategory godoc
// @Summary      Перезаписать категорию
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id        path      int                     true  "Category ID"
// @Param        category  body      entity.CategoryRequest  true  "Category"
// @Success      200       {object}  entity.CategoryResource
// @Failure      400       {object}  entity.ErrorResponse
// @Failure      404       {object}  entity.ErrorResponse
// @Failure      409       {object}  entity.ErrorResponse
// @Security     BearerAuth
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	req, ok := h.bindCategory(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.categoryService.GetByID(ctx, id); err != nil {
		h.handleError(c, err, "Failed to get category")
		return
	}

	category, err := h.categoryService.Save(ctx, entity.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, categoryResource(baseURL(c), category))
}

// DeleteCategory godoc
// @Summary      Удалить категорию вместе с товарами
// @Tags         categories
// @Param        id   path  int  true  "Category ID"
// @Success      204
// @Failure      400  {object}  entity.ErrorResponse
// @Security     BearerAuth
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err, "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) bindCategory(c *gin.Context) (entity.CategoryRequest, bool) {
	var req entity.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, formatValidationError(err))
		return req, false
	}
	return req, true
}

func (h *CategoryHandler) handleError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Category not found")
		respondError(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, service.ErrDuplicateName):
		respondError(c, http.StatusConflict, err.Error())
	default:
		logger.Error().Err(err).Msg(message)
		respondError(c, http.StatusInternalServerError, message)
	}
}
