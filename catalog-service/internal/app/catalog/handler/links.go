package handler

import (
	"fmt"

	"productcatalog/catalog-service/internal/app/catalog/entity"

	"github.com/gin-gonic/gin"
)

const (
	categoriesPath = "/api/categories"
	productsPath   = "/api/products"
)

// baseURL строит scheme://host текущего запроса
// За прокси схема берется из X-Forwarded-Proto
func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

func link(base, path string, args ...interface{}) entity.Link {
	return entity.Link{Href: base + fmt.Sprintf(path, args...)}
}

func categoryResource(base string, category entity.Category) entity.CategoryResource {
	return entity.CategoryResource{
		Category: category,
		Links: entity.Links{
			"self":           link(base, categoriesPath+"/%d", category.ID),
			"products":       link(base, productsPath+"/category/%d", category.ID),
			"all-categories": link(base, categoriesPath),
		},
	}
}

func productResource(base string, product entity.Product) entity.ProductResource {
	return entity.ProductResource{
		Product: product,
		Links: entity.Links{
			"self":         link(base, productsPath+"/%d", product.ID),
			"category":     link(base, categoriesPath+"/%d", product.CategoryID),
			"all-products": link(base, productsPath),
		},
	}
}

func categoryCollection(c *gin.Context, categories []entity.Category) entity.CategoryCollection {
	base := baseURL(c)

	var collection entity.CategoryCollection
	collection.Embedded.Categories = make([]entity.CategoryResource, 0, len(categories))
	for _, category := range categories {
		collection.Embedded.Categories = append(collection.Embedded.Categories, categoryResource(base, category))
	}
	collection.Links = entity.Links{"self": {Href: base + c.Request.URL.Path}}
	return collection
}

func productCollection(c *gin.Context, products []entity.Product) entity.ProductCollection {
	base := baseURL(c)

	var collection entity.ProductCollection
	collection.Embedded.Products = make([]entity.ProductResource, 0, len(products))
	for _, product := range products {
		collection.Embedded.Products = append(collection.Embedded.Products, productResource(base, product))
	}
	collection.Links = entity.Links{"self": {Href: base + c.Request.URL.Path}}
	return collection
}
