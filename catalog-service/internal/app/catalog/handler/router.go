package handler

import (
	"net/http"

	_ "productcatalog/catalog-service/docs" // OpenAPI документ для /swagger
	"productcatalog/pkg/logger"
	"productcatalog/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const serviceName = "catalog-service"

// SetupRoutes настраивает все маршруты Catalog Service
// GET запросы публичные, изменяющие запросы проходят через authMiddleware.Guard
func SetupRoutes(categoryHandler *CategoryHandler, productHandler *ProductHandler, authMiddleware *AuthMiddleware) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware(serviceName))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader},
		ExposeHeaders:    []string{logger.RequestIDHeader},
		AllowCredentials: false,
	}))

	// Health check endpoint - публичный, без аутентификации
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	writers := []string{"manager", "admin"}

	categories := router.Group("/api/categories")
	{
		categories.GET("", categoryHandler.GetAllCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
		categories.POST("", withGuard(authMiddleware.Guard(writers...), categoryHandler.CreateCategory)...)
		categories.PUT("/:id", withGuard(authMiddleware.Guard(writers...), categoryHandler.UpdateCategory)...)
		categories.DELETE("/:id", withGuard(authMiddleware.Guard(writers...), categoryHandler.DeleteCategory)...) // Удаляет и товары категории
	}

	products := router.Group("/api/products")
	{
		products.GET("", productHandler.GetAllProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/category/:categoryId", productHandler.GetProductsByCategory)
		products.POST("", withGuard(authMiddleware.Guard(writers...), productHandler.CreateProduct)...)
		products.PUT("/:id", withGuard(authMiddleware.Guard(writers...), productHandler.UpdateProduct)...)
		products.DELETE("/:id", withGuard(authMiddleware.Guard(writers...), productHandler.DeleteProduct)...)
	}

	return router
}

func withGuard(guard []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	return append(guard, handler)
}
