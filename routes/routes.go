package routes

import (
	"github.com/gin-gonic/gin"

	"product-service/controllers"
)

// RegisterRoutes wires all application routes to their controllers.
func RegisterRoutes(r *gin.Engine, productController *controllers.ProductController) {
	productRoutes := r.Group("/products")
	{
		productRoutes.POST("/", productController.CreateProduct)
		productRoutes.GET("/:id", productController.GetProductByID)
		productRoutes.GET("/slug/:slug", productController.GetProductBySlug)
	}
}
