package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/controller"
)

// ProductRoute sets up the routes for the product resource. The limiter is
// applied to the write endpoints only.
func ProductRoute(router *gin.Engine, pc *controller.ProductController, limiter gin.HandlerFunc) {
	// Group routes for better organization
	productRoutes := router.Group("/api/products")
	{
		productRoutes.GET("", pc.GetProducts)
		productRoutes.GET("/:id", pc.GetProductByID)
		productRoutes.POST("", limiter, pc.CreateProduct)
		productRoutes.PUT("/:id", limiter, pc.UpdateProduct)
		productRoutes.DELETE("/:id", limiter, pc.DeleteProduct)
	}
}
