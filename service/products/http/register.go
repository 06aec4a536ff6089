package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(engine *gin.Engine, handler *ProductsHandler) {
	group := engine.Group("/products")
	group.POST("", handler.CreateProduct)
	group.GET("", handler.ListProducts)
	group.GET("/:id", handler.GetProduct)
	group.PUT("/:id", handler.UpdateProduct)
	group.DELETE("/:id", handler.DeleteProduct)
}
