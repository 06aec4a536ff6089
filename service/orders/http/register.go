package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(engine *gin.Engine, handler *OrdersHandler) {
	group := engine.Group("/orders")
	group.POST("", handler.PlaceOrder)
	group.GET("", handler.ListOrders)
	group.GET("/:id", handler.GetOrder)
	group.GET("/track/:id", handler.GetOrder)
	group.PUT("/:id", handler.UpdateOrder)
	group.DELETE("/:id", handler.DeleteOrder)
	group.GET("/:id/items", handler.ListItems)
	group.POST("/:id/items", handler.AddItems)
}
