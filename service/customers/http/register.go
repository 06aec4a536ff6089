package http

import "github.com/gin-gonic/gin"

func RegisterCustomerRoutes(engine *gin.Engine, controller *CustomerController) {
	group := engine.Group("/customers")
	group.POST("", controller.CreateCustomerHandler)
	group.GET("", controller.ListCustomersHandler)
	group.GET("/:id", controller.GetCustomerHandler)
	group.PUT("/:id", controller.UpdateCustomerHandler)
	group.DELETE("/:id", controller.DeleteCustomerHandler)
	group.POST("/:id/accounts", controller.CreateAccountHandler)
	group.GET("/:id/accounts", controller.ListAccountsHandler)
}
