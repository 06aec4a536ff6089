package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce_record_service/pkg/httpx"
	"ecommerce_record_service/service/orders/model/request"
	"ecommerce_record_service/service/orders/usecase"
)

type OrdersHandler struct {
	orderUseCase usecase.IOrderUseCase
	validator    *httpx.Validator
}

func NewOrdersHandler(orderUseCase usecase.IOrderUseCase, validator *httpx.Validator) *OrdersHandler {
	return &OrdersHandler{
		orderUseCase: orderUseCase,
		validator:    validator,
	}
}

func (h *OrdersHandler) PlaceOrder(c *gin.Context) {
	var dto request.CreateOrderDTO
	if !httpx.BindJSON(c, h.validator, &dto) {
		return
	}

	order, err := h.orderUseCase.PlaceOrder(c.Request.Context(), dto)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrdersHandler) ListOrders(c *gin.Context) {
	page, ok := httpx.BindPage(c, h.validator)
	if !ok {
		return
	}

	orders, err := h.orderUseCase.ListOrders(c.Request.Context(), page.Page, page.PageSize)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder serves both GET /orders/:id and GET /orders/track/:id.
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderUseCase.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) UpdateOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var dto request.UpdateOrderDTO
	if !httpx.BindJSON(c, h.validator, &dto) {
		return
	}

	order, err := h.orderUseCase.UpdateOrder(c.Request.Context(), id, dto)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) DeleteOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.orderUseCase.DeleteOrder(c.Request.Context(), id); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func (h *OrdersHandler) ListItems(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	items, err := h.orderUseCase.ListItems(c.Request.Context(), id)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *OrdersHandler) AddItems(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var dto request.AddItemsDTO
	if !httpx.BindJSON(c, h.validator, &dto) {
		return
	}

	items, err := h.orderUseCase.AddItems(c.Request.Context(), id, dto)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, items)
}
