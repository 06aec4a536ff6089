package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce_record_service/pkg/httpx"
	"ecommerce_record_service/service/products/model/request"
	"ecommerce_record_service/service/products/usecase"
)

type ProductsHandler struct {
	productUseCase usecase.IProductUseCase
	validator      *httpx.Validator
}

func NewProductsHandler(productUseCase usecase.IProductUseCase, validator *httpx.Validator) *ProductsHandler {
	return &ProductsHandler{
		productUseCase: productUseCase,
		validator:      validator,
	}
}

func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	var dto request.ProductDTO
	if !httpx.BindJSON(c, h.validator, &dto) {
		return
	}

	product, err := h.productUseCase.CreateProduct(c.Request.Context(), dto)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductsHandler) ListProducts(c *gin.Context) {
	page, ok := httpx.BindPage(c, h.validator)
	if !ok {
		return
	}

	products, err := h.productUseCase.ListProducts(c.Request.Context(), page.Page, page.PageSize)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) GetProduct(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productUseCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var dto request.ProductDTO
	if !httpx.BindJSON(c, h.validator, &dto) {
		return
	}

	product, err := h.productUseCase.UpdateProduct(c.Request.Context(), id, dto)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.productUseCase.DeleteProduct(c.Request.Context(), id); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
