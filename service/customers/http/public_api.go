package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce_record_service/pkg/httpx"
	"ecommerce_record_service/service/customers/model/request"
	"ecommerce_record_service/service/customers/usecase"
)

type CustomerController struct {
	customerUsecase usecase.ICustomerUseCase
	validator       *httpx.Validator
}

func NewCustomerController(customerUsecase usecase.ICustomerUseCase, validator *httpx.Validator) *CustomerController {
	return &CustomerController{
		customerUsecase: customerUsecase,
		validator:       validator,
	}
}

func (cc *CustomerController) CreateCustomerHandler(c *gin.Context) {
	var dto request.CustomerDTO
	if !httpx.BindJSON(c, cc.validator, &dto) {
		return
	}

	customer, err := cc.customerUsecase.CreateCustomer(c.Request.Context(), dto)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (cc *CustomerController) ListCustomersHandler(c *gin.Context) {
	page, ok := httpx.BindPage(c, cc.validator)
	if !ok {
		return
	}

	customers, err := cc.customerUsecase.ListCustomers(c.Request.Context(), page.Page, page.PageSize)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) GetCustomerHandler(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	customer, err := cc.customerUsecase.GetCustomerByID(c.Request.Context(), id)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) UpdateCustomerHandler(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var dto request.CustomerDTO
	if !httpx.BindJSON(c, cc.validator, &dto) {
		return
	}

	customer, err := cc.customerUsecase.UpdateCustomer(c.Request.Context(), id, dto)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) DeleteCustomerHandler(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	if err := cc.customerUsecase.DeleteCustomer(c.Request.Context(), id); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

func (cc *CustomerController) CreateAccountHandler(c *gin.Context) {
	customerID, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	var dto request.CreateAccountDTO
	if !httpx.BindJSON(c, cc.validator, &dto) {
		return
	}

	account, err := cc.customerUsecase.CreateAccount(c.Request.Context(), customerID, dto)
	if err != nil {
		log.Printf("Account registration failed: %v", err)
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (cc *CustomerController) ListAccountsHandler(c *gin.Context) {
	customerID, ok := httpx.ParseID(c, "id")
	if !ok {
		return
	}

	accounts, err := cc.customerUsecase.ListAccounts(c.Request.Context(), customerID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}
