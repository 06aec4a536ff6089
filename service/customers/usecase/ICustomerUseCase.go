package usecase

import (
	"context"
	"log"

	"ecommerce_record_service/pkg/infra/cache"
	"ecommerce_record_service/service/customers/helper"
	"ecommerce_record_service/service/customers/model/postgres"
	"ecommerce_record_service/service/customers/model/request"
	"ecommerce_record_service/service/customers/model/response"
	"ecommerce_record_service/service/customers/repository"
)

type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, dto request.CustomerDTO) (response.CustomerResponseDTO, error)
	ListCustomers(ctx context.Context, page, pageSize int) ([]response.CustomerResponseDTO, error)
	GetCustomerByID(ctx context.Context, id uint) (response.CustomerResponseDTO, error)
	UpdateCustomer(ctx context.Context, id uint, dto request.CustomerDTO) (response.CustomerResponseDTO, error)
	DeleteCustomer(ctx context.Context, id uint) error
	CreateAccount(ctx context.Context, customerID uint, dto request.CreateAccountDTO) (response.AccountResponseDTO, error)
	ListAccounts(ctx context.Context, customerID uint) ([]response.AccountResponseDTO, error)
}

const (
	customerEntity = "customer"
	orderEntity    = "order"
)

type customerUseCase struct {
	customerRepo repository.ICustomerRepository
	cache        cache.RecordCache
}

func NewCustomerUseCase(customerRepo repository.ICustomerRepository, recordCache cache.RecordCache) ICustomerUseCase {
	return &customerUseCase{
		customerRepo: customerRepo,
		cache:        recordCache,
	}
}

func (c customerUseCase) CreateCustomer(ctx context.Context, dto request.CustomerDTO) (response.CustomerResponseDTO, error) {
	customer := postgres.Customer{
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	}

	if err := c.customerRepo.Create(ctx, &customer); err != nil {
		log.Printf("Error creating customer: %s", err.Error())
		return response.CustomerResponseDTO{}, err
	}

	return toCustomerResponse(customer), nil
}

func (c customerUseCase) ListCustomers(ctx context.Context, page, pageSize int) ([]response.CustomerResponseDTO, error) {
	customers, err := c.customerRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing customers: %s", err.Error())
		return nil, err
	}

	result := make([]response.CustomerResponseDTO, 0, len(customers))
	for _, customer := range customers {
		result = append(result, toCustomerResponse(customer))
	}
	return result, nil
}

func (c customerUseCase) GetCustomerByID(ctx context.Context, id uint) (response.CustomerResponseDTO, error) {
	var cached response.CustomerResponseDTO
	hit, version, err := c.cache.Get(ctx, customerEntity, id, &cached)
	if err != nil {
		log.Printf("Error reading cached customer %d: %s", id, err.Error())
	}
	if hit {
		return cached, nil
	}

	customer, err := c.customerRepo.GetByID(ctx, id)
	if err != nil {
		return response.CustomerResponseDTO{}, err
	}

	result := toCustomerResponse(customer)
	if err := c.cache.Set(ctx, customerEntity, id, version, result); err != nil {
		log.Printf("Failed to write cache for customer %d: %s", id, err.Error())
	}
	return result, nil
}

func (c customerUseCase) UpdateCustomer(ctx context.Context, id uint, dto request.CustomerDTO) (response.CustomerResponseDTO, error) {
	customer, err := c.customerRepo.Update(ctx, id, postgres.Customer{
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	})
	if err != nil {
		log.Printf("Error updating customer %d: %s", id, err.Error())
		return response.CustomerResponseDTO{}, err
	}

	c.invalidate(ctx, customerEntity, id)
	return toCustomerResponse(customer), nil
}

func (c customerUseCase) DeleteCustomer(ctx context.Context, id uint) error {
	orderIDs, err := c.customerRepo.Delete(ctx, id)
	if err != nil {
		log.Printf("Error deleting customer %d: %s", id, err.Error())
		return err
	}

	c.invalidate(ctx, customerEntity, id)
	c.invalidate(ctx, orderEntity, orderIDs...)
	log.Printf("Deleted customer %d with %d order(s)", id, len(orderIDs))
	return nil
}

func (c customerUseCase) CreateAccount(ctx context.Context, customerID uint, dto request.CreateAccountDTO) (response.AccountResponseDTO, error) {
	if _, err := c.customerRepo.GetByID(ctx, customerID); err != nil {
		return response.AccountResponseDTO{}, err
	}

	hashedPassword, err := helper.HashPassword(dto.Password)
	if err != nil {
		return response.AccountResponseDTO{}, err
	}

	account := postgres.CustomerAccount{
		Username:     dto.Username,
		PasswordHash: hashedPassword,
		CustomerID:   customerID,
	}
	if err := c.customerRepo.CreateAccount(ctx, &account); err != nil {
		log.Printf("Error creating account for customer %d: %s", customerID, err.Error())
		return response.AccountResponseDTO{}, err
	}

	return toAccountResponse(account), nil
}

func (c customerUseCase) ListAccounts(ctx context.Context, customerID uint) ([]response.AccountResponseDTO, error) {
	if _, err := c.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	accounts, err := c.customerRepo.ListAccounts(ctx, customerID)
	if err != nil {
		return nil, err
	}

	result := make([]response.AccountResponseDTO, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, toAccountResponse(account))
	}
	return result, nil
}

func (c customerUseCase) invalidate(ctx context.Context, entity string, ids ...uint) {
	if err := c.cache.Invalidate(ctx, entity, ids...); err != nil {
		log.Printf("Failed to invalidate cached %s %v: %s", entity, ids, err.Error())
	}
}

func toCustomerResponse(customer postgres.Customer) response.CustomerResponseDTO {
	return response.CustomerResponseDTO{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}
}

func toAccountResponse(account postgres.CustomerAccount) response.AccountResponseDTO {
	return response.AccountResponseDTO{
		ID:         account.ID,
		Username:   account.Username,
		CustomerID: account.CustomerID,
	}
}
