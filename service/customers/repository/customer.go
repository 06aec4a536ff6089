package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecommerce_record_service/pkg/apperr"
	"ecommerce_record_service/pkg/infra/database"
	"ecommerce_record_service/service/customers/model/postgres"
)

type ICustomerRepository interface {
	Create(ctx context.Context, customer *postgres.Customer) error
	List(ctx context.Context, page, pageSize int) ([]postgres.Customer, error)
	GetByID(ctx context.Context, id uint) (postgres.Customer, error)
	Update(ctx context.Context, id uint, fields postgres.Customer) (postgres.Customer, error)
	// Delete removes the customer and everything that references it, returning
	// the ids of the orders that went with it.
	Delete(ctx context.Context, id uint) ([]uint, error)
	CreateAccount(ctx context.Context, account *postgres.CustomerAccount) error
	ListAccounts(ctx context.Context, customerID uint) ([]postgres.CustomerAccount, error)
}

type customerRepository struct {
	dbConn *gorm.DB
}

func NewCustomerRepository(dbConn *gorm.DB) ICustomerRepository {
	return &customerRepository{
		dbConn: dbConn,
	}
}

func (c customerRepository) Create(ctx context.Context, customer *postgres.Customer) error {
	err := c.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(customer).Error
	})
	return apperr.Storage("customer.create", err)
}

func (c customerRepository) List(ctx context.Context, page, pageSize int) ([]postgres.Customer, error) {
	customers := make([]postgres.Customer, 0)
	err := c.dbConn.WithContext(ctx).
		Scopes(database.Paginate(page, pageSize)).
		Order("id ASC").
		Find(&customers).Error
	if err != nil {
		return nil, apperr.Storage("customer.list", err)
	}
	return customers, nil
}

func (c customerRepository) GetByID(ctx context.Context, id uint) (postgres.Customer, error) {
	return findCustomer(c.dbConn.WithContext(ctx), id)
}

func (c customerRepository) Update(ctx context.Context, id uint, fields postgres.Customer) (postgres.Customer, error) {
	var updated postgres.Customer
	err := c.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findCustomer(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Model(&current).
			Select("name", "email", "phone").
			Updates(&postgres.Customer{Name: fields.Name, Email: fields.Email, Phone: fields.Phone}).Error; err != nil {
			return apperr.Storage("customer.update", err)
		}

		updated, err = findCustomer(tx, id)
		return err
	})
	if err != nil {
		return postgres.Customer{}, err
	}
	return updated, nil
}

func (c customerRepository) Delete(ctx context.Context, id uint) ([]uint, error) {
	var orderIDs []uint
	err := c.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCustomer(tx, id); err != nil {
			return err
		}

		if err := tx.Table("orders").Where("customer_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return apperr.Storage("customer.delete", err)
		}

		// dependents first so the RESTRICT foreign keys never fire
		steps := []func() error{
			func() error {
				if len(orderIDs) == 0 {
					return nil
				}
				return tx.Exec("DELETE FROM order_items WHERE order_id IN ?", orderIDs).Error
			},
			func() error { return tx.Exec("DELETE FROM orders WHERE customer_id = ?", id).Error },
			func() error { return tx.Where("customer_id = ?", id).Delete(&postgres.CustomerAccount{}).Error },
			func() error { return tx.Delete(&postgres.Customer{}, id).Error },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return apperr.Storage("customer.delete", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orderIDs, nil
}

func (c customerRepository) CreateAccount(ctx context.Context, account *postgres.CustomerAccount) error {
	err := c.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Customer").Create(account).Error
	})
	return apperr.Storage("account.create", err)
}

func (c customerRepository) ListAccounts(ctx context.Context, customerID uint) ([]postgres.CustomerAccount, error) {
	accounts := make([]postgres.CustomerAccount, 0)
	err := c.dbConn.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, apperr.Storage("account.list", err)
	}
	return accounts, nil
}

func findCustomer(db *gorm.DB, id uint) (postgres.Customer, error) {
	var customer postgres.Customer
	err := db.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return postgres.Customer{}, apperr.NotFound("customer")
	}
	if err != nil {
		return postgres.Customer{}, apperr.Storage("customer.get", err)
	}
	return customer, nil
}
