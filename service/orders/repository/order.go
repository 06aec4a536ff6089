package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce_record_service/pkg/apperr"
	"ecommerce_record_service/pkg/infra/database"
	"ecommerce_record_service/service/orders/model/postgres"
)

type IOrderRepository interface {
	// Create inserts the order and its items in one transaction; a failure on
	// any item rolls the order back as well.
	Create(ctx context.Context, order *postgres.Order, items []postgres.OrderItem) error
	List(ctx context.Context, page, pageSize int) ([]postgres.Order, error)
	GetByID(ctx context.Context, id uint) (postgres.Order, error)
	ListItems(ctx context.Context, orderID uint) ([]postgres.OrderItem, error)
	AddItems(ctx context.Context, orderID uint, items []postgres.OrderItem) error
	Update(ctx context.Context, id uint, fields postgres.Order) (postgres.Order, error)
	Delete(ctx context.Context, id uint) error
}

type orderRepository struct {
	dbConn *gorm.DB
}

func NewOrderRepository(dbConn *gorm.DB) IOrderRepository {
	return &orderRepository{
		dbConn: dbConn,
	}
}

func (o orderRepository) Create(ctx context.Context, order *postgres.Order, items []postgres.OrderItem) error {
	err := o.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		return insertItems(tx, order.ID, items)
	})
	return apperr.Storage("order.create", err)
}

func (o orderRepository) List(ctx context.Context, page, pageSize int) ([]postgres.Order, error) {
	orders := make([]postgres.Order, 0)
	err := o.dbConn.WithContext(ctx).
		Scopes(database.Paginate(page, pageSize)).
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, apperr.Storage("order.list", err)
	}
	return orders, nil
}

func (o orderRepository) GetByID(ctx context.Context, id uint) (postgres.Order, error) {
	return findOrder(o.dbConn.WithContext(ctx), id)
}

func (o orderRepository) ListItems(ctx context.Context, orderID uint) ([]postgres.OrderItem, error) {
	items := make([]postgres.OrderItem, 0)
	err := o.dbConn.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Storage("order.items", err)
	}
	return items, nil
}

func (o orderRepository) AddItems(ctx context.Context, orderID uint, items []postgres.OrderItem) error {
	return o.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findOrder(tx, orderID); err != nil {
			return err
		}
		return apperr.Storage("order.add_items", insertItems(tx, orderID, items))
	})
}

func (o orderRepository) Update(ctx context.Context, id uint, fields postgres.Order) (postgres.Order, error) {
	var updated postgres.Order
	err := o.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findOrder(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Model(&current).
			Select("order_date", "customer_id").
			Updates(&postgres.Order{OrderDate: fields.OrderDate, CustomerID: fields.CustomerID}).Error; err != nil {
			return apperr.Storage("order.update", err)
		}

		updated, err = findOrder(tx, id)
		return err
	})
	if err != nil {
		return postgres.Order{}, err
	}
	return updated, nil
}

func (o orderRepository) Delete(ctx context.Context, id uint) error {
	return o.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findOrder(tx, id); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&postgres.OrderItem{}).Error; err != nil {
			return apperr.Storage("order.delete", err)
		}
		if err := tx.Delete(&postgres.Order{}, id).Error; err != nil {
			return apperr.Storage("order.delete", err)
		}
		return nil
	})
}

func insertItems(tx *gorm.DB, orderID uint, items []postgres.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return tx.Omit(clause.Associations).Create(&items).Error
}

func findOrder(db *gorm.DB, id uint) (postgres.Order, error) {
	var order postgres.Order
	err := db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return postgres.Order{}, apperr.NotFound("order")
	}
	if err != nil {
		return postgres.Order{}, apperr.Storage("order.get", err)
	}
	return order, nil
}
