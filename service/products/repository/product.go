package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecommerce_record_service/pkg/apperr"
	"ecommerce_record_service/pkg/infra/database"
	"ecommerce_record_service/service/products/model/postgres"
)

type IProductRepository interface {
	Create(ctx context.Context, product *postgres.Product) error
	List(ctx context.Context, page, pageSize int) ([]postgres.Product, error)
	GetByID(ctx context.Context, id uint) (postgres.Product, error)
	Update(ctx context.Context, id uint, fields postgres.Product) (postgres.Product, error)
	// Delete refuses with apperr.ErrConflict while order items reference the product.
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	dbConn *gorm.DB
}

func NewProductRepository(dbConn *gorm.DB) IProductRepository {
	return &productRepository{
		dbConn: dbConn,
	}
}

func (p productRepository) Create(ctx context.Context, product *postgres.Product) error {
	err := p.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	return apperr.Storage("product.create", err)
}

func (p productRepository) List(ctx context.Context, page, pageSize int) ([]postgres.Product, error) {
	products := make([]postgres.Product, 0)
	err := p.dbConn.WithContext(ctx).
		Scopes(database.Paginate(page, pageSize)).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, apperr.Storage("product.list", err)
	}
	return products, nil
}

func (p productRepository) GetByID(ctx context.Context, id uint) (postgres.Product, error) {
	return findProduct(p.dbConn.WithContext(ctx), id)
}

func (p productRepository) Update(ctx context.Context, id uint, fields postgres.Product) (postgres.Product, error) {
	var updated postgres.Product
	err := p.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findProduct(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Model(&current).
			Select("name", "price").
			Updates(&postgres.Product{Name: fields.Name, Price: fields.Price}).Error; err != nil {
			return apperr.Storage("product.update", err)
		}

		updated, err = findProduct(tx, id)
		return err
	})
	if err != nil {
		return postgres.Product{}, err
	}
	return updated, nil
}

func (p productRepository) Delete(ctx context.Context, id uint) error {
	return p.dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findProduct(tx, id); err != nil {
			return err
		}

		var references int64
		if err := tx.Table("order_items").Where("product_id = ?", id).Count(&references).Error; err != nil {
			return apperr.Storage("product.delete", err)
		}
		if references > 0 {
			return apperr.Conflict("product is referenced by existing order items")
		}

		if err := tx.Delete(&postgres.Product{}, id).Error; err != nil {
			return apperr.Storage("product.delete", err)
		}
		return nil
	})
}

func findProduct(db *gorm.DB, id uint) (postgres.Product, error) {
	var product postgres.Product
	err := db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return postgres.Product{}, apperr.NotFound("product")
	}
	if err != nil {
		return postgres.Product{}, apperr.Storage("product.get", err)
	}
	return product, nil
}
